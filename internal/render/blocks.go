package render

// Block is a single display directive. The set of implementations is closed.
type Block interface {
	block()
}

// Document is an ordered sequence of display directives.
type Document []Block

// Heading is a title line. Level 1 is reserved for section titles.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is free text. It may contain inline Markdown.
type Paragraph struct {
	Text string
}

// Bullets is an unordered list. Prefix is prepended to every item.
type Bullets struct {
	Prefix string
	Items  []string
}

// CodeBlock is preformatted source or shell text.
type CodeBlock struct {
	Language string
	Code     string
}

// Image references a bundled asset by filename.
type Image struct {
	File    string
	Caption string
}

// Link points at an external URL.
type Link struct {
	Label string
	URL   string
}

// Rule separates sections when several are rendered together.
type Rule struct{}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Bullets) block()   {}
func (CodeBlock) block() {}
func (Image) block()     {}
func (Link) block()      {}
func (Rule) block()      {}

// Headings returns every heading in d, in order.
func (d Document) Headings() []Heading {
	var out []Heading
	for _, b := range d {
		if h, ok := b.(Heading); ok {
			out = append(out, h)
		}
	}
	return out
}

// Images returns every image in d, in order.
func (d Document) Images() []Image {
	var out []Image
	for _, b := range d {
		if img, ok := b.(Image); ok {
			out = append(out, img)
		}
	}
	return out
}

// Links returns every link in d, in order.
func (d Document) Links() []Link {
	var out []Link
	for _, b := range d {
		if l, ok := b.(Link); ok {
			out = append(out, l)
		}
	}
	return out
}

// Title returns the text of the first level-1 heading, or "" if there is none.
func (d Document) Title() string {
	for _, h := range d.Headings() {
		if h.Level == 1 {
			return h.Text
		}
	}
	return ""
}
