package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henri123lemoine/tourguide/internal/content"
)

func guide(t *testing.T) *content.Guide {
	t.Helper()
	g, err := content.Load()
	require.NoError(t, err)
	return g
}

func TestEverySectionHasRenderer(t *testing.T) {
	for _, s := range content.Sections() {
		_, ok := renderers[s]
		assert.True(t, ok, "no renderer for %s", s)
	}
	assert.Len(t, renderers, len(content.Sections()))
}

func TestSectionsAreMutuallyExclusive(t *testing.T) {
	g := guide(t)
	for _, s := range content.Sections() {
		t.Run(s.String(), func(t *testing.T) {
			md := Markdown(Render(s, g), MarkdownOptions{})
			require.NotEmpty(t, md)
			assert.Contains(t, md, "# "+s.String()+"\n")

			for _, other := range content.Sections() {
				if other == s {
					continue
				}
				assert.NotContains(t, md, "# "+other.String()+"\n")
			}
		})
	}
}

func TestRenderKeyUnknownIsEmpty(t *testing.T) {
	g := guide(t)
	for _, key := range []string{"", "Home", "abstract", "Database"} {
		doc := RenderKey(key, g)
		assert.Empty(t, doc, "RenderKey(%q)", key)
		assert.Empty(t, Markdown(doc, MarkdownOptions{}))
	}
	assert.Empty(t, Render(content.Section(99), g))
	assert.Empty(t, Render(content.SectionAbstract, nil))
}

func TestRenderKeyMatchesRender(t *testing.T) {
	g := guide(t)
	for _, s := range content.Sections() {
		assert.Equal(t, Render(s, g), RenderKey(s.String(), g))
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	g := guide(t)
	for _, s := range content.Sections() {
		first := Markdown(Render(s, g), MarkdownOptions{})
		second := Markdown(Render(s, g), MarkdownOptions{})
		assert.Equal(t, first, second, s.String())
	}
}

func TestAbstract(t *testing.T) {
	md := Markdown(RenderKey("Abstract", guide(t)), MarkdownOptions{})
	assert.Contains(t, md, "Tourism Guide System")
	assert.Contains(t, md, "Domain: Travel and Tourism Technology")
	assert.Contains(t, md, "- Database: MySQL")
}

func TestCompanyProfileLink(t *testing.T) {
	doc := Render(content.SectionCompanyProfile, guide(t))
	links := doc.Links()
	require.Len(t, links, 1)
	assert.Equal(t, "https://vinsupinfotech.com/", links[0].URL)

	md := Markdown(doc, MarkdownOptions{})
	assert.Contains(t, md, "Madurai, Tamil Nadu - 625016")
	assert.Contains(t, md, "- Digital Marketing")
}

func TestModulesDescription(t *testing.T) {
	g := guide(t)
	doc := Render(content.SectionModulesDescription, g)

	var names []string
	for _, h := range doc.Headings() {
		if h.Level == 3 {
			names = append(names, h.Text)
		}
	}
	require.Len(t, names, 10)
	for i, m := range g.Modules {
		assert.Equal(t, m.Name, names[i])
	}

	md := Markdown(doc, MarkdownOptions{})
	last := -1
	for _, m := range g.Modules {
		idx := strings.Index(md, "### "+m.Name+"\n\n"+m.Description)
		require.GreaterOrEqual(t, idx, 0, m.Name)
		assert.Greater(t, idx, last, "module %q out of order", m.Name)
		last = idx
	}
}

func TestDatabaseSchema(t *testing.T) {
	md := Markdown(RenderKey("Database Schema", guide(t)), MarkdownOptions{})

	tables := map[string]string{
		"Users":        "UserID, Name, Email, Password, Preferences",
		"Destinations": "DestinationID, Name, Location, Description, Category, Images",
		"Bookings":     "BookingID, UserID, DestinationID, Type, Date, Status",
		"Reviews":      "ReviewID, UserID, DestinationID, Rating, Comment",
		"Itineraries":  "ItineraryID, UserID, Name, Destinations, Dates",
	}
	for name, fields := range tables {
		assert.Contains(t, md, name+" Table")
		assert.Contains(t, md, "Fields: "+fields+".")
	}

	start := strings.Index(md, "```python\n")
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(md[start+3:], "```")
	require.Greater(t, end, 0)
	code := md[start : start+3+end]
	assert.Equal(t, 3, strings.Count(code, "(models.Model):"))
	for _, model := range []string{"class Location", "class Review", "class Itinerary"} {
		assert.Contains(t, code, model)
	}
}

func TestDatabaseExecution(t *testing.T) {
	doc := Render(content.SectionDatabaseExecution, guide(t))

	var top, nested []string
	for _, h := range doc.Headings() {
		switch h.Level {
		case 3:
			top = append(top, h.Text)
		case 4:
			nested = append(nested, h.Text)
		}
	}
	assert.Equal(t, []string{
		"Step 1: Running the Server",
		"Step 2: Accessing the Admin Panel",
		"Step 3: Adding Data to the Database",
		"Step 4: Viewing Data in SQLite Database",
	}, top)
	assert.Equal(t, []string{
		"Step 3.1: Adding Location Data",
		"Step 3.2: Adding Itinerary Data",
		"Step 3.3: Adding Review Data",
	}, nested)

	md := Markdown(doc, MarkdownOptions{})
	for i, file := range []string{"s3-1.png", "s3-2.png", "s3-3.png"} {
		assert.Contains(t, md, "!["+nested[i]+"]("+file+")")
	}
	assert.Contains(t, md, "```bash\npython manage.py runserver\n```")
	assert.Contains(t, md, "- "+SubStepPrefix+"Click `Add New` to insert a new location.")
	assert.Contains(t, md, "\n\nRun `SELECT * FROM table_name;` to view the stored records.\n\n")
	assert.NotContains(t, md, "```\nRun `SELECT", "notes are prose, not code")

	var files []string
	for _, img := range doc.Images() {
		files = append(files, img.File)
	}
	assert.Equal(t, []string{
		"s1.png", "s2.png", "Admin.jpg", "s3-1.png", "s3-2.png", "s3-3.png", "s4.png", "s4-1.png",
	}, files)
}

func TestNestedStepOrder(t *testing.T) {
	md := Markdown(Render(content.SectionDatabaseExecution, guide(t)), MarkdownOptions{})
	parentImage := strings.Index(md, "(Admin.jpg)")
	firstChild := strings.Index(md, "#### Step 3.1")
	step4 := strings.Index(md, "### Step 4")
	require.Positive(t, parentImage)
	assert.Less(t, parentImage, firstChild)
	assert.Less(t, firstChild, step4)
}

func TestRenderStepClampsHeadingLevel(t *testing.T) {
	doc := renderStep(content.ExecutionStep{Title: "deep", Command: "true"}, 9)
	require.NotEmpty(t, doc)
	assert.Equal(t, Heading{Level: 6, Text: "deep"}, doc[0])
}

func TestRenderAll(t *testing.T) {
	doc := RenderAll(guide(t))
	var titles []string
	for _, h := range doc.Headings() {
		if h.Level == 1 {
			titles = append(titles, h.Text)
		}
	}
	require.Len(t, titles, 7)
	for i, item := range content.Navigation() {
		assert.Equal(t, item.Label, titles[i])
	}
	assert.Equal(t, 6, strings.Count(Markdown(doc, MarkdownOptions{}), "\n---\n"))
	assert.Equal(t, "Abstract", doc.Title())
}
