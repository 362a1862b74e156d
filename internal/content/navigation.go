package content

// MenuTitle is the heading shown above the navigation items.
const MenuTitle = "Tourism Guide System"

// MenuIcon is the icon name shown next to MenuTitle.
const MenuIcon = "globe"

// AppTitle is the title displayed above the content pane.
const AppTitle = "Tourism Guided System"

// NavigationItem is one selectable entry in the sidebar.
type NavigationItem struct {
	Key   Section
	Label string
	Icon  string
}

var navigation = []NavigationItem{
	{Key: SectionAbstract, Label: "Abstract", Icon: "info-circle"},
	{Key: SectionCompanyProfile, Label: "Company Profile", Icon: "building"},
	{Key: SectionSystemAnalysis, Label: "System Analysis", Icon: "bar-chart"},
	{Key: SectionSystemDesign, Label: "System Design", Icon: "server"},
	{Key: SectionModulesDescription, Label: "Modules Description", Icon: "list-task"},
	{Key: SectionDatabaseSchema, Label: "Database Schema", Icon: "database"},
	{Key: SectionDatabaseExecution, Label: "Database Execution", Icon: "play-circle"},
}

// Navigation returns the sidebar items in display order.
// The returned slice is a copy; callers may modify it freely.
func Navigation() []NavigationItem {
	items := make([]NavigationItem, len(navigation))
	copy(items, navigation)
	return items
}

// DefaultSection is the section selected when the viewer starts.
func DefaultSection() Section {
	return navigation[0].Key
}

// ItemFor returns the navigation item for s.
func ItemFor(s Section) (NavigationItem, bool) {
	for _, item := range navigation {
		if item.Key == s {
			return item, true
		}
	}
	return NavigationItem{}, false
}
