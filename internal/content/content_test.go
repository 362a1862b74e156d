package content

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionKeysRoundTrip(t *testing.T) {
	for _, s := range Sections() {
		got, ok := ParseSection(s.String())
		require.True(t, ok, "ParseSection(%q)", s.String())
		assert.Equal(t, s, got)
	}
}

func TestParseSectionRejectsUnknownKeys(t *testing.T) {
	for _, key := range []string{"", "abstract", "Abstract ", "Home", "Section(3)"} {
		_, ok := ParseSection(key)
		assert.False(t, ok, "ParseSection(%q) should fail", key)
	}

	_, err := LookupSection("Home")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSection))
}

func TestSectionValid(t *testing.T) {
	assert.True(t, SectionAbstract.Valid())
	assert.True(t, SectionDatabaseExecution.Valid())
	assert.False(t, Section(-1).Valid())
	assert.False(t, Section(7).Valid())
	assert.Equal(t, "Section(42)", Section(42).String())
}

func TestNavigationOrder(t *testing.T) {
	items := Navigation()
	require.Len(t, items, 7)

	wantLabels := []string{
		"Abstract", "Company Profile", "System Analysis", "System Design",
		"Modules Description", "Database Schema", "Database Execution",
	}
	wantIcons := []string{
		"info-circle", "building", "bar-chart", "server", "list-task", "database", "play-circle",
	}
	for i, item := range items {
		assert.Equal(t, wantLabels[i], item.Label)
		assert.Equal(t, wantIcons[i], item.Icon)
		assert.Equal(t, item.Label, item.Key.String())
	}
	assert.Equal(t, SectionAbstract, DefaultSection())
}

func TestNavigationReturnsCopy(t *testing.T) {
	items := Navigation()
	items[0].Label = "changed"
	assert.Equal(t, "Abstract", Navigation()[0].Label)
}

func TestEmbeddedGuideLoads(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.Contains(t, g.Abstract.Summary, "Tourism Guide System")
	assert.Equal(t, "Domain: Travel and Tourism Technology", g.Abstract.Domain.String())
	assert.Len(t, g.Modules, 10)
	assert.Len(t, g.Schema.Tables, 5)
	assert.Equal(t, "https://vinsupinfotech.com/", g.Company.Website.URL)

	require.Len(t, g.Execution.Steps, 4)
	assert.Len(t, g.Execution.Steps[2].Children, 3)
	assert.Equal(t, []string{"s4.png", "s4-1.png"}, g.Execution.Steps[3].Images)
	assert.Equal(t, []string{"Run `SELECT * FROM table_name;` to view the stored records."}, g.Execution.Steps[3].Notes)

	assert.Same(t, g, Default())
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("abstract:\n  summary: x\n  colour: red\n"))
	require.Error(t, err)
}

func TestParseRejectsDuplicateKeys(t *testing.T) {
	doc := `execution:
  steps:
    - title: Step
      command: a
      command: b
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
}

func TestExecutionStepWalk(t *testing.T) {
	step := Default().Execution.Steps[2]

	var titles []string
	var depths []int
	step.Walk(func(s ExecutionStep, depth int) {
		titles = append(titles, s.Title)
		depths = append(depths, depth)
	})

	assert.Equal(t, []string{
		"Step 3: Adding Data to the Database",
		"Step 3.1: Adding Location Data",
		"Step 3.2: Adding Itinerary Data",
		"Step 3.3: Adding Review Data",
	}, titles)
	assert.Equal(t, []int{0, 1, 1, 1}, depths)
}
