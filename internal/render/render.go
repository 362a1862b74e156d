package render

import (
	"fmt"
	"strings"

	"github.com/henri123lemoine/tourguide/internal/content"
)

// SubStepPrefix marks each manual sub-step in the execution walkthrough.
const SubStepPrefix = "✅ "

type sectionRenderer func(g *content.Guide) Document

// renderers must hold an entry for every content.Section.
var renderers = map[content.Section]sectionRenderer{
	content.SectionAbstract:           renderAbstract,
	content.SectionCompanyProfile:     renderCompanyProfile,
	content.SectionSystemAnalysis:     renderSystemAnalysis,
	content.SectionSystemDesign:       renderSystemDesign,
	content.SectionModulesDescription: renderModules,
	content.SectionDatabaseSchema:     renderDatabaseSchema,
	content.SectionDatabaseExecution:  renderDatabaseExecution,
}

// Render builds the document for section s. It has no side effects and
// returns an empty document for values outside the Section enum.
func Render(s content.Section, g *content.Guide) Document {
	fn, ok := renderers[s]
	if !ok || g == nil {
		return nil
	}
	return fn(g)
}

// RenderKey renders the section named by key. Unknown keys yield an empty
// document rather than an error.
func RenderKey(key string, g *content.Guide) Document {
	s, ok := content.ParseSection(key)
	if !ok {
		return nil
	}
	return Render(s, g)
}

// RenderAll renders every section in navigation order, separated by rules.
func RenderAll(g *content.Guide) Document {
	var doc Document
	for i, item := range content.Navigation() {
		if i > 0 {
			doc = append(doc, Rule{})
		}
		doc = append(doc, Render(item.Key, g)...)
	}
	return doc
}

func title(s content.Section) Heading {
	return Heading{Level: 1, Text: s.String()}
}

func fieldItems(fields []content.Field) []string {
	items := make([]string, 0, len(fields))
	for _, f := range fields {
		items = append(items, f.String())
	}
	return items
}

func renderAbstract(g *content.Guide) Document {
	a := g.Abstract
	return Document{
		title(content.SectionAbstract),
		Paragraph{Text: a.Summary},
		Paragraph{Text: a.Domain.String()},
		Heading{Level: 2, Text: "Technology Stack"},
		Bullets{Items: fieldItems(a.Technology)},
	}
}

func renderCompanyProfile(g *content.Guide) Document {
	c := g.Company
	return Document{
		title(content.SectionCompanyProfile),
		Paragraph{Text: c.Summary},
		Heading{Level: 2, Text: "Address"},
		// Two trailing spaces force a Markdown line break.
		Paragraph{Text: strings.Join(c.Address, "  \n")},
		Heading{Level: 2, Text: "Core Services"},
		Bullets{Items: c.Services},
		Link{Label: c.Website.Label, URL: c.Website.URL},
	}
}

func renderSystemAnalysis(g *content.Guide) Document {
	a := g.Analysis
	return Document{
		title(content.SectionSystemAnalysis),
		Heading{Level: 2, Text: "Problem Statement"},
		Paragraph{Text: a.Problem},
		Heading{Level: 2, Text: "Key Objectives"},
		Bullets{Items: a.Objectives},
	}
}

func renderSystemDesign(g *content.Guide) Document {
	d := g.Design
	return Document{
		title(content.SectionSystemDesign),
		Heading{Level: 2, Text: "ER Diagram Entities"},
		Bullets{Items: fieldItems(d.Entities)},
		Image{File: d.ERDiagram.File, Caption: d.ERDiagram.Caption},
		Heading{Level: 2, Text: "Sequence Diagram"},
		Bullets{Items: fieldItems(d.Sequences)},
		Image{File: d.SequenceDiagram.File, Caption: d.SequenceDiagram.Caption},
	}
}

func renderModules(g *content.Guide) Document {
	doc := Document{title(content.SectionModulesDescription)}
	for _, m := range g.Modules {
		doc = append(doc,
			Heading{Level: 3, Text: m.Name},
			Paragraph{Text: m.Description},
		)
	}
	return doc
}

func renderDatabaseSchema(g *content.Guide) Document {
	s := g.Schema
	doc := Document{title(content.SectionDatabaseSchema)}
	for i, t := range s.Tables {
		doc = append(doc,
			Heading{Level: 3, Text: fmt.Sprintf("%d. %s Table", i+1, t.Name)},
			Bullets{Items: []string{"Fields: " + strings.Join(t.Fields, ", ") + "."}},
		)
	}
	doc = append(doc,
		Heading{Level: 2, Text: s.Models.Title},
		CodeBlock{Language: s.Models.Language, Code: s.Models.Code},
	)
	return doc
}

func renderDatabaseExecution(g *content.Guide) Document {
	e := g.Execution
	doc := Document{
		title(content.SectionDatabaseExecution),
		Paragraph{Text: e.Intro},
	}
	for _, step := range e.Steps {
		step.Walk(func(s content.ExecutionStep, depth int) {
			doc = append(doc, renderStep(s, 3+depth)...)
		})
	}
	return doc
}

// renderStep renders one walkthrough node without its children.
func renderStep(s content.ExecutionStep, level int) Document {
	if level > 6 {
		level = 6
	}
	doc := Document{
		Heading{Level: level, Text: s.Title},
		Paragraph{Text: s.Description},
		CodeBlock{Language: "bash", Code: s.Command},
	}
	for _, note := range s.Notes {
		doc = append(doc, Paragraph{Text: note})
	}
	if len(s.SubSteps) > 0 {
		doc = append(doc, Bullets{Prefix: SubStepPrefix, Items: s.SubSteps})
	}
	for _, file := range s.Images {
		doc = append(doc, Image{File: file, Caption: s.Title})
	}
	return doc
}
