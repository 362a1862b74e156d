package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Guide holds every piece of static content the viewer can display.
type Guide struct {
	Abstract  Abstract          `yaml:"abstract"`
	Company   CompanyProfile    `yaml:"company"`
	Analysis  SystemAnalysis    `yaml:"analysis"`
	Design    SystemDesign      `yaml:"design"`
	Modules   []ModuleEntry     `yaml:"modules"`
	Schema    DatabaseSchema    `yaml:"schema"`
	Execution DatabaseExecution `yaml:"execution"`
}

// Field is a label/value pair rendered as "Label: Value".
type Field struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// String formats the field for display.
func (f Field) String() string {
	return f.Label + ": " + f.Value
}

// Image references a bundled picture by filename.
type Image struct {
	File    string `yaml:"file"`
	Caption string `yaml:"caption"`
}

// Link is an external URL with a display label.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Abstract is the project summary section.
type Abstract struct {
	Summary    string  `yaml:"summary"`
	Domain     Field   `yaml:"domain"`
	Technology []Field `yaml:"technology"`
}

// CompanyProfile describes the company the project was built for.
type CompanyProfile struct {
	Name     string   `yaml:"name"`
	Summary  string   `yaml:"summary"`
	Address  []string `yaml:"address"`
	Services []string `yaml:"services"`
	Website  Link     `yaml:"website"`
}

// SystemAnalysis holds the problem statement and objectives.
type SystemAnalysis struct {
	Problem    string   `yaml:"problem"`
	Objectives []string `yaml:"objectives"`
}

// SystemDesign lists the ER entities and sequence flows with their diagrams.
type SystemDesign struct {
	Entities        []Field `yaml:"entities"`
	ERDiagram       Image   `yaml:"er_diagram"`
	Sequences       []Field `yaml:"sequences"`
	SequenceDiagram Image   `yaml:"sequence_diagram"`
}

// ModuleEntry describes one module of the documented system.
type ModuleEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Table is a database table and its field names.
type Table struct {
	Name   string   `yaml:"name"`
	Fields []string `yaml:"fields"`
}

// CodeSample is a titled block of source code.
type CodeSample struct {
	Title    string `yaml:"title"`
	Language string `yaml:"language"`
	Code     string `yaml:"code"`
}

// DatabaseSchema lists the tables and the ORM models backing them.
type DatabaseSchema struct {
	Tables []Table    `yaml:"tables"`
	Models CodeSample `yaml:"models"`
}

// DatabaseExecution is the manual walkthrough of running the documented project.
type DatabaseExecution struct {
	Intro string          `yaml:"intro"`
	Steps []ExecutionStep `yaml:"steps"`
}

// ExecutionStep is one node of the walkthrough tree.
type ExecutionStep struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	Command     string          `yaml:"command"`
	Notes       []string        `yaml:"notes,omitempty"`
	Images      []string        `yaml:"images"`
	SubSteps    []string        `yaml:"sub_steps"`
	Children    []ExecutionStep `yaml:"children,omitempty"`
}

// Walk visits s and its descendants depth first. depth is 0 for s itself.
func (s ExecutionStep) Walk(fn func(step ExecutionStep, depth int)) {
	s.walk(fn, 0)
}

func (s ExecutionStep) walk(fn func(ExecutionStep, int), depth int) {
	fn(s, depth)
	for _, child := range s.Children {
		child.walk(fn, depth+1)
	}
}

//go:embed guide.yaml
var guideYAML []byte

var (
	defaultOnce  sync.Once
	defaultGuide *Guide
	defaultErr   error
)

// Parse decodes a guide document. Unknown and duplicate keys are rejected.
func Parse(data []byte) (*Guide, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var g Guide
	if err := dec.Decode(&g); err != nil {
		return nil, fmt.Errorf("decode guide: %w", err)
	}
	return &g, nil
}

// Load returns the embedded guide, decoding it on first use.
func Load() (*Guide, error) {
	defaultOnce.Do(func() {
		defaultGuide, defaultErr = Parse(guideYAML)
	})
	return defaultGuide, defaultErr
}

// Default is Load for callers that treat a broken embedded guide as a bug.
func Default() *Guide {
	g, err := Load()
	if err != nil {
		panic(err)
	}
	return g
}
