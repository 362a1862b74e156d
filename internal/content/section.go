package content

import (
	"errors"
	"fmt"
)

// Section identifies one of the fixed content blocks selectable from the sidebar.
type Section int

const (
	SectionAbstract Section = iota
	SectionCompanyProfile
	SectionSystemAnalysis
	SectionSystemDesign
	SectionModulesDescription
	SectionDatabaseSchema
	SectionDatabaseExecution

	sectionCount
)

// ErrUnknownSection is returned when a key does not name a section.
var ErrUnknownSection = errors.New("unknown section")

var sectionKeys = [sectionCount]string{
	SectionAbstract:           "Abstract",
	SectionCompanyProfile:     "Company Profile",
	SectionSystemAnalysis:     "System Analysis",
	SectionSystemDesign:       "System Design",
	SectionModulesDescription: "Modules Description",
	SectionDatabaseSchema:     "Database Schema",
	SectionDatabaseExecution:  "Database Execution",
}

// String returns the section key exactly as the navigation shows it.
func (s Section) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Section(%d)", int(s))
	}
	return sectionKeys[s]
}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	return s >= 0 && s < sectionCount
}

// Sections returns every section in navigation order.
func Sections() []Section {
	all := make([]Section, 0, sectionCount)
	for s := Section(0); s < sectionCount; s++ {
		all = append(all, s)
	}
	return all
}

// ParseSection maps a key back to its section. Keys must match exactly.
func ParseSection(key string) (Section, bool) {
	for i, k := range sectionKeys {
		if k == key {
			return Section(i), true
		}
	}
	return 0, false
}

// LookupSection is ParseSection for callers that need an error value.
func LookupSection(key string) (Section, error) {
	s, ok := ParseSection(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSection, key)
	}
	return s, nil
}
