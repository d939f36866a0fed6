package tickettemplate

import (
	"fmt"
	"strings"
)

// Section is one entry of a template's ordered structure. Content is the
// guidance shown to the generator and may be empty.
type Section struct {
	SectionTitle string `json:"sectionTitle"`
	Content      string `json:"content"`
}

func validateSections(sections []Section) error {
	for i, s := range sections {
		if strings.TrimSpace(s.SectionTitle) == "" {
			return fmt.Errorf("section %d: sectionTitle is required", i+1)
		}
	}
	return nil
}

func copySections(sections []Section) []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}
