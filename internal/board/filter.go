package board

import (
	"strings"

	"github.com/avaleri/burnboard/internal/domain/project"
)

// Criteria is the current filter state of the project list. A zero Criteria
// keeps every project visible.
type Criteria struct {
	Status project.Status
	Query  string
}

// Filter derives the visible subset of projects from the full collection and
// the current criteria. It is a pure function: a nil collection behaves as an
// empty one, the status filter applies before the search filter, and the two
// compose by intersection.
func Filter(projects []project.Project, c Criteria) []project.Project {
	visible := projects
	if visible == nil {
		visible = []project.Project{}
	}

	if c.Status != "" {
		kept := make([]project.Project, 0, len(visible))
		for _, p := range visible {
			if p.Status == c.Status {
				kept = append(kept, p)
			}
		}
		visible = kept
	}

	if c.Query != "" {
		query := strings.ToLower(c.Query)
		kept := make([]project.Project, 0, len(visible))
		for _, p := range visible {
			if strings.Contains(strings.ToLower(p.Name), query) {
				kept = append(kept, p)
			}
		}
		visible = kept
	}

	return visible
}

// Section is one status-grouped slice of the visible set, as rendered by the
// presentation layer.
type Section struct {
	Status   project.Status
	Projects []project.Project
}

// Sections partitions the visible set into active and inactive groups. While
// a status filter is set the opposite section is suppressed entirely rather
// than rendered empty.
func Sections(visible []project.Project, c Criteria) []Section {
	var sections []Section
	if c.Status != project.StatusInactive {
		sections = append(sections, section(visible, project.StatusActive))
	}
	if c.Status != project.StatusActive {
		sections = append(sections, section(visible, project.StatusInactive))
	}
	return sections
}

func section(visible []project.Project, status project.Status) Section {
	s := Section{Status: status, Projects: []project.Project{}}
	for _, p := range visible {
		if p.Status == status {
			s.Projects = append(s.Projects, p)
		}
	}
	return s
}
