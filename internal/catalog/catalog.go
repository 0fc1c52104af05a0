package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Chapter struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	HasVideo bool   `yaml:"hasVideo" json:"hasVideo"`
	HasNotes bool   `yaml:"hasNotes" json:"hasNotes"`
	HasTest  bool   `yaml:"hasTest" json:"hasTest"`
}

type Subject struct {
	ID       string    `yaml:"id" json:"id"`
	Name     string    `yaml:"name" json:"name"`
	Icon     string    `yaml:"icon" json:"icon"`
	Chapters []Chapter `yaml:"chapters" json:"chapters"`
}

// Catalog is read-only after load.
type Catalog struct {
	Classes  map[int][]string `yaml:"classes"`
	Subjects []Subject        `yaml:"subjects"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(c.Classes) == 0 {
		return nil, fmt.Errorf("catalog defines no classes")
	}
	return &c, nil
}

// SubjectsForClass returns nil for a class the catalog does not know.
func (c *Catalog) SubjectsForClass(class int) []string {
	subjects, ok := c.Classes[class]
	if !ok {
		return nil
	}
	out := make([]string, len(subjects))
	copy(out, subjects)
	return out
}

func (c *Catalog) HasSubject(class int, subject string) bool {
	for _, s := range c.Classes[class] {
		if s == subject {
			return true
		}
	}
	return false
}

// FindChapter matches a subject by id or name and a chapter by id or title.
func (c *Catalog) FindChapter(subject, chapter string) (*Subject, *Chapter, bool) {
	for i := range c.Subjects {
		s := &c.Subjects[i]
		if s.ID != subject && s.Name != subject {
			continue
		}
		for j := range s.Chapters {
			ch := &s.Chapters[j]
			if ch.ID == chapter || ch.Title == chapter {
				return s, ch, true
			}
		}
		return s, nil, false
	}
	return nil, nil, false
}
