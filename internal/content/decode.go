package content

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateSection is returned when two sections share an id.
var ErrDuplicateSection = errors.New("duplicate section id")

// Load reads a content graph from a YAML or JSON file.
func Load(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening content %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading content %s: %w", path, err)
	}
	return g, nil
}

// Decode parses a content graph. JSON input is accepted since YAML is a
// superset of it.
func Decode(r io.Reader) (*Graph, error) {
	var g Graph
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&g); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty content document")
		}
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	seen := make(map[string]bool, len(g.Sections))
	for _, s := range g.Sections {
		if seen[s.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSection, s.ID)
		}
		seen[s.ID] = true
	}
	return &g, nil
}

// UnmarshalYAML decodes the type-tagged content field into its variant.
func (s *Section) UnmarshalYAML(value *yaml.Node) error {
	var head struct {
		ID      string      `yaml:"id"`
		Title   string      `yaml:"title"`
		Type    SectionType `yaml:"type"`
		Content yaml.Node   `yaml:"content"`
	}
	if err := value.Decode(&head); err != nil {
		return err
	}
	s.ID = head.ID
	s.Title = head.Title
	s.Type = head.Type

	content, err := decodeContent(head.Type, &head.Content)
	if err != nil {
		return fmt.Errorf("section %q: %w", head.ID, err)
	}
	s.Content = content
	return nil
}

func decodeContent(t SectionType, node *yaml.Node) (SectionContent, error) {
	empty := node.Kind == 0
	switch t {
	case SectionBio:
		var c BioContent
		if !empty {
			if err := node.Decode(&c); err != nil {
				return nil, err
			}
		}
		return c, nil
	case SectionTimeline:
		var c TimelineContent
		if !empty {
			if err := node.Decode(&c.Entries); err != nil {
				return nil, err
			}
		}
		return c, nil
	case SectionProjects:
		var c ProjectsContent
		if !empty {
			if err := node.Decode(&c.Projects); err != nil {
				return nil, err
			}
		}
		return c, nil
	case SectionSkills:
		var c SkillsContent
		if !empty {
			if err := node.Decode(&c); err != nil {
				return nil, err
			}
		}
		return c, nil
	case SectionEducation:
		var c EducationContent
		if !empty {
			if err := node.Decode(&c); err != nil {
				return nil, err
			}
		}
		return c, nil
	case SectionContact:
		var c ContactContent
		if !empty {
			if err := node.Decode(&c.Intro); err != nil {
				return nil, err
			}
		}
		return c, nil
	default:
		c := UnknownContent{Type: t}
		if !empty {
			if err := node.Decode(&c.Raw); err != nil {
				return nil, err
			}
		}
		return c, nil
	}
}

// MarshalJSON writes the section back in its source shape.
func (s Section) MarshalJSON() ([]byte, error) {
	var content any
	switch c := s.Content.(type) {
	case BioContent:
		content = c
	case TimelineContent:
		content = c.Entries
	case ProjectsContent:
		content = c.Projects
	case SkillsContent:
		content = c
	case EducationContent:
		content = c
	case ContactContent:
		content = c.Intro
	case UnknownContent:
		content = c.Raw
	}
	return json.Marshal(struct {
		ID      string      `json:"id"`
		Title   string      `json:"title"`
		Type    SectionType `json:"type"`
		Content any         `json:"content,omitempty"`
	}{s.ID, s.Title, s.Type, content})
}

// UnmarshalYAML keeps categories in declaration order.
func (c *SkillsContent) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("skills content must be a mapping, got line %d", value.Line)
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var cat SkillCategory
		cat.Name = value.Content[i].Value
		if err := value.Content[i+1].Decode(&cat.Skills); err != nil {
			return fmt.Errorf("skills category %q: %w", cat.Name, err)
		}
		c.Categories = append(c.Categories, cat)
	}
	return nil
}

// MarshalJSON writes categories as an object in declaration order.
func (c SkillsContent) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cat := range c.Categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(cat.Name)
		if err != nil {
			return nil, err
		}
		skills, err := json.Marshal(cat.Skills)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(skills)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"January 2, 2006",
	"2 January 2006",
}

// UnmarshalYAML accepts RFC 3339 timestamps and plain dates.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.TrimSpace(value.Value)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("unrecognised date %q (use YYYY-MM-DD or RFC 3339)", raw)
}

// MarshalJSON writes the date as YYYY-MM-DD.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}
