package content

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Encode writes g as indented JSON in the shape Decode reads.
func Encode(w io.Writer, g *Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encoding content: %w", err)
	}
	return nil
}

// Save writes g to path, creating parent directories as needed.
func Save(path string, g *Graph) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating content %s: %w", path, err)
	}
	if err := Encode(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing content %s: %w", path, err)
	}
	return nil
}

// Starter returns a small graph with one section of every kind, ready to
// be edited by hand.
func Starter(name, title, email string, now time.Time) *Graph {
	return &Graph{
		PersonalInfo: PersonalInfo{
			Name:  name,
			Title: title,
			Email: email,
		},
		Sections: []Section{
			{ID: "about", Title: "About Me", Type: SectionBio, Content: BioContent{
				Text: []string{"Write a short introduction here. **Markdown** is supported."},
			}},
			{ID: "experience", Title: "Experience", Type: SectionTimeline, Content: TimelineContent{
				Entries: []Experience{{
					Role:             "Your role",
					Company:          "Company",
					Period:           "2024 - Present",
					Responsibilities: []string{"What you worked on."},
				}},
			}},
			{ID: "projects", Title: "Projects", Type: SectionProjects, Content: ProjectsContent{
				Projects: []Project{{
					Title:       "First project",
					Description: []string{"What it does and why it matters."},
					Tags:        []string{"Go"},
					Links:       []Link{{Name: "Source", URL: "https://example.com"}},
				}},
			}},
			{ID: "skills", Title: "Skills", Type: SectionSkills, Content: SkillsContent{
				Categories: []SkillCategory{{Name: "Languages", Skills: []string{"Go"}}},
			}},
			{ID: "education", Title: "Education", Type: SectionEducation, Content: EducationContent{
				Items: []Education{{Degree: "Degree", University: "University", Year: "2020"}},
			}},
			{ID: "contact", Title: "Contact", Type: SectionContact, Content: ContactContent{
				Intro: "Have a question or want to work together? Send me a message.",
			}},
		},
		Metadata: Metadata{LastUpdated: Date{Time: now.UTC().Truncate(24 * time.Hour)}},
	}
}
