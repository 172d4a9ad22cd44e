package content

import "time"

// SectionType identifies which renderer a section is drawn with.
type SectionType string

const (
	SectionBio       SectionType = "bio"
	SectionTimeline  SectionType = "timeline"
	SectionProjects  SectionType = "projects"
	SectionSkills    SectionType = "skills"
	SectionEducation SectionType = "education"
	SectionContact   SectionType = "contact"
)

// SectionTypes lists every known section type in display-neutral order.
var SectionTypes = []SectionType{
	SectionBio,
	SectionTimeline,
	SectionProjects,
	SectionSkills,
	SectionEducation,
	SectionContact,
}

// MediaType is the kind of a media item.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Graph is the complete portfolio content. It is read-only once loaded and
// is shared by pointer between view synthesis and the interaction engine.
type Graph struct {
	PersonalInfo PersonalInfo `yaml:"personalInfo" json:"personalInfo"`
	Sections     []Section    `yaml:"sections" json:"sections"`
	Metadata     Metadata     `yaml:"metadata" json:"metadata"`
}

// PersonalInfo describes the portfolio owner.
type PersonalInfo struct {
	Name     string       `yaml:"name" json:"name"`
	Title    string       `yaml:"title" json:"title"`
	ImageURL string       `yaml:"imageUrl" json:"imageUrl"`
	Email    string       `yaml:"email" json:"email"`
	Socials  []SocialLink `yaml:"socials" json:"socials"`
}

// SocialLink is an external profile link rendered with an icon.
type SocialLink struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
	Icon string `yaml:"icon" json:"icon"`
}

// Metadata holds site-wide settings.
type Metadata struct {
	SiteName        string `yaml:"siteName" json:"siteName,omitempty"`
	SiteDescription string `yaml:"siteDescription" json:"siteDescription,omitempty"`
	LastUpdated     Date   `yaml:"lastUpdated" json:"lastUpdated"`
}

// Section is one top-level block of the page. ID doubles as the in-page
// fragment target and must be unique within a graph.
type Section struct {
	ID      string         `yaml:"id" json:"id"`
	Title   string         `yaml:"title" json:"title"`
	Type    SectionType    `yaml:"type" json:"type"`
	Content SectionContent `yaml:"-" json:"-"`
}

// SectionContent is the closed set of section payloads. The unexported
// marker keeps the set closed to this package.
type SectionContent interface {
	sectionType() SectionType
}

// BioContent is an introduction with optional media.
type BioContent struct {
	Text  []string `yaml:"text" json:"text"`
	Media []Media  `yaml:"media" json:"media,omitempty"`
}

// TimelineContent lists work experience.
type TimelineContent struct {
	Entries []Experience
}

// ProjectsContent lists portfolio projects.
type ProjectsContent struct {
	Projects []Project
}

// SkillsContent groups skills into ordered categories.
type SkillsContent struct {
	Categories []SkillCategory
}

// EducationContent lists degrees.
type EducationContent struct {
	Items []Education `yaml:"items" json:"items"`
}

// ContactContent is the intro line shown in the contact chat window.
type ContactContent struct {
	Intro string
}

// UnknownContent stands in for a section whose type has no renderer.
// Such sections render their title only.
type UnknownContent struct {
	Type SectionType
	Raw  any
}

func (BioContent) sectionType() SectionType       { return SectionBio }
func (TimelineContent) sectionType() SectionType  { return SectionTimeline }
func (ProjectsContent) sectionType() SectionType  { return SectionProjects }
func (SkillsContent) sectionType() SectionType    { return SectionSkills }
func (EducationContent) sectionType() SectionType { return SectionEducation }
func (ContactContent) sectionType() SectionType   { return SectionContact }
func (c UnknownContent) sectionType() SectionType { return c.Type }

// Experience is one timeline entry.
type Experience struct {
	Role             string   `yaml:"role" json:"role"`
	Company          string   `yaml:"company" json:"company"`
	Period           string   `yaml:"period" json:"period"`
	Responsibilities []string `yaml:"responsibilities" json:"responsibilities"`
}

// Education is one education entry. Unlike experience it has no period.
type Education struct {
	Degree     string   `yaml:"degree" json:"degree"`
	University string   `yaml:"university" json:"university"`
	Year       string   `yaml:"year" json:"year"`
	Notes      []string `yaml:"notes" json:"notes"`
}

// Project is one card in a projects section.
type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description []string `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags" json:"tags"`
	Links       []Link   `yaml:"links" json:"links"`
	Media       []Media  `yaml:"media" json:"media,omitempty"`
}

// Link is a named external URL.
type Link struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Media is an image or video with an optional thumbnail and caption.
type Media struct {
	Type    MediaType `yaml:"type" json:"type"`
	Src     string    `yaml:"src" json:"src"`
	Thumb   string    `yaml:"thumb" json:"thumb,omitempty"`
	Alt     string    `yaml:"alt" json:"alt,omitempty"`
	Caption string    `yaml:"caption" json:"caption,omitempty"`
}

// IsVideo reports whether the item is a video.
func (m Media) IsVideo() bool { return m.Type == MediaVideo }

// ThumbSrc returns the thumbnail URL, falling back to the source.
func (m Media) ThumbSrc() string {
	if m.Thumb != "" {
		return m.Thumb
	}
	return m.Src
}

// SkillCategory is a named group of skills.
type SkillCategory struct {
	Name   string
	Skills []string
}

// Date is a calendar timestamp that accepts the loose formats found in
// hand-written content files.
type Date struct {
	time.Time
}
