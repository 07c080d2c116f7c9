// Package resume defines the document model: identity profile, content
// sections, ordering configuration and style settings. The model is read-only
// for the rendering pipelines, only the editing surface mutates it.
package resume

import (
	"resumec/common"
)

// Profile is the singleton identity record of a document.
type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title,omitempty"`
	Email    string `yaml:"email,omitempty"`
	Phone    string `yaml:"phone,omitempty"`
	Location string `yaml:"location,omitempty"`
	Summary  string `yaml:"summary,omitempty"`

	// Avatar is a path to an image file, resolved relative to the document.
	Avatar     string `yaml:"avatar,omitempty"`
	ShowAvatar bool   `yaml:"show_avatar,omitempty"`

	// extended demographic fields, rendered as additional meta lines
	Gender          string `yaml:"gender,omitempty"`
	BirthYear       string `yaml:"birth_year,omitempty"`
	WorkYears       string `yaml:"work_years,omitempty"`
	JobStatus       string `yaml:"job_status,omitempty"`
	Salary          string `yaml:"salary,omitempty"`
	NativePlace     string `yaml:"native_place,omitempty"`
	PoliticalStatus string `yaml:"political_status,omitempty"`
	Height          string `yaml:"height,omitempty"`
	Weight          string `yaml:"weight,omitempty"`
}

type Education struct {
	ID          string `yaml:"id,omitempty"`
	School      string `yaml:"school"`
	Degree      string `yaml:"degree,omitempty"`
	StartDate   string `yaml:"start_date,omitempty"`
	EndDate     string `yaml:"end_date,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Experience doubles as internship and campus activity record, matching the
// editing surface which reuses the same form for all three.
type Experience struct {
	ID          string `yaml:"id,omitempty"`
	Company     string `yaml:"company"`
	Position    string `yaml:"position,omitempty"`
	StartDate   string `yaml:"start_date,omitempty"`
	EndDate     string `yaml:"end_date,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type Project struct {
	ID          string `yaml:"id,omitempty"`
	Name        string `yaml:"name"`
	Role        string `yaml:"role,omitempty"`
	StartDate   string `yaml:"start_date,omitempty"`
	EndDate     string `yaml:"end_date,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type Skill struct {
	ID    string `yaml:"id,omitempty"`
	Name  string `yaml:"name"`
	Level string `yaml:"level,omitempty"`
}

// CustomItem is a generic record for user defined sections.
type CustomItem struct {
	ID          string `yaml:"id,omitempty"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle,omitempty"`
	Date        string `yaml:"date,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type CustomSection struct {
	ID    string       `yaml:"id,omitempty"`
	Title string       `yaml:"title"`
	Items []CustomItem `yaml:"items,omitempty"`
}

// SectionConfig is the only source of truth for section ordering and
// visibility. It references content by kind (and by id for custom sections),
// it does not own it. A custom entry pointing to a missing section renders
// nothing.
type SectionConfig struct {
	ID      string             `yaml:"id"`
	Type    common.SectionKind `yaml:"type"`
	Visible bool               `yaml:"visible"`
	Name    string             `yaml:"name,omitempty"`
}

// Style holds the abstract style configuration. All renderer-specific values
// are derived from it by the style resolver, never here.
type Style struct {
	Template         common.TemplateKind `yaml:"template"`
	FontFamily       common.FontFamily   `yaml:"font_family"`
	ThemeColor       string              `yaml:"theme_color"`
	LineHeight       float64             `yaml:"line_height"`
	ParagraphSpacing float64             `yaml:"paragraph_spacing"`
	FontSize         float64             `yaml:"font_size"`
	PagePadding      float64             `yaml:"page_padding"`
}

// Document is a complete resume.
type Document struct {
	Profile        Profile         `yaml:"profile"`
	Education      []Education     `yaml:"education,omitempty"`
	Experience     []Experience    `yaml:"experience,omitempty"`
	Internships    []Experience    `yaml:"internships,omitempty"`
	Campus         []Experience    `yaml:"campus,omitempty"`
	Projects       []Project       `yaml:"projects,omitempty"`
	Skills         []Skill         `yaml:"skills,omitempty"`
	CustomSections []CustomSection `yaml:"custom_sections,omitempty"`
	Sections       []SectionConfig `yaml:"sections,omitempty"`
	Style          Style           `yaml:"style"`

	// SrcName is the path document was loaded from, empty for in-memory documents.
	SrcName string `yaml:"-"`
}

// CustomSectionByID resolves a custom section reference. Returns nil when the
// reference dangles.
func (d *Document) CustomSectionByID(id string) *CustomSection {
	for i := range d.CustomSections {
		if d.CustomSections[i].ID == id {
			return &d.CustomSections[i]
		}
	}
	return nil
}
