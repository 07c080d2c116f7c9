package resume

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
	yaml "gopkg.in/yaml.v3"

	"resumec/common"
)

// Style defaults used when a document omits parts of its style section.
const (
	DefaultThemeColor       = "#2E74B5"
	DefaultLineHeight       = 1.25
	DefaultParagraphSpacing = 8.0
	DefaultFontSize         = 10.5
	DefaultPagePadding      = 20.0
)

// DefaultStyle returns the style used for documents with no style section.
func DefaultStyle() Style {
	return Style{
		Template:         common.TemplateKindClassic,
		FontFamily:       common.FontFamilyCalibri,
		ThemeColor:       DefaultThemeColor,
		LineHeight:       DefaultLineHeight,
		ParagraphSpacing: DefaultParagraphSpacing,
		FontSize:         DefaultFontSize,
		PagePadding:      DefaultPagePadding,
	}
}

// Parse decodes a YAML resume document. Unknown fields are rejected so typos
// in hand-edited documents surface immediately.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode resume document: %w", err)
	}
	doc.Normalize()
	return doc, nil
}

// Load reads and parses a resume document from file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read resume document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("unable to parse resume document '%s': %w", path, err)
	}
	doc.SrcName = path
	return doc, nil
}

// Save marshals document back to YAML.
func (d *Document) Save(path string) error {
	data, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("unable to marshal resume document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write resume document: %w", err)
	}
	return nil
}

// Normalize fills omitted style values, assigns ids to records that lack
// them and creates the default section ordering when none is present.
// Record ids must be stable, they anchor block identity across rebuilds.
func (d *Document) Normalize() {
	if d.Style == (Style{}) {
		d.Style = DefaultStyle()
	}
	def := DefaultStyle()
	if d.Style.ThemeColor == "" {
		d.Style.ThemeColor = def.ThemeColor
	}
	if d.Style.LineHeight <= 0 {
		d.Style.LineHeight = def.LineHeight
	}
	if d.Style.ParagraphSpacing < 0 {
		d.Style.ParagraphSpacing = def.ParagraphSpacing
	}
	if d.Style.FontSize <= 0 {
		d.Style.FontSize = def.FontSize
	}
	if d.Style.PagePadding < 0 {
		d.Style.PagePadding = def.PagePadding
	}

	for i := range d.Education {
		if d.Education[i].ID == "" {
			d.Education[i].ID = uuid.NewString()
		}
	}
	for i := range d.Experience {
		if d.Experience[i].ID == "" {
			d.Experience[i].ID = uuid.NewString()
		}
	}
	for i := range d.Internships {
		if d.Internships[i].ID == "" {
			d.Internships[i].ID = uuid.NewString()
		}
	}
	for i := range d.Campus {
		if d.Campus[i].ID == "" {
			d.Campus[i].ID = uuid.NewString()
		}
	}
	for i := range d.Projects {
		if d.Projects[i].ID == "" {
			d.Projects[i].ID = uuid.NewString()
		}
	}
	for i := range d.Skills {
		if d.Skills[i].ID == "" {
			d.Skills[i].ID = uuid.NewString()
		}
	}
	for i := range d.CustomSections {
		if d.CustomSections[i].ID == "" {
			d.CustomSections[i].ID = uuid.NewString()
		}
		for j := range d.CustomSections[i].Items {
			if d.CustomSections[i].Items[j].ID == "" {
				d.CustomSections[i].Items[j].ID = uuid.NewString()
			}
		}
	}

	if len(d.Sections) == 0 {
		d.Sections = DefaultSections()
	}
	for i := range d.Sections {
		if d.Sections[i].ID == "" {
			if d.Sections[i].Type == common.SectionKindCustom {
				d.Sections[i].ID = uuid.NewString()
			} else {
				d.Sections[i].ID = string(d.Sections[i].Type)
			}
		}
	}
}

// DefaultSections is the ordering used when a document does not specify one.
func DefaultSections() []SectionConfig {
	return []SectionConfig{
		{ID: "education", Type: common.SectionKindEducation, Visible: true},
		{ID: "experience", Type: common.SectionKindExperience, Visible: true},
		{ID: "projects", Type: common.SectionKindProjects, Visible: true},
	}
}
