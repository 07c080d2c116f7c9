// Package blocks flattens a resume document into a linear sequence of
// atomic, independently sized content blocks. Every rendering pipeline
// consumes this sequence, none of them looks at the document directly, so
// ordering and visibility decisions are made exactly once.
package blocks

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"resumec/common"
	"resumec/resume"
)

// Default section titles used when ordering configuration carries no
// override. The editing surface is Chinese first, same as the documents.
const (
	TitleSummary     = "个人简介"
	TitleEducation   = "教育背景"
	TitleExperience  = "工作经历"
	TitleInternships = "实习经历"
	TitleCampus      = "校园经历"
	TitleProjects    = "项目经验"
	TitleSkills      = "专业技能"
)

// Block is the atomic rendering unit. The ID is stable across rebuilds as
// long as the underlying record id does not change.
type Block struct {
	ID   string
	Kind Kind

	// section titles and items
	Title    string
	Date     string
	Subtitle string
	Body     string // may contain rich text markup

	// header payload
	Name       string
	MetaLines  []string
	AvatarPath string
	ShowAvatar bool
}

// Options tweak sequence construction.
type Options struct {
	// Now anchors age derivation from the birth year field. Zero value
	// means current time.
	Now time.Time
}

// Build produces the block sequence for a document. The document is never
// mutated. Invisible sections, sections resolving to zero records and
// dangling custom references contribute nothing.
func Build(doc *resume.Document, opts Options) []Block {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var seq []Block
	seq = append(seq, headerBlocks(doc, now)...)

	if doc.Profile.Summary != "" {
		seq = append(seq,
			Block{ID: "summary-title", Kind: KindSectionTitle, Title: TitleSummary},
			Block{ID: "summary", Kind: KindSummary, Body: doc.Profile.Summary},
		)
	}

	for _, cfg := range doc.Sections {
		if !cfg.Visible {
			continue
		}
		seq = append(seq, sectionBlocks(doc, cfg)...)
	}
	return seq
}

func headerBlocks(doc *resume.Document, now time.Time) []Block {
	p := doc.Profile
	meta := metaLines(p, now)

	if doc.Style.Template == common.TemplateKindCurve {
		// decorative band with the identity line, then the profile grid
		return []Block{
			{ID: "band", Kind: KindBand, Name: p.Name, Title: p.Title},
			{
				ID: "profile", Kind: KindProfileGrid,
				MetaLines:  meta,
				AvatarPath: p.Avatar,
				ShowAvatar: p.ShowAvatar && p.Avatar != "",
			},
		}
	}
	return []Block{{
		ID: "header", Kind: KindHeader,
		Name:       p.Name,
		MetaLines:  meta,
		AvatarPath: p.Avatar,
		ShowAvatar: p.ShowAvatar && p.Avatar != "",
	}}
}

// metaLines assembles the header meta lines, joining present fields with a
// literal " | " and skipping the separator next to empty fields.
func metaLines(p resume.Profile, now time.Time) []string {
	var lines []string

	add := func(parts ...string) {
		if line := joinMeta(parts); line != "" {
			lines = append(lines, line)
		}
	}

	add(p.Title, p.Salary, p.JobStatus)

	age := ""
	if p.BirthYear != "" {
		if y, err := strconv.Atoi(p.BirthYear); err == nil {
			age = fmt.Sprintf("%d岁", now.Year()-y)
		}
	}
	add(p.Gender, age, p.WorkYears, p.Location, p.NativePlace, p.PoliticalStatus)

	add(p.Phone, p.Email)

	height, weight := "", ""
	if p.Height != "" {
		height = p.Height + "cm"
	}
	if p.Weight != "" {
		weight = p.Weight + "kg"
	}
	add(height, weight)

	return lines
}

func joinMeta(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " | ")
}

func sectionBlocks(doc *resume.Document, cfg resume.SectionConfig) []Block {
	title := cfg.Name

	type record struct {
		id, title, date, subtitle, body string
	}
	var records []record

	dates := func(start, end string) string {
		return start + " - " + end
	}

	switch cfg.Type {
	case common.SectionKindEducation:
		if title == "" {
			title = TitleEducation
		}
		for _, e := range doc.Education {
			records = append(records, record{e.ID, e.School, dates(e.StartDate, e.EndDate), e.Degree, e.Description})
		}
	case common.SectionKindExperience:
		if title == "" {
			title = TitleExperience
		}
		for _, e := range doc.Experience {
			records = append(records, record{e.ID, e.Company, dates(e.StartDate, e.EndDate), e.Position, e.Description})
		}
	case common.SectionKindInternships:
		if title == "" {
			title = TitleInternships
		}
		for _, e := range doc.Internships {
			records = append(records, record{e.ID, e.Company, dates(e.StartDate, e.EndDate), e.Position, e.Description})
		}
	case common.SectionKindCampus:
		if title == "" {
			title = TitleCampus
		}
		for _, e := range doc.Campus {
			records = append(records, record{e.ID, e.Company, dates(e.StartDate, e.EndDate), e.Position, e.Description})
		}
	case common.SectionKindProjects:
		if title == "" {
			title = TitleProjects
		}
		for _, p := range doc.Projects {
			records = append(records, record{p.ID, p.Name, dates(p.StartDate, p.EndDate), p.Role, p.Description})
		}
	case common.SectionKindSkills:
		if title == "" {
			title = TitleSkills
		}
		for _, s := range doc.Skills {
			// skills have no date range, the level goes into the subtitle
			records = append(records, record{s.ID, s.Name, "", s.Level, ""})
		}
	case common.SectionKindCustom:
		s := doc.CustomSectionByID(cfg.ID)
		if s == nil {
			// dangling reference, accepted consistency contract
			return nil
		}
		title = s.Title
		for _, i := range s.Items {
			// custom items carry their date verbatim, possibly empty
			records = append(records, record{i.ID, i.Title, i.Date, i.Subtitle, i.Description})
		}
	default:
		return nil
	}

	if len(records) == 0 {
		return nil
	}

	seq := make([]Block, 0, len(records)+1)
	seq = append(seq, Block{ID: "sec:" + cfg.ID, Kind: KindSectionTitle, Title: title})
	for _, r := range records {
		seq = append(seq, Block{
			ID:       "item:" + r.id,
			Kind:     KindItem,
			Title:    r.title,
			Date:     r.date,
			Subtitle: r.subtitle,
			Body:     r.body,
		})
	}
	return seq
}
