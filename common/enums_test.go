package common

import (
	"testing"

	yaml "gopkg.in/yaml.v3"
)

func TestTemplateKind_RoundTrip(t *testing.T) {
	for _, name := range TemplateKindNames() {
		v, err := ParseTemplateKind(name)
		if err != nil {
			t.Errorf("ParseTemplateKind(%q) error = %v", name, err)
			continue
		}
		if v.String() != name {
			t.Errorf("TemplateKind %q round trips to %q", name, v.String())
		}
	}
	if _, err := ParseTemplateKind("fancy"); err == nil {
		t.Error("ParseTemplateKind accepted unknown name")
	}
}

func TestTemplateKind_LeftAligned(t *testing.T) {
	if TemplateKindClassic.LeftAligned() || TemplateKindCurve.LeftAligned() {
		t.Error("classic and curve center the header")
	}
	if !TemplateKindModern.LeftAligned() || !TemplateKindMinimal.LeftAligned() {
		t.Error("modern and minimal left align the header")
	}
}

func TestTemplateKind_UniformPadding(t *testing.T) {
	if TemplateKindCurve.UniformPadding() {
		t.Error("curve keeps its own band geometry")
	}
	if !TemplateKindClassic.UniformPadding() {
		t.Error("classic pads uniformly")
	}
}

func TestOutputFmt_Ext(t *testing.T) {
	tests := []struct {
		fmt OutputFmt
		ext string
	}{
		{OutputFmtHtml, ".html"},
		{OutputFmtDocx, ".docx"},
		{OutputFmtImgdocx, ".docx"},
		{OutputFmtPng, ".png"},
		{OutputFmtPdf, ".pdf"},
	}
	for _, tt := range tests {
		if got := tt.fmt.Ext(); got != tt.ext {
			t.Errorf("%v.Ext() = %q, want %q", tt.fmt, got, tt.ext)
		}
	}
}

func TestOutputFmt_Rasterized(t *testing.T) {
	for _, f := range []OutputFmt{OutputFmtPng, OutputFmtPdf, OutputFmtImgdocx} {
		if !f.Rasterized() {
			t.Errorf("%v must be rasterized", f)
		}
	}
	for _, f := range []OutputFmt{OutputFmtHtml, OutputFmtDocx} {
		if f.Rasterized() {
			t.Errorf("%v must not be rasterized", f)
		}
	}
}

func TestSectionKind_Valid(t *testing.T) {
	for _, name := range SectionKindNames() {
		if v, err := ParseSectionKind(name); err != nil || !v.IsValid() {
			t.Errorf("ParseSectionKind(%q) = %v, %v", name, v, err)
		}
	}
	if SectionKind("hobby").IsValid() {
		t.Error("unknown section kind reported valid")
	}
}

func TestEnums_YAML(t *testing.T) {
	type styleProbe struct {
		Template TemplateKind `yaml:"template"`
		Font     FontFamily   `yaml:"font"`
		Section  SectionKind  `yaml:"section"`
	}

	in := styleProbe{TemplateKindCurve, FontFamilyKaiti, SectionKindProjects}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var out styleProbe
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}

	var bad styleProbe
	if err := yaml.Unmarshal([]byte("template: futuristic"), &bad); err == nil {
		t.Error("unknown template name accepted")
	}
	if err := yaml.Unmarshal([]byte("font: wingdings"), &bad); err == nil {
		t.Error("unknown font name accepted")
	}
	if err := yaml.Unmarshal([]byte("section: hobby"), &bad); err == nil {
		t.Error("unknown section kind accepted")
	}
}
