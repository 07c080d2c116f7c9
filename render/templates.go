package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"resumec/common"
	"resumec/config"
	"resumec/content"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Name       string
	Title      string
	Location   string
	Template   string
	Format     string
	SourceFile string
	Date       string
	Pages      int
}

func expandTemplate(c *content.Content, name config.TemplateFieldName, field string, format common.OutputFmt) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Name:       c.Doc.Profile.Name,
		Title:      c.Doc.Profile.Title,
		Location:   c.Doc.Profile.Location,
		Template:   c.Style.Template.String(),
		Format:     format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(c.SrcName), filepath.Ext(c.SrcName)),
		Date:       time.Now().Format("2006-01-02"),
		Pages:      len(c.Pages),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
