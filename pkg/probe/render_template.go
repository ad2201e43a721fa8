package probe

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type templateResult struct {
	Name    string
	Title   string
	OK      bool
	Details string
	Value   interface{}
}

type templateData struct {
	Env     map[string]string
	Results []templateResult
	Passed  int
	Total   int
}

// RenderTemplateFile renders the report through the Go template stored at path.
func RenderTemplateFile(w io.Writer, path string, r *Report) error {
	log.Infof("rendering report from template %s", path)

	contents, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read template %s", path)
	}

	return RenderTemplate(w, path, string(contents), r)
}

// RenderTemplate renders the report through text, with the sprig functions
// available.
func RenderTemplate(w io.Writer, name, text string, r *Report) error {
	tpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return errors.Wrapf(err, "failed to parse template %s", name)
	}

	data := templateData{
		Env:     make(map[string]string),
		Results: make([]templateResult, 0, r.Len()),
		Passed:  r.Passed(),
		Total:   r.Len(),
	}

	for _, e := range os.Environ() {
		e := strings.SplitN(e, "=", 2)
		if len(e) > 1 {
			data.Env[e[0]] = e[1]
		}
	}

	caser := cases.Title(language.Und)
	for name, res := range r.All() {
		data.Results = append(data.Results, templateResult{
			Name:    name,
			Title:   caser.String(name),
			OK:      res.OK,
			Details: FormatDetails(res.Details),
			Value:   detailsValue(res.Details),
		})
	}

	if err := tpl.Execute(w, &data); err != nil {
		return errors.Wrapf(err, "failed to render template %s", name)
	}
	return nil
}

// detailsValue converts details into plain values for template access.
func detailsValue(d Details) interface{} {
	switch v := d.(type) {
	case Text:
		return string(v)
	case Flag:
		return bool(v)
	case List:
		return []string(v)
	case Map:
		out := make(map[string]interface{}, len(v))
		for _, e := range v {
			out[e.Key] = detailsValue(e.Value)
		}
		return out
	default:
		return ""
	}
}
