package probe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultNameWidth = 30

	glyphPass = "✅"
	glyphFail = "⚠️"
)

// Console prints results line by line as they arrive.
type Console struct {
	Out   io.Writer
	Color bool
	Width int
}

func NewConsole(out io.Writer, color bool) *Console {
	return &Console{Out: out, Color: color, Width: DefaultNameWidth}
}

func (c *Console) Header(title string) error {
	underline := strings.Repeat("-", utf8.RuneCountInString(title))
	if c.Color {
		title = styleHeader.Render(title)
	}
	_, err := fmt.Fprintf(c.Out, "\n%s\n%s\n", title, underline)
	return err
}

// Line formats a single result as "<glyph> <Name padded> -> <details>".
func (c *Console) Line(name string, res Result) string {
	title := cases.Title(language.Und).String(name)
	padding := ""
	if n := utf8.RuneCountInString(title); n < c.Width {
		padding = strings.Repeat(" ", c.Width-n)
	}

	glyph := glyphFail
	if res.OK {
		glyph = glyphPass
	}

	details := FormatDetails(res.Details)

	if c.Color {
		title = styleName.Render(title)
		if res.OK {
			details = stylePass.Render(details)
		} else {
			details = styleFail.Render(details)
		}
	}

	return glyph + " " + title + padding + " -> " + details
}

// Print writes the line for one result in a single write.
func (c *Console) Print(name string, res Result) error {
	_, err := io.WriteString(c.Out, c.Line(name, res)+"\n")
	return err
}

func (c *Console) Summary(r *Report) error {
	line := fmt.Sprintf("%d/%d checks passed", r.Passed(), r.Len())
	if c.Color {
		style := styleSummaryPass
		if r.Passed() < r.Len() {
			style = styleSummaryFail
		}
		line = style.Render(line)
	}
	_, err := fmt.Fprintf(c.Out, "\n%s\n", line)
	return err
}

// FormatDetails returns the console form of a details payload.
func FormatDetails(d Details) string {
	switch v := d.(type) {
	case nil:
		return ""
	case Text:
		return string(v)
	case Flag:
		return fmt.Sprintf("%t", bool(v))
	case List:
		return "[" + strings.Join(v, ", ") + "]"
	case Map:
		parts := make([]string, 0, len(v))
		for _, e := range v {
			parts = append(parts, e.Key+": "+FormatDetails(e.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (res Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"status":`)
	if res.OK {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
	buf.WriteString(`,"details":`)
	if err := writeDetailsJSON(&buf, res.Details); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the report as one object keyed by probe name, keeping
// registration order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		raw, err := r.results[name].MarshalJSON()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode result of probe %q", name)
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeDetailsJSON(buf *bytes.Buffer, d Details) error {
	switch v := d.(type) {
	case nil:
		return writeJSONValue(buf, "")
	case Text:
		return writeJSONValue(buf, string(v))
	case Flag:
		return writeJSONValue(buf, bool(v))
	case List:
		if v == nil {
			v = List{}
		}
		return writeJSONValue(buf, []string(v))
	case Map:
		buf.WriteByte('{')
		for i, e := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONValue(buf, e.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeDetailsJSON(buf, e.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return writeJSONValue(buf, fmt.Sprintf("%v", v))
	}
}

func writeJSONValue(buf *bytes.Buffer, v interface{}) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

// MarshalReport is the compact JSON form of r.
func MarshalReport(r *Report) ([]byte, error) {
	return r.MarshalJSON()
}

var jsonOptions = &pretty.Options{Width: 80, Prefix: "", Indent: "  ", SortKeys: false}

// WriteJSON writes the indented report, colourised when color is set.
func WriteJSON(w io.Writer, r *Report, color bool) error {
	raw, err := MarshalReport(r)
	if err != nil {
		return err
	}

	out := pretty.PrettyOptions(raw, jsonOptions)
	if color {
		out = pretty.Color(out, nil)
	}

	_, err = w.Write(out)
	return err
}
