package probe

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()
	reg, err := NewRegistryFrom(
		Func("disk space", func(context.Context) Result { return Result{OK: true, Details: Text("3.00 GB free")} }),
		Func("interfaces enabled", func(context.Context) Result {
			return Result{OK: false, Details: Map{{Key: "I2C", Value: Flag(true)}, {Key: "SPI", Value: Flag(false)}}}
		}),
	)
	require.NoError(t, err)
	report, err := RunAll(context.Background(), reg)
	require.NoError(t, err)
	return report
}

func TestRenderTemplate(t *testing.T) {
	tpl := `{{ range .Results }}{{ .Title }}={{ if .OK }}ok{{ else }}{{ .Details | upper }}{{ end }};{{ end }}{{ .Passed }}/{{ .Total }}`

	var out bytes.Buffer
	require.NoError(t, RenderTemplate(&out, "inline", tpl, sampleReport(t)))

	assert.Equal(t, "Disk Space=ok;Interfaces Enabled={I2C: TRUE, SPI: FALSE};1/2", out.String())
}

func TestRenderTemplateExposesStructuredValues(t *testing.T) {
	tpl := `{{ range .Results }}{{ if eq .Name "interfaces enabled" }}{{ index .Value "SPI" }}{{ end }}{{ end }}`

	var out bytes.Buffer
	require.NoError(t, RenderTemplate(&out, "inline", tpl, sampleReport(t)))

	assert.Equal(t, "false", out.String())
}

func TestRenderTemplateFileUsesEnvironment(t *testing.T) {
	t.Setenv("HWCHECK_SITE", "lab-3")
	path := filepath.Join(t.TempDir(), "report.tpl")
	require.NoError(t, os.WriteFile(path, []byte(`{{ .Env.HWCHECK_SITE }}: {{ .Passed }} passed`), 0o644))

	var out bytes.Buffer
	require.NoError(t, RenderTemplateFile(&out, path, sampleReport(t)))

	assert.Equal(t, "lab-3: 1 passed", out.String())
}

func TestRenderTemplateErrors(t *testing.T) {
	report := sampleReport(t)

	err := RenderTemplate(&bytes.Buffer{}, "broken", "{{ .Results ", report)
	assert.ErrorContains(t, err, "failed to parse template broken")

	err = RenderTemplateFile(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.tpl"), report)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
