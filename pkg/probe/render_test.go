package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLine(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, false)

	pass := c.Line(NameDiskSpace, Result{OK: true, Details: Text("12.34 GB free")})
	fail := c.Line(NameKernelVersion, Result{OK: false, Details: Text("5.10.0-rpi")})

	assert.Equal(t, fmt.Sprintf("✅ %-30s -> %s", "Disk Space", "12.34 GB free"), pass)
	assert.Equal(t, fmt.Sprintf("⚠️ %-30s -> %s", "Kernel Version", "5.10.0-rpi"), fail)
}

func TestConsoleLineKeepsLongNames(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, false)
	name := strings.Repeat("x", 40)

	line := c.Line(name, Result{OK: true, Details: Text("ok")})

	assert.Equal(t, "✅ X"+strings.Repeat("x", 39)+" -> ok", line)
}

func TestFormatDetails(t *testing.T) {
	tests := []struct {
		name     string
		details  Details
		expected string
	}{
		{"text", Text("Debian GNU/Linux 12 (bookworm)"), "Debian GNU/Linux 12 (bookworm)"},
		{"flag", Flag(false), "false"},
		{"list", List{"video0", "video19"}, "[video0, video19]"},
		{"empty list", List{}, "[]"},
		{"map", Map{{Key: "I2C", Value: Flag(true)}, {Key: "SPI", Value: Flag(false)}}, "{I2C: true, SPI: false}"},
		{"nested", Map{{Key: "media", Value: List{"media0"}}}, "{media: [media0]}"},
		{"missing", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDetails(tt.details))
		})
	}
}

func TestConsoleSummary(t *testing.T) {
	reg, err := NewRegistryFrom(constant("a", true), constant("b", false), constant("c", true))
	require.NoError(t, err)
	report, err := RunAll(context.Background(), reg)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewConsole(&out, false).Summary(report))

	assert.Equal(t, "\n2/3 checks passed\n", out.String())
}

func TestConsoleHeader(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, NewConsole(&out, false).Header("JSON Output"))

	assert.Equal(t, "\nJSON Output\n-----------\n", out.String())
}

func TestResultJSONShapes(t *testing.T) {
	tests := []struct {
		name     string
		result   Result
		expected string
	}{
		{"text", Result{OK: true, Details: Text("6.6.31")}, `{"status":true,"details":"6.6.31"}`},
		{"flag", Result{OK: false, Details: Flag(false)}, `{"status":false,"details":false}`},
		{"nil list", Result{Details: List(nil)}, `{"status":false,"details":[]}`},
		{"no html escaping", Result{Details: Text("a < b & c")}, `{"status":false,"details":"a < b & c"}`},
		{
			"map keeps order",
			Result{OK: true, Details: Map{
				{Key: "video", Value: List{"video0"}},
				{Key: "media", Value: List{}},
				{Key: "libcamera_cli", Value: Flag(true)},
			}},
			`{"status":true,"details":{"video":["video0"],"media":[],"libcamera_cli":true}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := tt.result.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(raw))
		})
	}
}

func TestWriteJSONMatchesConsoleOrder(t *testing.T) {
	f := newFixture(t)
	reg, err := NewHardwareRegistry(f.cfg, f.host)
	require.NoError(t, err)

	var console bytes.Buffer
	c := NewConsole(&console, false)
	runner := NewRunner(reg)
	for name, res := range runner.Results(context.Background()) {
		require.NoError(t, c.Print(name, res))
	}
	require.NoError(t, runner.Err())

	var out bytes.Buffer
	require.NoError(t, WriteJSON(&out, runner.Report(), false))

	lines := strings.Split(strings.TrimSuffix(console.String(), "\n"), "\n")
	keys := jsonKeys(t, out.Bytes())
	assert.Len(t, lines, len(keys))
	assert.Equal(t, reg.Names(), keys)
	assert.True(t, strings.HasPrefix(out.String(), "{\n  \""), "output must be indented by two spaces")

	var decoded map[string]struct {
		Status  bool            `json:"status"`
		Details json.RawMessage `json:"details"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.True(t, decoded[NameModel].Status)
	assert.JSONEq(t, `"Raspberry Pi 5 Model B Rev 1.0"`, string(decoded[NameModel].Details))
	assert.JSONEq(t, `{"I2C":true,"SPI":true,"GPIO":true}`, string(decoded[NameInterfacesEnabled].Details))
}

func TestWriteJSONEmptyReport(t *testing.T) {
	report, err := RunAll(context.Background(), NewRegistry())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteJSON(&out, report, false))

	assert.JSONEq(t, `{}`, out.String())
}
