package probe

import (
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/mittwald/hwcheck/internal/config"
)

type osReleaseProbe struct {
	path          string
	accepted      []string
	kernelRelease func() (string, error)
}

func NewOSReleaseProbe(cfg *config.OSRelease, kernelRelease func() (string, error)) *osReleaseProbe {
	return &osReleaseProbe{
		path:          cfg.Path,
		accepted:      cfg.Accepted,
		kernelRelease: kernelRelease,
	}
}

func (o *osReleaseProbe) Name() string {
	return NameOSRelease
}

func (o *osReleaseProbe) Check(context.Context) Result {
	fields := map[string]string{}
	if raw, err := os.ReadFile(o.path); err == nil {
		fields = ParseOSRelease(string(raw))
	}

	prettyName, ok := fields["PRETTY_NAME"]
	if !ok {
		prettyName = o.platform()
	}

	supported := false
	for _, marker := range o.accepted {
		if strings.Contains(prettyName, marker) {
			supported = true
			break
		}
	}

	return Result{OK: supported, Details: Text(prettyName)}
}

// platform describes the host when no os-release name is available.
func (o *osReleaseProbe) platform() string {
	parts := []string{runtime.GOOS}
	if o.kernelRelease != nil {
		if release, err := o.kernelRelease(); err == nil {
			parts = append(parts, release)
		}
	}
	return strings.Join(append(parts, runtime.GOARCH), "-")
}

// ParseOSRelease parses KEY=VALUE lines, stripping quotes from values.
func ParseOSRelease(data string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(data, "\n") {
		key, value, ok := strings.Cut(strings.TrimRight(line, "\r"), "=")
		if !ok {
			continue
		}
		fields[key] = strings.Trim(value, `"`)
	}
	return fields
}
