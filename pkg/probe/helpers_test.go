package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mittwald/hwcheck/internal/config"
	"github.com/mittwald/hwcheck/pkg/command"
	"github.com/mittwald/hwcheck/pkg/host"
	"github.com/mittwald/hwcheck/pkg/module"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	versions map[string]string
	calls    []string
	failOn   string
}

func (f *fakeResolver) Resolve(_ context.Context, name string) (module.Module, error) {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return module.Module{}, errors.New("resolver exploded")
	}
	version, ok := f.versions[name]
	if !ok {
		return module.Module{}, errors.Wrapf(module.ErrNotFound, "%s", name)
	}
	return module.Module{Name: name, Version: version}, nil
}

type fakeRunner struct {
	result command.Result
	err    error
	argv   []string
	wait   bool
}

func (f *fakeRunner) Run(ctx context.Context, argv ...string) (command.Result, error) {
	f.argv = argv
	if f.wait {
		<-ctx.Done()
		return command.Result{ExitCode: -1}, errors.Wrap(command.ErrTimeout, argv[0])
	}
	return f.result, f.err
}

func lookPathOf(available ...string) func(string) bool {
	set := make(map[string]bool)
	for _, a := range available {
		set[a] = true
	}
	return func(name string) bool { return set[name] }
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

// fixture describes a healthy Raspberry Pi 5 rooted in a temp directory.
type fixture struct {
	root string
	cfg  *config.Config
	host *host.Host
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()

	cfg := &config.Config{
		Model:      &config.Model{Path: filepath.Join(root, "proc/device-tree/model")},
		OSRelease:  &config.OSRelease{Path: filepath.Join(root, "etc/os-release")},
		Camera:     &config.Camera{DeviceDir: filepath.Join(root, "dev")},
		Interfaces: &config.Interfaces{I2C: filepath.Join(root, "dev/i2c-1"), SPI: filepath.Join(root, "dev/spidev0.0"), GPIO: filepath.Join(root, "dev/gpiomem")},
	}
	require.NoError(t, cfg.ApplyDefaults())

	require.NoError(t, os.MkdirAll(filepath.Join(root, "proc/device-tree"), 0o755))
	require.NoError(t, os.WriteFile(cfg.Model.Path, []byte("Raspberry Pi 5 Model B Rev 1.0\x00"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "etc"), 0o755))
	require.NoError(t, os.WriteFile(cfg.OSRelease.Path, []byte("PRETTY_NAME=\"Debian GNU/Linux 12 (bookworm)\"\nID=debian\n"), 0o644))
	for _, dev := range []string{"video0", "video19", "media0", "i2c-1", "spidev0.0", "gpiomem"} {
		touch(t, filepath.Join(root, "dev", dev))
	}

	return &fixture{
		root: root,
		cfg:  cfg,
		host: &host.Host{
			LookPath:      lookPathOf("libcamera-hello", "vcgencmd"),
			KernelRelease: func() (string, error) { return "6.6.31+rpt-rpi-2712", nil },
			Statfs: func(string) (host.DiskUsage, error) {
				return host.DiskUsage{FragmentSize: 4096, Blocks: 7864320, Available: 786432}, nil
			},
			Commands: &fakeRunner{result: command.Result{Stdout: "gpu=8M\n"}},
			Modules:  &fakeResolver{versions: map[string]string{"picamera2": "0.3.19", "gpiozero": "2.0"}},
		},
	}
}

// jsonKeys returns the top-level keys of a JSON object in document order.
func jsonKeys(t *testing.T, raw []byte) []string {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		keys = append(keys, tok.(string))

		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}
	return keys
}
