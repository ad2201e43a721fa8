package cmd

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mittwald/hwcheck/internal/config"
	"github.com/mittwald/hwcheck/pkg/host"
	"github.com/mittwald/hwcheck/pkg/probe"
	"github.com/spf13/cobra"
)

// loadConfig reads the config dir. A dir given explicitly on the command
// line must exist.
func (g *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(g.configDir, cmd.Flags().Changed("config-dir"))
}

func (g *globalOptions) buildRegistry(cmd *cobra.Command) (*probe.Registry, error) {
	cfg, err := g.loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return probe.NewHardwareRegistry(cfg, host.Local(cfg.Python, cfg.GPU.TimeoutDuration()))
}

func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
