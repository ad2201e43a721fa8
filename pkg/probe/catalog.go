package probe

import (
	"github.com/mittwald/hwcheck/internal/config"
	"github.com/mittwald/hwcheck/pkg/host"
	log "github.com/sirupsen/logrus"
)

const (
	NameModel             = "model"
	NameOSRelease         = "os release"
	NameKernelVersion     = "kernel version"
	NameCameraInterfaces  = "camera interfaces"
	NameCameraLibrary     = "camera library"
	NameGPIOLibraries     = "gpio libraries"
	NameInterfacesEnabled = "interfaces enabled"
	NameDiskSpace         = "disk space"
	NameGPUMemory         = "gpu memory"
)

// BuildProbes returns the hardware compatibility probes in display order,
// without the ones listed in cfg.Skip.
func BuildProbes(cfg *config.Config, h *host.Host) []Probe {
	all := []Probe{
		NewModelProbe(cfg.Model),
		NewOSReleaseProbe(cfg.OSRelease, h.KernelRelease),
		NewKernelProbe(cfg.Kernel, h.KernelRelease),
		NewCameraProbe(cfg.Camera, h.LookPath),
		NewCameraLibraryProbe(cfg.CameraLibrary, h.Modules),
		NewGPIOLibrariesProbe(cfg.GPIOLibraries, h.Modules),
		NewInterfacesProbe(cfg.Interfaces),
		NewDiskProbe(cfg.Disk, h.Statfs),
		NewGPUProbe(cfg.GPU, h.LookPath, h.Commands),
	}

	skip := make(map[string]bool, len(cfg.Skip))
	for _, name := range cfg.Skip {
		skip[name] = true
	}

	result := make([]Probe, 0, len(all))
	for _, p := range all {
		if skip[p.Name()] {
			log.WithFields(log.Fields{"kind": "probe", "name": p.Name()}).Info("skipping probe")
			continue
		}
		result = append(result, p)
	}
	return result
}

// NewHardwareRegistry builds the registry of all configured probes.
func NewHardwareRegistry(cfg *config.Config, h *host.Host) (*Registry, error) {
	return NewRegistryFrom(BuildProbes(cfg, h)...)
}
