package probe

import (
	"context"
	"os"

	"github.com/mittwald/hwcheck/internal/config"
)

type device struct {
	label string
	path  string
}

type interfacesProbe struct {
	devices []device
}

func NewInterfacesProbe(cfg *config.Interfaces) *interfacesProbe {
	return &interfacesProbe{devices: []device{
		{label: "I2C", path: cfg.I2C},
		{label: "SPI", path: cfg.SPI},
		{label: "GPIO", path: cfg.GPIO},
	}}
}

func (i *interfacesProbe) Name() string {
	return NameInterfacesEnabled
}

func (i *interfacesProbe) Check(context.Context) Result {
	details := make(Map, 0, len(i.devices))
	all := true

	for _, d := range i.devices {
		_, err := os.Stat(d.path)
		enabled := err == nil
		all = all && enabled
		details = append(details, Entry{Key: d.label, Value: Flag(enabled)})
	}

	return Result{OK: all, Details: details}
}
