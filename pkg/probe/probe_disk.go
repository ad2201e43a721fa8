package probe

import (
	"context"

	"github.com/mittwald/hwcheck/internal/config"
	"github.com/mittwald/hwcheck/pkg/host"
	"github.com/pkg/errors"
)

const gib = 1 << 30

type diskProbe struct {
	path       string
	minFreeGiB float64
	statfs     func(string) (host.DiskUsage, error)
}

func NewDiskProbe(cfg *config.Disk, statfs func(string) (host.DiskUsage, error)) *diskProbe {
	return &diskProbe{path: cfg.Path, minFreeGiB: cfg.MinFreeGiB, statfs: statfs}
}

func (d *diskProbe) Name() string {
	return NameDiskSpace
}

func (d *diskProbe) Check(context.Context) Result {
	usage, err := d.statfs(d.path)
	if errors.Is(err, host.ErrUnsupported) {
		return Result{OK: false, Details: Text("statfs not available on this platform")}
	}
	if err != nil {
		return Result{OK: false, Details: Textf("unable to query free space: %s", err)}
	}

	free := float64(usage.AvailableBytes()) / gib
	return Result{
		OK:      free >= d.minFreeGiB,
		Details: Textf("%.2f GB free", free),
	}
}
