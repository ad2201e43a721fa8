package probe

import (
	"context"
	"path/filepath"

	"github.com/mittwald/hwcheck/internal/config"
)

type cameraProbe struct {
	deviceDir   string
	videoPrefix string
	mediaPrefix string
	tools       []string
	lookPath    func(string) bool
}

func NewCameraProbe(cfg *config.Camera, lookPath func(string) bool) *cameraProbe {
	return &cameraProbe{
		deviceDir:   cfg.DeviceDir,
		videoPrefix: cfg.VideoPrefix,
		mediaPrefix: cfg.MediaPrefix,
		tools:       cfg.Tools,
		lookPath:    lookPath,
	}
}

func (c *cameraProbe) Name() string {
	return NameCameraInterfaces
}

func (c *cameraProbe) Check(context.Context) Result {
	video := c.devices(c.videoPrefix)
	media := c.devices(c.mediaPrefix)

	cli := false
	for _, tool := range c.tools {
		if c.lookPath(tool) {
			cli = true
			break
		}
	}

	return Result{
		OK: (len(video) > 0 || len(media) > 0) && cli,
		Details: Map{
			{Key: "video", Value: video},
			{Key: "media", Value: media},
			{Key: "libcamera_cli", Value: Flag(cli)},
		},
	}
}

// devices lists the sorted names of device nodes starting with prefix.
func (c *cameraProbe) devices(prefix string) List {
	names := List{}

	matches, err := filepath.Glob(filepath.Join(c.deviceDir, prefix+"*"))
	if err != nil {
		return names
	}

	for _, m := range matches {
		names = append(names, filepath.Base(m))
	}
	return names
}
