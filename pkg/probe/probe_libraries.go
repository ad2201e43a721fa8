package probe

import (
	"context"

	"github.com/mittwald/hwcheck/internal/config"
	"github.com/mittwald/hwcheck/pkg/module"
	log "github.com/sirupsen/logrus"
)

type cameraLibraryProbe struct {
	module   string
	hint     string
	resolver module.Resolver
}

func NewCameraLibraryProbe(cfg *config.CameraLibrary, resolver module.Resolver) *cameraLibraryProbe {
	return &cameraLibraryProbe{module: cfg.Module, hint: cfg.Hint, resolver: resolver}
}

func (c *cameraLibraryProbe) Name() string {
	return NameCameraLibrary
}

func (c *cameraLibraryProbe) Check(ctx context.Context) Result {
	mod, err := c.resolver.Resolve(ctx, c.module)
	if err != nil {
		log.WithFields(log.Fields{"kind": "probe", "name": NameCameraLibrary, "err": err}).Debug("module not resolved")
		return Result{OK: false, Details: Text(c.hint)}
	}

	version := mod.Version
	if version == "" {
		version = module.UnknownVersion
	}
	return Result{OK: true, Details: Textf("%s %s", c.module, version)}
}

type gpioLibrariesProbe struct {
	modules  []string
	resolver module.Resolver
}

func NewGPIOLibrariesProbe(cfg *config.GPIOLibraries, resolver module.Resolver) *gpioLibrariesProbe {
	return &gpioLibrariesProbe{modules: cfg.Modules, resolver: resolver}
}

func (g *gpioLibrariesProbe) Name() string {
	return NameGPIOLibraries
}

// Check resolves each module on its own; one failing lookup does not
// affect the others.
func (g *gpioLibrariesProbe) Check(ctx context.Context) Result {
	details := make(Map, 0, len(g.modules))
	anyFound := false

	for _, name := range g.modules {
		found := module.Available(ctx, g.resolver, name)
		anyFound = anyFound || found
		details = append(details, Entry{Key: name, Value: Flag(found)})
	}

	return Result{OK: anyFound, Details: details}
}
