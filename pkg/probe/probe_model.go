package probe

import (
	"context"
	"os"
	"strings"

	"github.com/mittwald/hwcheck/internal/config"
	log "github.com/sirupsen/logrus"
)

type modelProbe struct {
	path   string
	family string
}

func NewModelProbe(cfg *config.Model) *modelProbe {
	return &modelProbe{path: cfg.Path, family: cfg.Family}
}

func (m *modelProbe) Name() string {
	return NameModel
}

func (m *modelProbe) Check(context.Context) Result {
	raw, err := os.ReadFile(m.path)
	if err != nil {
		log.WithFields(log.Fields{"kind": "probe", "name": NameModel, "err": err}).Debug("cannot read model")
		return Result{
			OK:      false,
			Details: Textf("Unable to read %s. Is this running on Raspberry Pi OS?", m.path),
		}
	}

	model := strings.Trim(string(raw), "\x00\n ")
	return Result{
		OK:      strings.Contains(model, m.family),
		Details: Text(model),
	}
}
