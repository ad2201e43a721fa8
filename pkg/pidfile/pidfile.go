package pidfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var ErrAlreadyRunning = errors.New("another process holds the pid file")

// PIDFile guards a long-running hwcheck server against a second instance.
// The zero path disables it.
type PIDFile struct {
	path string
	file *os.File
}

func New(path string) *PIDFile {
	return &PIDFile{path: path}
}

func (f *PIDFile) Path() string {
	return f.path
}

func (f *PIDFile) Acquire() error {
	if f.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create pid file directory %q", filepath.Dir(f.path))
	}

	for {
		file, err := os.OpenFile(f.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if errors.Is(err, os.ErrExist) {
			if err := f.removeStale(); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to open pid file %q", f.path)
		}

		if _, err := fmt.Fprintf(file, "%d", os.Getpid()); err != nil {
			_ = file.Close()
			_ = os.Remove(f.path)
			return errors.Wrapf(err, "failed to write pid to pid file %q", f.path)
		}

		f.file = file
		log.WithField("pidfile", f.path).Info("acquired pid file")
		return nil
	}
}

// removeStale deletes the pid file if the process it names is gone.
func (f *PIDFile) removeStale() error {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return errors.Wrapf(err, "failed to read pid file %q", f.path)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return errors.Wrapf(err, "failed to parse pid file %q", f.path)
	}

	if process, err := os.FindProcess(pid); err == nil {
		if err := process.Signal(syscall.Signal(0)); err == nil {
			return errors.Wrapf(ErrAlreadyRunning, "%s (pid %d)", f.path, pid)
		}
	}

	log.WithFields(log.Fields{"pidfile": f.path, "pid": pid}).Info("removing stale pid file")

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrapf(err, "failed to remove pid file %q", f.path)
	}
	return nil
}

func (f *PIDFile) Release() error {
	if f.path == "" || f.file == nil {
		return nil
	}

	if err := f.file.Close(); err != nil {
		return errors.Wrapf(err, "failed to close pid file %q", f.path)
	}
	f.file = nil

	if err := os.Remove(f.path); err != nil {
		return errors.Wrapf(err, "failed to remove pid file %q", f.path)
	}

	log.WithField("pidfile", f.path).Info("released pid file")
	return nil
}
