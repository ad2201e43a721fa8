package config

import (
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl"
	"github.com/mittwald/hwcheck/internal/helper"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const DefaultConfigDir = "/etc/hwcheck.d"

const (
	DefaultPython        = "python3"
	DefaultModelPath     = "/proc/device-tree/model"
	DefaultModelFamily   = "Raspberry Pi 5"
	DefaultOSReleasePath = "/etc/os-release"
	DefaultKernelPrefix  = "6."
	DefaultDeviceDir     = "/dev"
	DefaultVideoPrefix   = "video"
	DefaultMediaPrefix   = "media"
	DefaultCameraModule  = "picamera2"
	DefaultCameraHint    = "picamera2 Python module not found. Install with 'sudo apt install python3-picamera2'."
	DefaultI2CDevice     = "/dev/i2c-1"
	DefaultSPIDevice     = "/dev/spidev0.0"
	DefaultGPIODevice    = "/dev/gpiomem"
	DefaultDiskPath      = "/"
	DefaultMinFreeGiB    = 2.0
	DefaultGPUCommand    = "vcgencmd"
	DefaultGPUKeyword    = "gpu"
	DefaultGPUHint       = "vcgencmd command not found. Install 'raspi-config' or enable VPU firmware tools."
	DefaultGPUTimeout    = "10s"
)

var (
	DefaultAcceptedDistributions = []string{"Debian", "Raspbian"}
	DefaultCameraTools           = []string{"libcamera-jpeg", "libcamera-hello"}
	DefaultGPIOModules           = []string{"gpiozero", "RPi.GPIO", "rpi_lgpio"}
	DefaultGPUArgs               = []string{"get_mem", "gpu"}
)

// Default returns a configuration with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.ApplyDefaults(); err != nil {
		panic(err)
	}
	return cfg
}

// Load reads every *.hcl file found below configDir. A missing directory
// yields the defaults unless required is set.
func Load(configDir string, required bool) (*Config, error) {
	cfg := &Config{}

	if err := cfg.GenerateFromConfigDir(configDir); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			log.WithField("configDir", configDir).Debug("config directory not found, using defaults")
		} else {
			return nil, err
		}
	}

	if err := cfg.ApplyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) GenerateFromConfigDir(configDir string) error {
	configDir = strings.TrimRight(configDir, "/")

	matches, err := findFilesInPath(configDir)
	if err != nil {
		return errors.Wrapf(err, "could not read configuration directory %s", configDir)
	}

	for _, m := range matches {
		log.Infof("found config file: %s", m)

		contents, err := os.ReadFile(m)
		if err != nil {
			return errors.Wrapf(err, "could not read configuration file %s", m)
		}

		fileCfg := Config{}
		if err := hcl.Unmarshal(contents, &fileCfg); err != nil {
			return errors.Wrapf(err, "could not parse configuration file %s", m)
		}

		cfg.merge(&fileCfg)
	}

	return nil
}

// merge copies every block set in other over cfg. Later files win.
func (cfg *Config) merge(other *Config) {
	if other.Python != "" {
		cfg.Python = other.Python
	}
	cfg.Skip = append(cfg.Skip, other.Skip...)

	if other.Model != nil {
		cfg.Model = other.Model
	}
	if other.OSRelease != nil {
		cfg.OSRelease = other.OSRelease
	}
	if other.Kernel != nil {
		cfg.Kernel = other.Kernel
	}
	if other.Camera != nil {
		cfg.Camera = other.Camera
	}
	if other.CameraLibrary != nil {
		cfg.CameraLibrary = other.CameraLibrary
	}
	if other.GPIOLibraries != nil {
		cfg.GPIOLibraries = other.GPIOLibraries
	}
	if other.Interfaces != nil {
		cfg.Interfaces = other.Interfaces
	}
	if other.Disk != nil {
		cfg.Disk = other.Disk
	}
	if other.GPU != nil {
		cfg.GPU = other.GPU
	}
}

// ApplyDefaults resolves ENV: references and fills in every empty value.
func (cfg *Config) ApplyDefaults() error {
	cfg.Python = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Python), DefaultPython, "python", "")

	if cfg.Model == nil {
		cfg.Model = &Model{}
	}
	cfg.Model.Path = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Model.Path), DefaultModelPath, "path", "model")
	cfg.Model.Family = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Model.Family), DefaultModelFamily, "family", "model")

	if cfg.OSRelease == nil {
		cfg.OSRelease = &OSRelease{}
	}
	cfg.OSRelease.Path = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.OSRelease.Path), DefaultOSReleasePath, "path", "osRelease")
	cfg.OSRelease.Accepted = helper.SetDefaultStringsIfEmpty(cfg.OSRelease.Accepted, DefaultAcceptedDistributions, "accepted", "osRelease")

	if cfg.Kernel == nil {
		cfg.Kernel = &Kernel{}
	}
	cfg.Kernel.Prefix = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Kernel.Prefix), DefaultKernelPrefix, "prefix", "kernel")

	if cfg.Camera == nil {
		cfg.Camera = &Camera{}
	}
	cfg.Camera.DeviceDir = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Camera.DeviceDir), DefaultDeviceDir, "deviceDir", "camera")
	cfg.Camera.VideoPrefix = helper.SetDefaultStringIfEmpty(cfg.Camera.VideoPrefix, DefaultVideoPrefix, "videoPrefix", "camera")
	cfg.Camera.MediaPrefix = helper.SetDefaultStringIfEmpty(cfg.Camera.MediaPrefix, DefaultMediaPrefix, "mediaPrefix", "camera")
	cfg.Camera.Tools = helper.SetDefaultStringsIfEmpty(helper.ResolveEnvAll(cfg.Camera.Tools), DefaultCameraTools, "tools", "camera")

	if cfg.CameraLibrary == nil {
		cfg.CameraLibrary = &CameraLibrary{}
	}
	cfg.CameraLibrary.Module = helper.SetDefaultStringIfEmpty(cfg.CameraLibrary.Module, DefaultCameraModule, "module", "cameraLibrary")
	cfg.CameraLibrary.Hint = helper.SetDefaultStringIfEmpty(cfg.CameraLibrary.Hint, DefaultCameraHint, "hint", "cameraLibrary")

	if cfg.GPIOLibraries == nil {
		cfg.GPIOLibraries = &GPIOLibraries{}
	}
	cfg.GPIOLibraries.Modules = helper.SetDefaultStringsIfEmpty(cfg.GPIOLibraries.Modules, DefaultGPIOModules, "modules", "gpioLibraries")

	if cfg.Interfaces == nil {
		cfg.Interfaces = &Interfaces{}
	}
	cfg.Interfaces.I2C = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Interfaces.I2C), DefaultI2CDevice, "i2c", "interfaces")
	cfg.Interfaces.SPI = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Interfaces.SPI), DefaultSPIDevice, "spi", "interfaces")
	cfg.Interfaces.GPIO = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Interfaces.GPIO), DefaultGPIODevice, "gpio", "interfaces")

	if cfg.Disk == nil {
		cfg.Disk = &Disk{}
	}
	cfg.Disk.Path = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.Disk.Path), DefaultDiskPath, "path", "disk")
	if cfg.Disk.MinFreeGiB <= 0 {
		cfg.Disk.MinFreeGiB = DefaultMinFreeGiB
	}

	if cfg.GPU == nil {
		cfg.GPU = &GPU{}
	}
	cfg.GPU.Command = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.GPU.Command), DefaultGPUCommand, "command", "gpu")
	cfg.GPU.Args = helper.SetDefaultStringsIfEmpty(cfg.GPU.Args, DefaultGPUArgs, "args", "gpu")
	cfg.GPU.Keyword = helper.SetDefaultStringIfEmpty(cfg.GPU.Keyword, DefaultGPUKeyword, "keyword", "gpu")
	cfg.GPU.Hint = helper.SetDefaultStringIfEmpty(cfg.GPU.Hint, DefaultGPUHint, "hint", "gpu")
	cfg.GPU.Timeout = helper.SetDefaultStringIfEmpty(helper.ResolveEnv(cfg.GPU.Timeout), DefaultGPUTimeout, "timeout", "gpu")

	if _, err := time.ParseDuration(cfg.GPU.Timeout); err != nil {
		return errors.Wrapf(err, "invalid gpu timeout %q", cfg.GPU.Timeout)
	}

	return nil
}

// TimeoutDuration returns the parsed timeout. Call ApplyDefaults first.
func (g *GPU) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(g.Timeout)
	return d
}
