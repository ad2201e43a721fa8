package config

type Model struct {
	Path   string `hcl:"path"`
	Family string `hcl:"family"`
}

type OSRelease struct {
	Path     string   `hcl:"path"`
	Accepted []string `hcl:"accepted"`
}

type Kernel struct {
	Prefix string `hcl:"prefix"`
}

type Camera struct {
	DeviceDir   string   `hcl:"deviceDir"`
	VideoPrefix string   `hcl:"videoPrefix"`
	MediaPrefix string   `hcl:"mediaPrefix"`
	Tools       []string `hcl:"tools"`
}

type CameraLibrary struct {
	Module string `hcl:"module"`
	Hint   string `hcl:"hint"`
}

type GPIOLibraries struct {
	Modules []string `hcl:"modules"`
}

type Interfaces struct {
	I2C  string `hcl:"i2c"`
	SPI  string `hcl:"spi"`
	GPIO string `hcl:"gpio"`
}

type Disk struct {
	Path       string  `hcl:"path"`
	MinFreeGiB float64 `hcl:"minFreeGiB"`
}

type GPU struct {
	Command string   `hcl:"command"`
	Args    []string `hcl:"args"`
	Keyword string   `hcl:"keyword"`
	Hint    string   `hcl:"hint"`
	Timeout string   `hcl:"timeout"`
}

type Config struct {
	Python string   `hcl:"python"`
	Skip   []string `hcl:"skip"`

	Model         *Model         `hcl:"model"`
	OSRelease     *OSRelease     `hcl:"osRelease"`
	Kernel        *Kernel        `hcl:"kernel"`
	Camera        *Camera        `hcl:"camera"`
	CameraLibrary *CameraLibrary `hcl:"cameraLibrary"`
	GPIOLibraries *GPIOLibraries `hcl:"gpioLibraries"`
	Interfaces    *Interfaces    `hcl:"interfaces"`
	Disk          *Disk          `hcl:"disk"`
	GPU           *GPU           `hcl:"gpu"`
}
