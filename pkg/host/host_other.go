//go:build !linux

package host

func kernelRelease() (string, error) {
	return "", ErrUnsupported
}

func statfs(string) (DiskUsage, error) {
	return DiskUsage{}, ErrUnsupported
}
