//go:build linux

package host

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func kernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", errors.Wrap(err, "uname failed")
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}

func statfs(path string) (DiskUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskUsage{}, errors.Wrapf(err, "statfs %s failed", path)
	}

	return DiskUsage{
		FragmentSize: uint64(st.Frsize),
		Blocks:       st.Blocks,
		Available:    st.Bavail,
	}, nil
}
