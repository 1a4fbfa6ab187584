//go:build darwin

package fsinfo

import (
	"bytes"

	"golang.org/x/sys/unix"
)

// fstypeName resolves the filesystem-type name for the mount backing path.
// Darwin statfs reports the name directly (e.g. "apfs", "hfs", "exfat").
func fstypeName(path string) (string, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return "", err
	}

	name := st.Fstypename[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name), nil
}
