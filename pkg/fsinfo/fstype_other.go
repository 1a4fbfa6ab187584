//go:build !linux && !darwin

package fsinfo

import "fmt"

// fstypeName is unsupported on this platform; the engine treats the query
// failure as xattr-capable with a warning.
func fstypeName(path string) (string, error) {
	return "", fmt.Errorf("filesystem type detection is not supported on this platform")
}
