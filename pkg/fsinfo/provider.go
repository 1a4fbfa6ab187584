package fsinfo

import (
	"github.com/arthur-debert/devup/pkg/errors"
	"github.com/arthur-debert/devup/pkg/logging"
)

// Provider reports the raw filesystem-type string backing a path, as the
// operating system names it for the mount containing that path.
type Provider interface {
	FSType(path string) (string, error)
}

// osProvider queries the OS via statfs; the platform-specific fstypeName
// implementations live in the build-tagged files.
type osProvider struct{}

// NewOSProvider creates a Provider backed by the OS statfs call.
func NewOSProvider() Provider {
	return &osProvider{}
}

func (o *osProvider) FSType(path string) (string, error) {
	logger := logging.GetLogger("fsinfo")

	name, err := fstypeName(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFSQuery,
			"failed to determine filesystem type for %s", path)
	}

	logger.Debug().Str("path", path).Str("fstype", name).Msg("Filesystem type detected")
	return name, nil
}
