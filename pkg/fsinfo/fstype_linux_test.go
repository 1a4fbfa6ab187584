//go:build linux

package fsinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleMounts = `/dev/sda2 / ext4 rw,relatime 0 0
tmpfs /dev/shm tmpfs rw,nosuid,nodev 0 0
/dev/sdb1 /media/usb fuseblk.ntfs-3g rw,nosuid,nodev,relatime 0 0
/dev/sdc1 /media/card fuse.exfat rw,nosuid,nodev,relatime 0 0
/dev/sdd1 /media/old\040disk fuseblk rw,relatime 0 0
`

func TestMountTypeForResolvesFuseSubtype(t *testing.T) {
	assert.Equal(t, "ntfs", mountTypeFor("/media/usb/project", sampleMounts))
	assert.Equal(t, "exfat", mountTypeFor("/media/card", sampleMounts))
	assert.Equal(t, "exfat", mountTypeFor("/media/card/nested/dir", sampleMounts))
}

func TestMountTypeForPicksLongestMountPoint(t *testing.T) {
	// /media/usb is under / too; the deeper mount must win.
	assert.Equal(t, "ntfs", mountTypeFor("/media/usb", sampleMounts))
	assert.Equal(t, "ext4", mountTypeFor("/home/u/project", sampleMounts))
}

func TestMountTypeForEscapedMountPoint(t *testing.T) {
	assert.Equal(t, "fuseblk", mountTypeFor("/media/old disk/env", sampleMounts))
}

func TestMountTypeForSiblingPathsDoNotMatch(t *testing.T) {
	// /media/usbstick must not match the /media/usb mount point.
	assert.Equal(t, "ext4", mountTypeFor("/media/usbstick", sampleMounts))
}

func TestNormalizeFuseType(t *testing.T) {
	assert.Equal(t, "ntfs", normalizeFuseType("fuseblk.ntfs-3g"))
	assert.Equal(t, "ntfs", normalizeFuseType("fuse.ntfs"))
	assert.Equal(t, "exfat", normalizeFuseType("fuse.exfat"))
	assert.Equal(t, "fuseblk", normalizeFuseType("fuseblk"))
	assert.Equal(t, "ext4", normalizeFuseType("ext4"))
}

func TestFuseSubtypeClassifiesNonXattr(t *testing.T) {
	// The resolved subtypes must land in the exclusion set.
	assert.Equal(t, TagNonXattr, Classify(mountTypeFor("/media/usb", sampleMounts)))
	assert.Equal(t, TagNonXattr, Classify(mountTypeFor("/media/card", sampleMounts)))
}
