//go:build linux

package fsinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// fuseMagic is the generic FUSE magic. ntfs-3g and exfat-fuse mounts
// both report it; the real type is only in the mount table.
const fuseMagic = 0x65735546

// Linux statfs reports a numeric magic, not a name. This table maps the
// magics we care about to the canonical lowercase names the classifier
// expects. Anything absent classifies optimistically as xattr-capable.
var fsMagicNames = map[uint64]string{
	0xEF53:     "ext4", // also ext2/ext3; identical xattr capability
	0x9123683E: "btrfs",
	0x58465342: "xfs",
	0x2FC12FC1: "zfs",
	0xF2F52010: "f2fs",
	0x01021994: "tmpfs",
	0x858458F6: "ramfs",
	0x794C7630: "overlay",
	0x6969:     "nfs",
	0xFF534D42: "cifs",
	0x73717368: "squashfs",
	0x3153464A: "jfs",
	0x52654973: "reiserfs",
	0x4D44:     "vfat",  // MSDOS_SUPER_MAGIC covers msdos and vfat mounts
	0x2011BAB0: "exfat", // kernel exfat driver
	0x5346544E: "ntfs",  // ntfs3 kernel driver
}

// fstypeName resolves the filesystem-type name for the mount backing path.
func fstypeName(path string) (string, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return "", err
	}

	// st.Type is signed on some architectures; the magics are defined as
	// unsigned 32-bit values.
	magic := uint64(uint32(st.Type))

	if magic == fuseMagic {
		if name := fuseMountType(path); name != "" {
			return name, nil
		}
		return "fuseblk", nil
	}

	if name, ok := fsMagicNames[magic]; ok {
		return name, nil
	}

	// Unknown magic: report it in hex so the warning names something useful.
	return fmt.Sprintf("unknown(0x%x)", magic), nil
}

// fuseMountType recovers the subtype of a FUSE mount from the mount
// table, where it shows as "fuse.exfat" or "fuseblk.ntfs-3g". Returns
// "" when the table cannot be read or the subtype is missing.
func fuseMountType(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	data, err := os.ReadFile("/proc/self/mounts")
	if err != nil {
		return ""
	}
	return mountTypeFor(abs, string(data))
}

// mountTypeFor finds the longest mount point prefixing path in a mount
// table and returns its normalized filesystem type.
func mountTypeFor(path, mounts string) string {
	bestLen := -1
	best := ""
	for _, line := range strings.Split(mounts, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		// Spaces in mount points are octal-escaped in /proc/self/mounts.
		mountPoint := strings.ReplaceAll(fields[1], "\\040", " ")
		if !mountCovers(mountPoint, path) {
			continue
		}
		if len(mountPoint) > bestLen {
			bestLen = len(mountPoint)
			best = fields[2]
		}
	}
	return normalizeFuseType(best)
}

// mountCovers reports whether path lives under the mount point.
func mountCovers(mountPoint, path string) bool {
	if mountPoint == "/" {
		return true
	}
	return path == mountPoint || strings.HasPrefix(path, mountPoint+"/")
}

// normalizeFuseType strips the FUSE wrapper off a mount-table type and
// folds driver spellings ("ntfs-3g") onto the names the classifier
// knows. The exFAT family needs no folding; the classifier already
// matches it by substring.
func normalizeFuseType(fstype string) string {
	fstype = strings.ToLower(fstype)
	fstype = strings.TrimPrefix(fstype, "fuseblk.")
	fstype = strings.TrimPrefix(fstype, "fuse.")
	if strings.Contains(fstype, "ntfs") {
		return "ntfs"
	}
	return fstype
}
