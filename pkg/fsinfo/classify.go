// Package fsinfo classifies the filesystem backing a path by its support
// for extended attributes.
//
// Virtual environments carry metadata in extended attributes, so an
// environment living on a filesystem without xattr support (exFAT thumb
// drives, FAT32 SD cards, NTFS mounts) must be relocated. The classifier
// maps a raw OS-reported filesystem-type string to a capability tag; the
// Provider implementations obtain that string from the OS.
package fsinfo

import "strings"

// Tag is the capability classification of a filesystem type.
type Tag string

const (
	// TagXattrCapable marks filesystems that support extended attributes.
	TagXattrCapable Tag = "xattr-capable"

	// TagNonXattr marks filesystems without extended attribute support.
	TagNonXattr Tag = "non-xattr"
)

// nonXattrTypes is the fixed exclusion set of filesystem types known to
// lack extended attribute support. Matched case-insensitively and exactly.
var nonXattrTypes = map[string]struct{}{
	"exfat": {},
	"msdos": {},
	"ntfs":  {},
	"fat32": {},
	"vfat":  {},
}

// xattrTypes lists types known to support extended attributes. Only used
// by Known; classification treats anything outside the exclusion set as
// capable.
var xattrTypes = map[string]struct{}{
	"apfs":     {},
	"hfs":      {},
	"hfsplus":  {},
	"ext2":     {},
	"ext3":     {},
	"ext4":     {},
	"btrfs":    {},
	"xfs":      {},
	"zfs":      {},
	"f2fs":     {},
	"tmpfs":    {},
	"ramfs":    {},
	"overlay":  {},
	"nfs":      {},
	"cifs":     {},
	"squashfs": {},
	"jfs":      {},
	"reiserfs": {},
}

// Classify maps a raw filesystem-type string to a capability tag.
//
// The rule is two-tier: an exact case-folded match against the exclusion
// set, plus a substring match for "exfat" in any casing. The substring
// check is a deliberate safety net: operating systems report the exFAT
// family under inconsistent casings ("ExFAT", "exFAT") and sometimes with
// decoration that defeats an exact match.
//
// Unrecognized strings default to TagXattrCapable. Callers that care about
// the optimistic default can use Known to decide whether to warn.
func Classify(fstype string) Tag {
	folded := strings.ToLower(strings.TrimSpace(fstype))

	if _, excluded := nonXattrTypes[folded]; excluded {
		return TagNonXattr
	}
	if strings.Contains(folded, "exfat") {
		return TagNonXattr
	}
	return TagXattrCapable
}

// Known reports whether the filesystem type is in either the exclusion set
// or the known-capable set. An unknown type still classifies as capable,
// but the caller should surface that assumption as a warning.
func Known(fstype string) bool {
	folded := strings.ToLower(strings.TrimSpace(fstype))
	if _, ok := nonXattrTypes[folded]; ok {
		return true
	}
	if strings.Contains(folded, "exfat") {
		return true
	}
	_, ok := xattrTypes[folded]
	return ok
}
