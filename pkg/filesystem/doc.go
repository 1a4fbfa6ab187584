// Package filesystem provides filesystem implementations for devup.
//
// This package contains implementations of the types.FS interface,
// currently the standard OS filesystem.
package filesystem
