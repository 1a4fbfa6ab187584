// Package types holds the interfaces shared across devup packages.
//
// The FS interface is the seam between the bootstrap decision logic and
// the real filesystem; production code uses the OS implementation in
// pkg/filesystem while tests substitute fakes.
package types
