// Package fs implements the frame source and animation sink ports on top
// of the local file system.
package fs
