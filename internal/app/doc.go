// Package app wires a frame source, the assembler and an animation sink
// into a single build, and reruns builds when the frame directory changes.
package app
