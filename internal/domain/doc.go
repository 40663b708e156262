// Package domain contains the core entities and value objects for gifloop.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (file system, logging, configuration) and holds
// only the GIF vocabulary shared by the assembler and its adapters.
//
// # Entities
//
//   - [Packed]: the packed field byte of screen and image descriptors
//   - [ColorTable]: an RGB palette as laid out on the wire
//   - [FrameSet]: ordered frame buffers and their delays from a frame source
//   - [FrameError]: a frame-scoped failure carrying the frame index
//
// # Design Principles
//
// Domain values are:
//   - Immutable after construction
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
