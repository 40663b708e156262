// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the assembly core and the outside
// world. They describe what the application needs without specifying how
// those needs are met.
//
// # Port Interfaces
//
//   - [FrameSource]: produces the ordered single-frame GIFs and delays
//   - [AnimationSink]: receives the assembled animation
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them for the file
// system and standard streams, and tests substitute in-memory fakes.
package ports
