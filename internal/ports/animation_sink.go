package ports

import "context"

// AnimationSink stores an assembled animation.
type AnimationSink interface {
	// Write persists data. Implementations writing to files should make
	// the write atomic so readers never observe a partial animation.
	Write(ctx context.Context, data []byte) error

	// Location describes where data is written, for logging.
	Location() string
}
