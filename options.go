package smallvec

import (
	"fmt"
	"log/slog"
)

type config[T any] struct {
	alignment int
	alloc     Allocator[T]
	logger    *slog.Logger
}

func (c *config[T]) validate() error {
	if !isPowerOf2(c.alignment) {
		return fmt.Errorf("%w: %d", ErrInvalidAlignment, c.alignment)
	}

	return nil
}

type Option[T any] func(c *config[T])

// Override the byte alignment of the heap backing. Defaults to DefaultAlignment.
// The inline array isn't affected, it keeps T's natural alignment (at least 8 bytes).
func WithAlignment[T any](alignment int) Option[T] {
	return func(c *config[T]) {
		c.alignment = alignment
	}
}

// Override the allocator used for the heap backing. Defaults to DefaultAllocator.
func WithAllocator[T any](alloc Allocator[T]) Option[T] {
	return func(c *config[T]) {
		c.alloc = alloc
	}
}

// Log mode transitions and heap allocations at debug level.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(c *config[T]) {
		c.logger = logger
	}
}
