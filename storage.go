package smallvec

import (
	"log/slog"
	"unsafe"
)

// storage owns both backings of a vector. Only one of them holds live
// elements at any time, which one is decided by mode, and mode is a function
// of size: ModeSmall iff size <= inline capacity.
//
// Cells past size are always zero in both backings, so that growth never
// exposes stale values and dropped elements aren't kept alive.
type storage[T any, B Inline[T]] struct {
	mode Mode
	size int

	// Heap backing. len(heap) is the heap capacity, not the size.
	// It may be non-nil in small mode after Reserve, but holds no elements then.
	heap []T

	// Go doesn't allow over-aligned fields, this keeps inline at least
	// 8-byte aligned regardless of T.
	_      [0]uint64
	inline B

	alignment int
	alloc     Allocator[T]
	logger    *slog.Logger

	migrations uint64
	heapAllocs uint64
}

func (s *storage[T, B]) init(opts ...Option[T]) error {
	cfg := config[T]{
		alignment: DefaultAlignment,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	s.alignment = cfg.alignment
	s.alloc = cfg.alloc
	s.logger = cfg.logger

	return nil
}

func (s *storage[T, B]) inlineCap() int {
	return len(s.inline)
}

func (s *storage[T, B]) cells() []T {
	return inlineCells[T](&s.inline)
}

// active returns the live elements of the authoritative backing.
func (s *storage[T, B]) active() []T {
	if s.mode == ModeSmall {
		return s.cells()[:s.size]
	}

	return s.heap[:s.size]
}

// base returns the address of the first cell of the active backing.
func (s *storage[T, B]) base() unsafe.Pointer {
	if s.mode == ModeSmall {
		return unsafe.Pointer(&s.inline)
	}

	return unsafe.Pointer(unsafe.SliceData(s.heap))
}

func (s *storage[T, B]) at(i int) *T {
	if s.mode == ModeSmall {
		return &s.cells()[i]
	}

	return &s.heap[i]
}

func (s *storage[T, B]) getAlignment() int {
	if s.alignment == 0 {
		return DefaultAlignment
	}

	return s.alignment
}

func (s *storage[T, B]) allocator() Allocator[T] {
	if s.alloc == nil {
		return DefaultAllocator[T]{}
	}

	return s.alloc
}

func (s *storage[T, B]) allocate(n int) []T {
	buf := s.allocator().Allocate(n, s.getAlignment())
	s.heapAllocs++

	if s.logger != nil {
		s.logger.Debug("smallvec: heap backing allocated",
			"requested", n,
			"capacity", len(buf),
			"alignment", s.getAlignment(),
		)
	}

	return buf
}

func (s *storage[T, B]) releaseHeap() {
	if s.heap == nil {
		return
	}

	s.allocator().Deallocate(s.heap)
	s.heap = nil
}

func (s *storage[T, B]) resize(n int) {
	if n < 0 {
		panic("smallvec: negative length")
	}

	var (
		inlineCap = s.inlineCap()
		to        = modeFor(n, inlineCap)
	)

	switch {
	case s.mode == ModeSmall && to == ModeSmall:
		if n < s.size {
			clear(s.cells()[n:s.size])
		}

	case s.mode == ModeLarge && to == ModeSmall:
		// Truncation: only the first n elements survive the move.
		// The heap backing is released right away, since shrinking below
		// the inline capacity is the point where it stops paying off.
		copy(s.cells()[:n], s.heap[:n])
		clear(s.heap[:s.size])
		s.releaseHeap()

	case s.mode == ModeSmall && to == ModeLarge:
		if len(s.heap) < n {
			// Allocate before touching anything, so a failing allocator
			// leaves the vector as it was.
			heap := s.allocate(n)
			s.releaseHeap()
			s.heap = heap
		}

		if s.size > 0 {
			cells := s.cells()
			copy(s.heap, cells[:s.size])
			clear(cells[:s.size])
		}

	default:
		switch {
		case n < s.size:
			clear(s.heap[n:s.size])
		case n > len(s.heap):
			heap := s.allocate(growCapacity(len(s.heap), n))
			copy(heap, s.heap[:s.size])
			clear(s.heap[:s.size])
			s.releaseHeap()
			s.heap = heap
		}
	}

	s.transition(to, n)
}

// reserve makes sure the heap backing can take n elements without
// reallocating. It never changes size or mode.
func (s *storage[T, B]) reserve(n int) {
	if n <= s.inlineCap() || n <= len(s.heap) {
		return
	}

	heap := s.allocate(n)
	if s.mode == ModeLarge {
		copy(heap, s.heap[:s.size])
		clear(s.heap[:s.size])
	}

	s.releaseHeap()
	s.heap = heap
}

func (s *storage[T, B]) transition(to Mode, n int) {
	if s.mode != to {
		s.migrations++

		if s.logger != nil {
			s.logger.Debug("smallvec: mode transition",
				"from", s.mode,
				"to", to,
				"size", n,
				"capacity", len(s.heap),
			)
		}
	}

	s.mode = to
	s.size = n
}

// swap exchanges the contents of s and o. Both large is a pure handle
// exchange, every other combination has to move the inline elements.
// Whenever heap backings change hands, the allocator, alignment and logger
// they came with go along; only the counters stay with their storage.
func (s *storage[T, B]) swap(o *storage[T, B]) {
	if s == o {
		return
	}

	switch {
	case s.mode == ModeLarge && o.mode == ModeLarge:
		s.exchangeHeap(o)

	case s.mode == ModeSmall && o.mode == ModeSmall:
		a, b := s.cells(), o.cells()
		for i := range max(s.size, o.size) {
			a[i], b[i] = b[i], a[i]
		}

	case s.mode == ModeSmall:
		s.moveInlineTo(o)

	default:
		o.moveInlineTo(s)
	}

	s.size, o.size = o.size, s.size
	s.mode, o.mode = o.mode, s.mode
}

// moveInlineTo handles the mixed swap: s is small, o is large.
// o's inline array holds no live elements, so s's elements can be copied
// straight into it, then the heap handles are exchanged.
func (s *storage[T, B]) moveInlineTo(o *storage[T, B]) {
	src, dst := s.cells(), o.cells()
	copy(dst, src[:s.size])
	clear(src[:s.size])

	s.exchangeHeap(o)
}

// exchangeHeap swaps the heap backings together with the config that owns
// them, so every backing is deallocated by the allocator it came from and
// stays aligned as the vector reports.
func (s *storage[T, B]) exchangeHeap(o *storage[T, B]) {
	s.heap, o.heap = o.heap, s.heap
	s.alloc, o.alloc = o.alloc, s.alloc
	s.alignment, o.alignment = o.alignment, s.alignment
	s.logger, o.logger = o.logger, s.logger
}

// release gives the heap backing back to the allocator and leaves
// an empty small vector.
func (s *storage[T, B]) release() {
	if s.mode == ModeSmall {
		clear(s.cells()[:s.size])
	} else {
		clear(s.heap[:s.size])
	}

	s.releaseHeap()
	s.transition(ModeSmall, 0)
}

func (s *storage[T, B]) stats() Stats {
	return Stats{
		Size:           s.size,
		InlineCapacity: s.inlineCap(),
		HeapCapacity:   len(s.heap),
		Mode:           s.mode,
		Migrations:     s.migrations,
		HeapAllocs:     s.heapAllocs,
	}
}
