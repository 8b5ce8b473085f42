package smallvec

type Stats struct {
	Size           int
	InlineCapacity int
	HeapCapacity   int
	Mode           Mode

	// Number of small<->large transitions.
	Migrations uint64
	// Number of heap backings requested from the allocator.
	HeapAllocs uint64
}
