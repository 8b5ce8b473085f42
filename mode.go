package smallvec

// Mode tells which backing of a vector holds its elements.
type Mode uint8

const (
	// ModeSmall: elements live in the inline array.
	ModeSmall Mode = iota
	// ModeLarge: elements live in the heap backing.
	ModeLarge
)

func (m Mode) String() string {
	switch m {
	case ModeSmall:
		return "small"
	case ModeLarge:
		return "large"
	default:
		return "unknown"
	}
}

func modeFor(n, inlineCap int) Mode {
	if n <= inlineCap {
		return ModeSmall
	}

	return ModeLarge
}
