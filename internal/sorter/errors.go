package sorter

// InputKind identifies the category of input validation failure.
type InputKind string

const (
	KindInvalidRange InputKind = "invalid_range"
	KindNotFinite    InputKind = "not_finite"
)

// InputError reports that one or more of the four package measurements
// cannot be classified.
type InputError struct {
	Kind InputKind
}

func (e *InputError) Error() string {
	switch e.Kind {
	case KindInvalidRange:
		return "Package dimensions and mass must be positive values greater than 0"
	case KindNotFinite:
		return "Package dimensions and mass must be finite numbers"
	default:
		return "invalid package input"
	}
}

// Is makes errors.Is match any InputError of the same kind.
func (e *InputError) Is(target error) bool {
	t, ok := target.(*InputError)
	return ok && t.Kind == e.Kind
}

// Validation failures are always one of these two values.
var (
	ErrInvalidRange = &InputError{Kind: KindInvalidRange}
	ErrNotFinite    = &InputError{Kind: KindNotFinite}
)
