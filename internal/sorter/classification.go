package sorter

// Classification is the handling category assigned to a package.
type Classification string

const (
	Standard Classification = "STANDARD"
	Special  Classification = "SPECIAL"
	Rejected Classification = "REJECTED"
)

// AllClassifications returns all classifications in order of increasing
// handling effort.
func AllClassifications() []Classification {
	return []Classification{Standard, Special, Rejected}
}

// DisplayName returns a human-readable label for the classification.
func (c Classification) DisplayName() string {
	switch c {
	case Standard:
		return "Standard"
	case Special:
		return "Special"
	case Rejected:
		return "Rejected"
	default:
		return string(c)
	}
}
