package comparators

// Comparison is the outcome of a three-way comparison
type Comparison int

const (
	// LessThan means the first record sorts before the second
	LessThan Comparison = -1

	// EqualTo means both records sort at the same rank
	EqualTo Comparison = 0

	// GreaterThan means the first record sorts after the second
	GreaterThan Comparison = 1
)

func (c Comparison) String() string {
	switch c {
	case LessThan:
		return "less"
	case EqualTo:
		return "equal"
	case GreaterThan:
		return "greater"
	default:
		return "invalid"
	}
}
