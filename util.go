package ratbig

// pair carries two results through a single combining step.
type pair[T any] struct {
	a, b T
}

func fold[T, U any](p pair[T], f func(a, b T) U) U {
	return f(p.a, p.b)
}

// logicalSignum classifies a value as negative, zero or positive,
// regardless of how zero is stored.
type logicalSignum int

const (
	signumNeg logicalSignum = iota - 1
	signumZero
	signumPos
)

func (s logicalSignum) cmp(t logicalSignum) int {
	switch {
	case s < t:
		return -1
	case s > t:
		return 1
	}
	return 0
}
