package generator

// Source is the uniform random source the generator draws from.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
	Int64N(n int64) int64
}

type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Choose picks a value with probability proportional to its weight.
// Weights need not sum to 1. It panics on an empty list.
func Choose[T any](src Source, items []Weighted[T]) T {
	var total float64
	for _, it := range items {
		total += it.Weight
	}

	r := src.Float64() * total
	for _, it := range items {
		r -= it.Weight
		if r <= 0 {
			return it.Value
		}
	}
	return items[len(items)-1].Value
}

func pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
