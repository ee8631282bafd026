package sortedmap

import "golang.org/x/exp/constraints"

type Order uint8

const (
	DescOrder Order = iota
	AscOrder
)

func getZero[T any]() T {
	var result T
	return result
}

func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
