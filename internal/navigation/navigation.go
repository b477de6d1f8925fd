// Package navigation computes sequential moves through a filtered item list.
package navigation

import "github.com/llehouerou/gallery/internal/content"

// Direction is a sequential move.
type Direction int

const (
	Next Direction = iota
	Prev
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Prev:
		return "prev"
	default:
		return "unknown"
	}
}

// Step moves one position from pos in dir. It never wraps; stepping past
// either end, or from a position outside the list, returns ok == false.
func Step(list []content.Item, pos int, dir Direction) (int, content.Item, bool) {
	if pos < 0 || pos >= len(list) {
		return pos, content.Item{}, false
	}
	target := pos
	switch dir {
	case Next:
		target++
	case Prev:
		target--
	default:
		return pos, content.Item{}, false
	}
	if target < 0 || target >= len(list) {
		return pos, content.Item{}, false
	}
	return target, list[target], true
}

// HasNext reports whether Step(list, pos, Next) would move.
func HasNext(list []content.Item, pos int) bool {
	_, _, ok := Step(list, pos, Next)
	return ok
}

// HasPrev reports whether Step(list, pos, Prev) would move.
func HasPrev(list []content.Item, pos int) bool {
	_, _, ok := Step(list, pos, Prev)
	return ok
}
