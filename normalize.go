package travel

import (
	"slices"
	"strings"
)

// Normalize returns a copy of a day's items that satisfies the day invariants:
// every item starts before it ends, and items are in chronological order of
// start without overlapping the previous one.
//
// It proceeds in three steps:
//  1. an item ending before it starts gets its two times swapped;
//  2. items are stable sorted by start time, ties keep their order;
//  3. scanning forward, an item starting before the previous one ends is
//     pushed to that end time, and its own end follows if needed.
//
// Step 3 repairs overlaps against the end of the previous item. Clamping to
// the previous start instead would never change anything once sorted.
//
// The last step silently alters times that the user typed. Normalize is
// idempotent and never changes the number or identity of items. The input
// is left untouched.
func Normalize(items []ScheduleItem) []ScheduleItem {
	out := make([]ScheduleItem, len(items))
	for i, it := range items {
		if it.Start > it.End {
			it.Start, it.End = it.End, it.Start
		}
		out[i] = it
	}

	slices.SortStableFunc(out, func(a, b ScheduleItem) int {
		return strings.Compare(a.Start, b.Start)
	})

	for i := 1; i < len(out); i++ {
		prev, cur := &out[i-1], &out[i]
		if cur.Start < prev.End {
			cur.Start = prev.End
			if cur.End < cur.Start {
				cur.End = cur.Start
			}
		}
	}
	return out
}

// IsNormalized reports whether items already satisfy the invariants Normalize establishes.
func IsNormalized(items []ScheduleItem) bool {
	for i, it := range items {
		if it.Start > it.End {
			return false
		}
		if i > 0 && it.Start < items[i-1].End {
			return false
		}
	}
	return true
}
