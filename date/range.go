package date

import "iter"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range between a and b whatever the order they are given in.
// Picking days on a calendar gives the two ends in click order, not in chronological order.
func NewRange(a, b Date) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{From: a, To: b}
}

const secondsPerDay = 24 * 60 * 60

// Len returns the number of days in the range, boundaries included.
func (r Range) Len() int {
	if r.To.Before(r.From) {
		return 0
	}
	return int((r.To.time().Unix()-r.From.time().Unix())/secondsPerDay) + 1
}

// Days iterates over every day of the range in ascending order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}
