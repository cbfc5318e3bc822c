package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/travel"
)

// target selects a trip, and a day of it, from the command line.
type target struct {
	trip string
	day  int
}

func (t *target) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.trip, "trip", "", "Trip id, title or title prefix. Optional when there is a single trip.")
	f.IntVar(&t.day, "day", 0, "Day number, 1 being the first day of the trip.")
}

// resolve returns the selected trip.
func (t *target) resolve(s *travel.Store) (travel.Trip, error) {
	if t.trip != "" {
		return s.Find(t.trip)
	}
	trips := s.Trips()
	switch len(trips) {
	case 0:
		return travel.Trip{}, fmt.Errorf("no trip yet, create one with 'trv new': %w", travel.ErrNotFound)
	case 1:
		return trips[0], nil
	}
	return travel.Trip{}, usageErrorf("there are %d trips, select one with -trip", len(trips))
}

// dayIndex returns the 0-based index of the selected day.
func (t *target) dayIndex() (int, error) {
	if t.day < 1 {
		return 0, usageErrorf("select a day with -day")
	}
	return t.day - 1, nil
}

// updateDay applies fn to the selected day and saves.
func (t *target) updateDay(s *travel.Store, fn func(*travel.DailyPlan) error) error {
	trip, err := t.resolve(s)
	if err != nil {
		return err
	}
	i, err := t.dayIndex()
	if err != nil {
		return err
	}
	return s.UpdateDay(trip.ID, i, fn)
}

// itemTarget selects an item of a day.
type itemTarget struct {
	target
	item int
}

func (t *itemTarget) SetFlags(f *flag.FlagSet) {
	t.target.SetFlags(f)
	f.IntVar(&t.item, "item", 0, "Item number in the day schedule, 1 being the first.")
}

func (t *itemTarget) itemIndex() (int, error) {
	if t.item < 1 {
		return 0, usageErrorf("select an item with -item")
	}
	return t.item - 1, nil
}

// updateItem applies fn to the selected item and saves.
func (t *itemTarget) updateItem(s *travel.Store, fn func(*travel.ScheduleItem) error) error {
	j, err := t.itemIndex()
	if err != nil {
		return err
	}
	return t.updateDay(s, func(p *travel.DailyPlan) error {
		it, err := p.Item(j)
		if err != nil {
			return err
		}
		return fn(it)
	})
}
