package travel

import (
	"fmt"

	"github.com/etnz/travel/date"
	"github.com/sirupsen/logrus"
)

// Trip is a titled itinerary made of consecutive days.
type Trip struct {
	ID        string      `json:"id"`
	Title     string      `json:"tripTitle"`
	HotelLink string      `json:"hotelLink"`
	Plans     []DailyPlan `json:"plans"`
}

// SelectDates replaces all the days of the trip with one empty day per date
// of r, in ascending order.
//
// Existing days, with their schedule and expenses, are discarded.
func (t *Trip) SelectDates(r date.Range) {
	plans := make([]DailyPlan, 0, r.Len())
	for d := range r.Days() {
		plans = append(plans, NewDailyPlan(d))
	}
	if len(t.Plans) > 0 {
		Log.WithFields(logrus.Fields{"trip": t.ID, "dropped": len(t.Plans)}).Info("replacing trip days")
	}
	t.Plans = plans
}

// Day returns the day at index i.
func (t *Trip) Day(i int) (*DailyPlan, error) {
	if i < 0 || i >= len(t.Plans) {
		return nil, fmt.Errorf("day %d: %w (trip has %d days)", i, ErrIndex, len(t.Plans))
	}
	return &t.Plans[i], nil
}

// clone returns a deep copy of t.
func (t Trip) clone() Trip {
	plans := make([]DailyPlan, len(t.Plans))
	for i, p := range t.Plans {
		plans[i] = p.clone()
	}
	t.Plans = plans
	return t
}
