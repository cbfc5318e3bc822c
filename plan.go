package travel

import (
	"fmt"
	"slices"

	"github.com/etnz/travel/date"
)

// DefaultDayTitle is the title of the days created by a date selection.
const DefaultDayTitle = "New itinerary"

// DailyPlan is one calendar day of a trip: a schedule, a memo and expenses.
type DailyPlan struct {
	Date     string         `json:"date"`    // "M/D" label
	Weekday  string         `json:"weekday"` // short weekday label
	Title    string         `json:"dailyTitle"`
	Items    []ScheduleItem `json:"items"`
	Memo     string         `json:"memo"`
	Expenses []Expense      `json:"expenses"`
}

// NewDailyPlan returns an empty plan for day d.
func NewDailyPlan(d date.Date) DailyPlan {
	return DailyPlan{
		Date:     d.Label(),
		Weekday:  d.Weekday().String()[:3],
		Title:    DefaultDayTitle,
		Items:    []ScheduleItem{},
		Expenses: []Expense{},
	}
}

// AddItem appends it to the schedule and returns its index.
func (p *DailyPlan) AddItem(it ScheduleItem) int {
	p.Items = append(p.Items, it)
	return len(p.Items) - 1
}

// Item returns the item at index i.
func (p *DailyPlan) Item(i int) (*ScheduleItem, error) {
	if i < 0 || i >= len(p.Items) {
		return nil, fmt.Errorf("item %d: %w (day has %d items)", i, ErrIndex, len(p.Items))
	}
	return &p.Items[i], nil
}

// RemoveItem deletes the item at index i, following items shift down.
func (p *DailyPlan) RemoveItem(i int) error {
	if _, err := p.Item(i); err != nil {
		return err
	}
	p.Items = slices.Delete(p.Items, i, i+1)
	return nil
}

// AddExpense appends e to the expenses and returns its index.
func (p *DailyPlan) AddExpense(e Expense) int {
	p.Expenses = append(p.Expenses, e)
	return len(p.Expenses) - 1
}

// Expense returns the expense at index i.
func (p *DailyPlan) Expense(i int) (*Expense, error) {
	if i < 0 || i >= len(p.Expenses) {
		return nil, fmt.Errorf("expense %d: %w (day has %d expenses)", i, ErrIndex, len(p.Expenses))
	}
	return &p.Expenses[i], nil
}

// RemoveExpense deletes the expense at index i, following expenses shift down.
func (p *DailyPlan) RemoveExpense(i int) error {
	if _, err := p.Expense(i); err != nil {
		return err
	}
	p.Expenses = slices.Delete(p.Expenses, i, i+1)
	return nil
}

// Commit ends an edit pass on the day: the schedule is normalized.
func (p *DailyPlan) Commit() {
	p.Items = Normalize(p.Items)
}

// Total returns the day's expenses in the display currency, rounded.
func (p DailyPlan) Total(r Rates, display Currency) float64 {
	return r.Total(p.Expenses, display)
}

func (p DailyPlan) clone() DailyPlan {
	p.Items = slices.Clone(p.Items)
	p.Expenses = slices.Clone(p.Expenses)
	if p.Items == nil {
		p.Items = []ScheduleItem{}
	}
	if p.Expenses == nil {
		p.Expenses = []Expense{}
	}
	return p
}
