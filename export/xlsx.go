// Package export writes trips in formats for other tools.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/travel"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the name of the first sheet of a workbook.
const SummarySheet = "Summary"

// SheetName returns the name of the sheet of the day at index i.
// Sheet names cannot contain a slash, so "3/1" becomes "3-1".
func SheetName(i int, p travel.DailyPlan) string {
	return fmt.Sprintf("Day %d %s", i+1, strings.ReplaceAll(p.Date, "/", "-"))
}

// Workbook builds a spreadsheet of the trip: a summary sheet, then one sheet
// per day with its schedule and expenses. Values are given in the display
// currency.
func Workbook(t travel.Trip, r travel.Rates, display travel.Currency) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return nil, err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	total, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	sum := &sheet{f: f, name: SummarySheet, header: header, total: total}
	sum.line(t.Title)
	sum.line("Hotel", t.HotelLink)
	sum.line()
	sum.head("Day", "Date", "Weekday", "Title", "Items", "Expenses", "Total "+string(display))
	var expenses []travel.Expense
	for i, p := range t.Plans {
		sum.line(i+1, p.Date, p.Weekday, p.Title, len(p.Items), len(p.Expenses), p.Total(r, display))
		expenses = append(expenses, p.Expenses...)
	}
	sum.totals("Total", "", "", "", "", len(expenses), r.Total(expenses, display))
	sum.widths(map[string]float64{"A": 10, "B": 10, "C": 10, "D": 30})
	if sum.err != nil {
		return nil, fmt.Errorf("failed to write the summary sheet: %w", sum.err)
	}

	for i, p := range t.Plans {
		name := SheetName(i, p)
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		s := &sheet{f: f, name: name, header: header, total: total}
		s.line(fmt.Sprintf("%s (%s) %s", p.Date, p.Weekday, p.Title))
		s.line()
		s.head("Start", "End", "Location", "Map", "Transport", "Food", "Restroom", "Notice")
		for _, it := range p.Items {
			s.line(it.Start, it.End, it.Location, it.MapLink,
				it.Notes.Get(travel.Transport), it.Notes.Get(travel.Food),
				it.Notes.Get(travel.Restroom), it.Notes.Get(travel.Notice))
		}
		s.line()
		if p.Memo != "" {
			s.line("Memo", p.Memo)
			s.line()
		}
		s.head("Category", "Name", "Amount", "Currency", string(display))
		for _, e := range p.Expenses {
			v := r.Convert(travel.ParseAmount(e.Amount), e.Currency, display)
			s.line(e.Category, e.Name, e.Amount, string(e.Currency), v)
		}
		s.totals("Total", "", "", "", p.Total(r, display))
		s.widths(map[string]float64{"C": 30, "D": 20, "E": 20})
		if s.err != nil {
			return nil, fmt.Errorf("failed to write sheet %q: %w", name, s.err)
		}
	}
	return f, nil
}

// Write writes the workbook of the trip to w.
func Write(w io.Writer, t travel.Trip, r travel.Rates, display travel.Currency) error {
	f, err := Workbook(t, r, display)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// sheet appends rows to a sheet, the first error stops all writes.
type sheet struct {
	f             *excelize.File
	name          string
	row           int
	header, total int
	err           error
}

func (s *sheet) line(values ...any) {
	if s.err != nil {
		return
	}
	s.row++
	if len(values) == 0 {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetSheetRow(s.name, cell, &values)
}

func (s *sheet) styled(style int, values ...any) {
	s.line(values...)
	if s.err != nil {
		return
	}
	from, _ := excelize.CoordinatesToCellName(1, s.row)
	to, _ := excelize.CoordinatesToCellName(len(values), s.row)
	s.err = s.f.SetCellStyle(s.name, from, to, style)
}

func (s *sheet) head(values ...any)   { s.styled(s.header, values...) }
func (s *sheet) totals(values ...any) { s.styled(s.total, values...) }

func (s *sheet) widths(w map[string]float64) {
	for col, width := range w {
		if s.err != nil {
			return
		}
		s.err = s.f.SetColWidth(s.name, col, col, width)
	}
}
