package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/travel"
	md "github.com/nao1215/markdown"
)

// TripsMarkdown renders the list of trips with their dates and total spending.
func TripsMarkdown(trips []travel.Trip, r travel.Rates, display travel.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trips")
	if len(trips) == 0 {
		doc.PlainText("No trip yet, create one with `trv new`.")
		return doc.String()
	}

	rows := make([][]string, 0, len(trips))
	for i, t := range trips {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			cell(t.Title),
			strconv.Itoa(len(t.Plans)),
			dates(t),
			travel.FormatAmount(tripTotal(t, r, display), display),
			t.ID,
		})
	}
	table(doc, md.TableSet{
		Header: []string{"#", "Trip", "Days", "Dates", "Spent", "ID"},
		Rows:   rows,
	})
	return doc.String()
}

// TripMarkdown renders a whole trip, day after day.
func TripMarkdown(t travel.Trip, r travel.Rates, display travel.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(t.Title)
	if t.HotelLink != "" {
		doc.PlainText("Hotel: " + md.Link("map", t.HotelLink))
	}
	if len(t.Plans) == 0 {
		doc.PlainText("No days yet, pick the dates with `trv dates`.")
		return doc.String()
	}
	for i, p := range t.Plans {
		writeDay(doc, i, p, r, display)
	}
	doc.H2("Trip Total")
	doc.PlainText(md.Bold(travel.FormatAmount(tripTotal(t, r, display), display)))
	return doc.String()
}

// DayMarkdown renders the day at index i of a trip.
func DayMarkdown(i int, p travel.DailyPlan, r travel.Rates, display travel.Currency) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	writeDay(doc, i, p, r, display)
	return doc.String()
}

func writeDay(doc *md.Markdown, i int, p travel.DailyPlan, r travel.Rates, display travel.Currency) {
	doc.H2(fmt.Sprintf("Day %d: %s (%s) %s", i+1, p.Date, p.Weekday, p.Title))

	if len(p.Items) > 0 {
		rows := make([][]string, 0, len(p.Items))
		var notes []string
		for j, it := range p.Items {
			link := ""
			if it.MapLink != "" {
				link = md.Link("map", it.MapLink)
			}
			rows = append(rows, []string{
				strconv.Itoa(j + 1),
				span(it),
				cell(it.Location),
				link,
				it.Active.String(),
				cell(it.Note()),
			})
			if !it.Expanded {
				continue
			}
			for _, c := range travel.Categories {
				if n := it.Notes.Get(c); n != "" && c != it.Active {
					notes = append(notes, fmt.Sprintf("#%d %s: %s", j+1, c, n))
				}
			}
		}
		table(doc, md.TableSet{
			Header: []string{"#", "Time", "Location", "Map", "Category", "Note"},
			Rows:   rows,
		})
		if len(notes) > 0 {
			doc.BulletList(notes...)
		}
	}

	if p.Memo != "" {
		doc.H3("Memo")
		doc.PlainText(p.Memo)
	}

	if len(p.Expenses) > 0 {
		doc.H3("Expenses")
		rows := make([][]string, 0, len(p.Expenses))
		for j, e := range p.Expenses {
			rows = append(rows, []string{
				strconv.Itoa(j + 1),
				cell(e.Category),
				cell(e.Name),
				cell(e.Amount),
				string(e.Currency),
			})
		}
		table(doc, md.TableSet{
			Header: []string{"#", "Category", "Name", "Amount", "Currency"},
			Rows:   rows,
		})
		doc.PlainText(md.Bold("Total: " + travel.FormatAmount(p.Total(r, display), display)))
	}
}

// RatesMarkdown renders the rate table.
func RatesMarkdown(r travel.Rates) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Exchange Rates")
	doc.PlainText(fmt.Sprintf("Value of one unit in %s.", travel.Base))
	rows := make([][]string, 0, len(travel.Currencies))
	for _, c := range travel.Currencies {
		rows = append(rows, []string{string(c), c.Symbol(), strconv.FormatFloat(r.Rate(c), 'f', -1, 64)})
	}
	table(doc, md.TableSet{
		Header: []string{"Currency", "Symbol", "Rate"},
		Rows:   rows,
	})
	return doc.String()
}
