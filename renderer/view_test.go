package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/travel"
	"github.com/etnz/travel/date"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// outline is what a rendered document is made of.
type outline struct {
	headings []string // "## text"
	tables   []int    // number of body rows of each table
}

// nodeText concatenates the text of n's descendants.
func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			b.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func parseOutline(t *testing.T, doc string) outline {
	t.Helper()
	src := []byte(doc)
	p := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := p.Parse(text.NewReader(src))

	var o outline
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			o.headings = append(o.headings, strings.Repeat("#", n.Level)+" "+nodeText(n, src))
			return ast.WalkSkipChildren, nil
		case *east.Table:
			rows := 0
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				if _, ok := c.(*east.TableRow); ok {
					rows++
				}
			}
			o.tables = append(o.tables, rows)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return o
}

func sampleTrip() travel.Trip {
	t := travel.Trip{ID: "trip-1", Title: "Taipei", HotelLink: "https://maps.example/hotel"}
	t.SelectDates(date.NewRange(date.New(2024, 3, 1), date.New(2024, 3, 2)))

	it := travel.NewScheduleItem("a")
	it.Location = "Taipei 101 | observatory"
	it.MapLink = "https://maps.example/101"
	it.SetNote("MRT red line")
	it.Notes.Set(travel.Food, "dumplings")
	t.Plans[0].AddItem(it)
	b := travel.NewScheduleItem("b")
	b.Start, b.End = "12:00", "12:00"
	b.Expanded = false
	b.Notes.Set(travel.Notice, "hidden while collapsed")
	t.Plans[0].AddItem(b)
	t.Plans[0].Memo = "Buy an EasyCard"
	t.Plans[0].AddExpense(travel.Expense{ID: "e1", Category: "Dining", Name: "Dumplings", Amount: "100", Currency: travel.TWD})
	t.Plans[0].AddExpense(travel.Expense{ID: "e2", Category: "Shopping", Name: "Tea", Amount: "1000", Currency: travel.JPY})
	return t
}

func TestTripMarkdown(t *testing.T) {
	doc := TripMarkdown(sampleTrip(), travel.DefaultRates(), travel.TWD)
	o := parseOutline(t, doc)

	wantHeadings := []string{
		"# Taipei",
		"## Day 1: 3/1 (Fri) New itinerary",
		"### Memo",
		"### Expenses",
		"## Day 2: 3/2 (Sat) New itinerary",
		"## Trip Total",
	}
	if strings.Join(o.headings, "\n") != strings.Join(wantHeadings, "\n") {
		t.Errorf("headings:\ngot  %q\nwant %q", o.headings, wantHeadings)
	}
	if len(o.tables) != 2 || o.tables[0] != 2 || o.tables[1] != 2 {
		t.Errorf("tables rows = %v, want [2 2]", o.tables)
	}
	for _, want := range []string{"Total: $310", "#1 food: dumplings", "Buy an EasyCard", `Taipei 101 \| observatory`, "12:00"} {
		if !strings.Contains(doc, want) {
			t.Errorf("TripMarkdown() does not contain %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "hidden while collapsed") {
		t.Errorf("TripMarkdown() shows the notes of a collapsed item:\n%s", doc)
	}
}

func TestTripMarkdown_NoDays(t *testing.T) {
	doc := TripMarkdown(travel.Trip{Title: "Someday"}, travel.DefaultRates(), travel.TWD)
	o := parseOutline(t, doc)
	if len(o.headings) != 1 || len(o.tables) != 0 {
		t.Errorf("unexpected outline %+v for:\n%s", o, doc)
	}
}

func TestDayMarkdown_DisplayCurrency(t *testing.T) {
	trip := sampleTrip()
	doc := DayMarkdown(0, trip.Plans[0], travel.DefaultRates(), travel.JPY)
	if !strings.Contains(doc, "1,476") {
		t.Errorf("DayMarkdown() total not in yen:\n%s", doc)
	}
}

func TestTripsMarkdown(t *testing.T) {
	trips := []travel.Trip{sampleTrip(), {ID: "trip-2", Title: "Osaka"}}
	doc := TripsMarkdown(trips, travel.DefaultRates(), travel.TWD)
	o := parseOutline(t, doc)
	if len(o.tables) != 1 || o.tables[0] != 2 {
		t.Errorf("tables rows = %v, want [2]", o.tables)
	}
	if !strings.Contains(doc, "3/1 - 3/2") {
		t.Errorf("TripsMarkdown() misses the dates:\n%s", doc)
	}

	empty := parseOutline(t, TripsMarkdown(nil, travel.DefaultRates(), travel.TWD))
	if len(empty.tables) != 0 {
		t.Errorf("TripsMarkdown(nil) renders a table")
	}
}

func TestRatesMarkdown(t *testing.T) {
	r := travel.DefaultRates()
	r[travel.EUR] = 35.25
	doc := RatesMarkdown(r)
	o := parseOutline(t, doc)
	if len(o.tables) != 1 || o.tables[0] != len(travel.Currencies) {
		t.Errorf("tables rows = %v, want [%d]", o.tables, len(travel.Currencies))
	}
	if !strings.Contains(doc, "35.25") {
		t.Errorf("RatesMarkdown() misses the euro rate:\n%s", doc)
	}
}
