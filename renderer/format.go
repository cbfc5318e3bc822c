package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/travel"
	md "github.com/nao1215/markdown"
)

// table writes ts between blank lines, so that it never continues a paragraph.
func table(doc *md.Markdown, ts md.TableSet) {
	doc.PlainText("")
	doc.Table(ts)
	doc.PlainText("")
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// cell makes free text safe to put in a table cell.
func cell(s string) string { return cellReplacer.Replace(s) }

// span formats the time span of an item, a single time for an instant.
func span(it travel.ScheduleItem) string {
	if it.IsInstant() {
		return it.Start
	}
	return it.Start + "-" + it.End
}

// dates returns the first and last day labels of a trip.
func dates(t travel.Trip) string {
	switch len(t.Plans) {
	case 0:
		return ""
	case 1:
		return t.Plans[0].Date
	}
	return fmt.Sprintf("%s - %s", t.Plans[0].Date, t.Plans[len(t.Plans)-1].Date)
}

func tripTotal(t travel.Trip, r travel.Rates, display travel.Currency) float64 {
	var expenses []travel.Expense
	for _, p := range t.Plans {
		expenses = append(expenses, p.Expenses...)
	}
	return r.Total(expenses, display)
}
