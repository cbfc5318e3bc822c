package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/travel"
	"github.com/etnz/travel/date"
	"github.com/etnz/travel/renderer"
	"github.com/google/subcommands"
)

type newCmd struct {
	title string
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a new trip" }
func (*newCmd) Usage() string {
	return `trv new [-title <title>]

  Creates an empty trip. Without -title, the name is asked for. An empty
  answer cancels.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "Title of the trip, asked for if not set.")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	var p travel.Prompter = newTerminal(false)
	if c.title != "" {
		p = answer{text: c.title}
	}
	trip, err := s.CreateTrip(p)
	if err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "Created trip %q (%s)\n", trip.Title, trip.ID)
	return subcommands.ExitSuccess
}

type lsCmd struct{}

func (*lsCmd) Name() string     { return "ls" }
func (*lsCmd) Synopsis() string { return "list the trips" }
func (*lsCmd) Usage() string {
	return `trv ls

  Lists all the trips with their dates and total spending.
`
}
func (*lsCmd) SetFlags(*flag.FlagSet) {}

func (*lsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, err := OpenStore()
	if err != nil {
		return status(err)
	}
	display, err := cfg.Currency()
	if err != nil {
		return status(err)
	}
	printMarkdown(renderer.TripsMarkdown(s.Trips(), s.Rates(), display))
	return subcommands.ExitSuccess
}

type showCmd struct {
	target
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a trip or one of its days" }
func (*showCmd) Usage() string {
	return `trv show [-trip <trip>] [-day <n>]

  Displays the schedule, memo and expenses of every day of the trip, or of
  a single day with -day.
`
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, err := OpenStore()
	if err != nil {
		return status(err)
	}
	display, err := cfg.Currency()
	if err != nil {
		return status(err)
	}
	trip, err := c.resolve(s)
	if err != nil {
		return status(err)
	}
	if c.day == 0 {
		printMarkdown(renderer.TripMarkdown(trip, s.Rates(), display))
		return subcommands.ExitSuccess
	}
	i, err := c.dayIndex()
	if err != nil {
		return status(err)
	}
	p, err := trip.Day(i)
	if err != nil {
		return status(err)
	}
	printMarkdown(renderer.DayMarkdown(i, *p, s.Rates(), display))
	return subcommands.ExitSuccess
}

type rmCmd struct {
	target
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a trip" }
func (*rmCmd) Usage() string {
	return `trv rm -trip <trip> [-y]

  Deletes a trip with all its days and expenses, after confirmation.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.trip, "trip", "", "Trip id, title or title prefix.")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.trip == "" {
		return status(usageErrorf("select the trip to delete with -trip"))
	}
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	trip, err := c.resolve(s)
	if err != nil {
		return status(err)
	}
	if err := s.DeleteTrip(trip.ID, newTerminal(c.yes)); err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "Deleted trip %q\n", trip.Title)
	return subcommands.ExitSuccess
}

type datesCmd struct {
	target
}

// maxTripDays bounds the number of days a trip can be given.
const maxTripDays = 366

func (*datesCmd) Name() string     { return "dates" }
func (*datesCmd) Synopsis() string { return "set the days of a trip" }
func (*datesCmd) Usage() string {
	return `trv dates [-trip <trip>] <first> <last>

  Replaces all the days of the trip with one empty day per date from <first>
  to <last> included. Dates are written YYYY-MM-DD, in any order. A trip
  lasts at most 366 days.

  Warning: the schedules, memos and expenses of the previous days are lost.
`
}

func (c *datesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		return status(usageErrorf("expected two dates, got %d arguments", f.NArg()))
	}
	first, err := date.Parse(f.Arg(0))
	if err != nil {
		return status(usageErrorf("%v", err))
	}
	last, err := date.Parse(f.Arg(1))
	if err != nil {
		return status(usageErrorf("%v", err))
	}
	r := date.NewRange(first, last)
	if n := r.Len(); n > maxTripDays {
		return status(usageErrorf("a trip lasts at most %d days, got %d", maxTripDays, n))
	}

	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	trip, err := c.resolve(s)
	if err != nil {
		return status(err)
	}
	if n := len(trip.Plans); n > 0 {
		fmt.Fprintf(os.Stderr, "Warning: replacing the %d previous days of %q\n", n, trip.Title)
	}
	err = s.Update(trip.ID, func(t *travel.Trip) error {
		t.SelectDates(r)
		return nil
	})
	if err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "Trip %q now has %d days, from %s to %s\n", trip.Title, r.Len(), r.From, r.To)
	return subcommands.ExitSuccess
}

type titleCmd struct {
	target
}

func (*titleCmd) Name() string     { return "title" }
func (*titleCmd) Synopsis() string { return "rename a trip or one of its days" }
func (*titleCmd) Usage() string {
	return `trv title [-trip <trip>] [-day <n>] <title>

  Renames the trip, or the day selected with -day.
`
}

func (c *titleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	title := strings.TrimSpace(strings.Join(f.Args(), " "))
	if title == "" {
		return status(usageErrorf("missing title"))
	}
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	if c.day != 0 {
		return status(c.updateDay(s, func(p *travel.DailyPlan) error {
			p.Title = title
			return nil
		}))
	}
	trip, err := c.resolve(s)
	if err != nil {
		return status(err)
	}
	return status(s.Update(trip.ID, func(t *travel.Trip) error {
		t.Title = title
		return nil
	}))
}

type hotelCmd struct {
	target
}

func (*hotelCmd) Name() string     { return "hotel" }
func (*hotelCmd) Synopsis() string { return "set the hotel map link of a trip" }
func (*hotelCmd) Usage() string {
	return `trv hotel [-trip <trip>] [<link>]

  Sets the map link of the trip's hotel. Without <link> it is asked for; an
  empty answer leaves it unchanged.
`
}

func (c *hotelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.trip, "trip", "", "Trip id, title or title prefix. Optional when there is a single trip.")
}

func (c *hotelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	trip, err := c.resolve(s)
	if err != nil {
		return status(err)
	}
	var p travel.Prompter = newTerminal(false)
	if f.NArg() > 0 {
		p = answer{text: f.Arg(0)}
	}
	return status(s.SetHotelLink(trip.ID, p))
}

type openCmd struct {
	itemTarget
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a map link in the browser" }
func (*openCmd) Usage() string {
	return `trv open [-trip <trip>] [-day <n> -item <n>]

  Opens the hotel map link of the trip, or the map link of an item.
`
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	trip, err := c.resolve(s)
	if err != nil {
		return status(err)
	}
	link := trip.HotelLink
	if c.day != 0 || c.item != 0 {
		link, err = c.mapLink(trip)
		if err != nil {
			return status(err)
		}
	}
	return status(travel.OpenLink(opener, link))
}

func (c *openCmd) mapLink(trip travel.Trip) (string, error) {
	i, err := c.dayIndex()
	if err != nil {
		return "", err
	}
	j, err := c.itemIndex()
	if err != nil {
		return "", err
	}
	p, err := trip.Day(i)
	if err != nil {
		return "", err
	}
	it, err := p.Item(j)
	if err != nil {
		return "", err
	}
	return it.MapLink, nil
}

// opener opens links, replaced in tests.
var opener travel.Opener = browser{}
