package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/travel"
	"github.com/google/subcommands"
)

type doneCmd struct {
	target
}

func (*doneCmd) Name() string     { return "done" }
func (*doneCmd) Synopsis() string { return "put the schedule of a day in order" }
func (*doneCmd) Usage() string {
	return `trv done [-trip <trip>] [-day <n>]

  Ends an edit pass: items ending before they start get their times swapped,
  items are sorted by start time and an item starting before the previous
  one ends is moved to that end. Without -day, every day of the trip is
  put in order.
`
}

func (c *doneCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	if c.day != 0 {
		err := c.updateDay(s, func(p *travel.DailyPlan) error {
			p.Commit()
			return nil
		})
		if err != nil {
			return status(err)
		}
		fmt.Fprintf(os.Stderr, "Schedule of day %d in order\n", c.day)
		return subcommands.ExitSuccess
	}
	trip, err := c.resolve(s)
	if err != nil {
		return status(err)
	}
	err = s.Update(trip.ID, func(t *travel.Trip) error {
		for i := range t.Plans {
			t.Plans[i].Commit()
		}
		return nil
	})
	if err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "Schedule of %q in order\n", trip.Title)
	return subcommands.ExitSuccess
}

type memoCmd struct {
	target
}

func (*memoCmd) Name() string     { return "memo" }
func (*memoCmd) Synopsis() string { return "write the memo of a day" }
func (*memoCmd) Usage() string {
	return `trv memo [-trip <trip>] -day <n> <text>

  Replaces the memo of the day. An empty text clears it.
`
}

func (c *memoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	memo := strings.Join(f.Args(), " ")
	return status(c.updateDay(s, func(p *travel.DailyPlan) error {
		p.Memo = memo
		return nil
	}))
}
