package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/travel"
	"github.com/etnz/travel/assist"
	"github.com/google/subcommands"
)

// drafter builds the assistant, replaced in tests.
var drafter = func(ctx context.Context, apiKey, model string) (travelDrafter, error) {
	return assist.NewClient(ctx, apiKey, model)
}

type travelDrafter interface {
	Draft(ctx context.Context, t travel.Trip, p travel.DailyPlan, request string) ([]travel.ScheduleItem, error)
}

type assistCmd struct {
	target
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "draft the schedule of a day with Gemini" }
func (*assistCmd) Usage() string {
	return `trv assist [-trip <trip>] -day <n> [<request>...]

  Asks Gemini to suggest the stops of a day and appends them to its
  schedule. The words after the flags are passed along as a request.
  The API key is read from the assist.api_key setting, TRAVEL_ASSIST_API_KEY
  or GEMINI_API_KEY.

Usage Examples:
$ trv assist -day 2 temples in the morning, sushi for lunch
`
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, err := OpenStore()
	if err != nil {
		return status(err)
	}
	trip, err := c.resolve(s)
	if err != nil {
		return status(err)
	}
	i, err := c.dayIndex()
	if err != nil {
		return status(err)
	}
	day, err := trip.Day(i)
	if err != nil {
		return status(err)
	}

	d, err := drafter(ctx, cfg.Assist.APIKey, cfg.Assist.Model)
	if err != nil {
		return status(err)
	}
	items, err := d.Draft(ctx, trip, *day, strings.Join(f.Args(), " "))
	if err != nil {
		return status(fmt.Errorf("assistant failed: %w", err))
	}

	err = s.UpdateDay(trip.ID, i, func(p *travel.DailyPlan) error {
		for _, it := range items {
			p.AddItem(it)
		}
		p.Commit()
		return nil
	})
	if err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "Added %d items to day %d\n", len(items), c.day)
	return subcommands.ExitSuccess
}
