package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/travel"
	"github.com/etnz/travel/renderer"
	"github.com/google/subcommands"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display or change the exchange rates" }
func (*ratesCmd) Usage() string {
	return `trv rates [<code> <rate>]

  Without arguments, displays the value of one unit of each currency in TWD.
  With a currency code and a rate, changes that rate. The TWD rate is
  always 1. Rates are not checked: a zero rate makes totals infinite.
`
}
func (*ratesCmd) SetFlags(*flag.FlagSet) {}

func (*ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	switch f.NArg() {
	case 0:
		printMarkdown(renderer.RatesMarkdown(s.Rates()))
		return subcommands.ExitSuccess
	case 2:
	default:
		return status(usageErrorf("expected a currency and a rate"))
	}
	c, err := travel.ParseCurrency(f.Arg(0))
	if err != nil {
		return status(err)
	}
	v, err := strconv.ParseFloat(f.Arg(1), 64)
	if err != nil {
		return status(usageErrorf("invalid rate %q", f.Arg(1)))
	}
	if err := s.SetRate(c, v); err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "1 %s = %v %s\n", c, v, travel.Base)
	return subcommands.ExitSuccess
}
