package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/travel"
	"github.com/etnz/travel/export"
	"github.com/google/subcommands"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace all the data with a JSON document" }
func (*importCmd) Usage() string {
	return `trv import [-y] <file|->

  Replaces all the trips and rates with the content of a document written by
  'trv export'. Use - to read from the standard input.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return status(usageErrorf("expected one file"))
	}
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	term := newTerminal(c.yes)
	if n := len(s.Trips()); n > 0 && !term.Confirm(fmt.Sprintf("Replace the %d existing trips?", n)) {
		return status(travel.ErrCanceled)
	}

	var r io.Reader = term.r
	if name := f.Arg(0); name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return status(err)
		}
		defer file.Close()
		r = file
	}
	if err := s.Import(r); err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "Imported %d trips\n", len(s.Trips()))
	return subcommands.ExitSuccess
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write all the data as a JSON document" }
func (*exportCmd) Usage() string {
	return `trv export [-o <file>]

  Writes all the trips and the rates as a single JSON document, on the
  standard output by default.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	if c.output == "" {
		return status(s.Export(stdout))
	}
	file, err := os.Create(c.output)
	if err != nil {
		return status(err)
	}
	if err := s.Export(file); err != nil {
		file.Close()
		return status(err)
	}
	return status(file.Close())
}

type xlsxCmd struct {
	target
	output string
}

func (*xlsxCmd) Name() string     { return "xlsx" }
func (*xlsxCmd) Synopsis() string { return "export a trip as a spreadsheet" }
func (*xlsxCmd) Usage() string {
	return `trv xlsx [-trip <trip>] -o <file.xlsx>

  Writes a workbook with a summary sheet and one sheet per day of the trip.
`
}

func (c *xlsxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.trip, "trip", "", "Trip id, title or title prefix. Optional when there is a single trip.")
	f.StringVar(&c.output, "o", "", "Output file.")
}

func (c *xlsxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.output == "" {
		return status(usageErrorf("missing output file, use -o"))
	}
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
	file, err := os.Create(c.output)
	if err != nil {
		return status(err)
	}
	if err := export.Write(file, trip, s.Rates(), display); err != nil {
		file.Close()
		return status(err)
	}
	if err := file.Close(); err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %q\n", c.output)
	return subcommands.ExitSuccess
}

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the data with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `trv query <jsonpath>

  Evaluates a JSONPath expression on the document written by 'trv export'
  and prints the result as JSON.

Usage Examples:
# Titles of all the trips.
$ trv query '$.trips[*].tripTitle'
`
}
func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return status(usageErrorf("expected one expression"))
	}
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	v, err := travel.Query(s.Document(), f.Arg(0))
	if err != nil {
		return status(err)
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return status(enc.Encode(v))
}
