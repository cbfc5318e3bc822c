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

// itemCmd groups the commands editing the schedule of a day.
type itemCmd struct{}

func (*itemCmd) Name() string     { return "item" }
func (*itemCmd) Synopsis() string { return "edit the schedule of a day" }
func (*itemCmd) Usage() string {
	return `trv item <add|rm|set|cat|note|toggle|link> [flags]

  Edits the schedule items of a day. Times are not reordered until 'trv done'.
  Run 'trv item help <command>' for the flags of each command.
`
}
func (*itemCmd) SetFlags(*flag.FlagSet) {}

func (*itemCmd) commands() []subcommands.Command {
	return []subcommands.Command{
		&itemAddCmd{},
		&itemRmCmd{},
		&itemSetCmd{},
		&itemCatCmd{},
		&itemNoteCmd{},
		&itemToggleCmd{},
		&itemLinkCmd{},
	}
}

func (c *itemCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return runGroup(ctx, f, "trv item", c.commands(), args...)
}

// itemFields are the flags that set the fields of an item.
type itemFields struct {
	start, end, location, link string
}

func (c *itemFields) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "Start time, HH:MM.")
	f.StringVar(&c.end, "end", "", "End time, HH:MM.")
	f.StringVar(&c.location, "location", "", "Name of the place.")
	f.StringVar(&c.link, "link", "", "Map link of the place.")
}

// edit returns the edit made of the flags actually set.
func (c *itemFields) edit(f *flag.FlagSet) travel.ItemEdit {
	var e travel.ItemEdit
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "start":
			e.Start = &c.start
		case "end":
			e.End = &c.end
		case "location":
			e.Location = &c.location
		case "link":
			e.MapLink = &c.link
		}
	})
	return e
}

type itemAddCmd struct {
	target
	itemFields
}

func (*itemAddCmd) Name() string     { return "add" }
func (*itemAddCmd) Synopsis() string { return "add an item to the schedule" }
func (*itemAddCmd) Usage() string {
	return `trv item add [-trip <trip>] -day <n> [-start HH:MM] [-end HH:MM] [-location <place>] [-link <url>]

  Appends an item to the day, 09:00-10:00 unless told otherwise.
`
}

func (c *itemAddCmd) SetFlags(f *flag.FlagSet) {
	c.target.SetFlags(f)
	c.itemFields.SetFlags(f)
}

func (c *itemAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	edit := c.edit(f)
	var n int
	err = c.updateDay(s, func(p *travel.DailyPlan) error {
		it := travel.NewScheduleItem(travel.NewID("item"))
		if err := edit.Apply(&it); err != nil {
			return err
		}
		n = p.AddItem(it) + 1
		return nil
	})
	if err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "Added item #%d\n", n)
	return subcommands.ExitSuccess
}

type itemRmCmd struct {
	itemTarget
}

func (*itemRmCmd) Name() string     { return "rm" }
func (*itemRmCmd) Synopsis() string { return "remove an item from the schedule" }
func (*itemRmCmd) Usage() string {
	return `trv item rm [-trip <trip>] -day <n> -item <n>

  Removes an item, the following items move up.
`
}

func (c *itemRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	j, err := c.itemIndex()
	if err != nil {
		return status(err)
	}
	return status(c.updateDay(s, func(p *travel.DailyPlan) error { return p.RemoveItem(j) }))
}

type itemSetCmd struct {
	itemTarget
	itemFields
}

func (*itemSetCmd) Name() string     { return "set" }
func (*itemSetCmd) Synopsis() string { return "change the time or place of an item" }
func (*itemSetCmd) Usage() string {
	return `trv item set [-trip <trip>] -day <n> -item <n> [-start HH:MM] [-end HH:MM] [-location <place>] [-link <url>]

  Changes the fields given, the others are left as they are. A start after
  the end is accepted and fixed by 'trv done'.
`
}

func (c *itemSetCmd) SetFlags(f *flag.FlagSet) {
	c.itemTarget.SetFlags(f)
	c.itemFields.SetFlags(f)
}

func (c *itemSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	edit := c.edit(f)
	return status(c.updateItem(s, edit.Apply))
}

type itemCatCmd struct {
	itemTarget
}

func (*itemCatCmd) Name() string     { return "cat" }
func (*itemCatCmd) Synopsis() string { return "select the note category of an item" }
func (*itemCatCmd) Usage() string {
	return `trv item cat [-trip <trip>] -day <n> -item <n> <transport|food|restroom|notice>

  Selects the note shown and edited for the item. The other notes are kept.
`
}

func (c *itemCatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		return status(usageErrorf("expected one category"))
	}
	cat, err := travel.ParseCategory(f.Arg(0))
	if err != nil {
		return status(err)
	}
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	return status(c.updateItem(s, func(it *travel.ScheduleItem) error {
		it.Select(cat)
		return nil
	}))
}

type itemNoteCmd struct {
	itemTarget
	cat string
}

func (*itemNoteCmd) Name() string     { return "note" }
func (*itemNoteCmd) Synopsis() string { return "write the note of an item" }
func (*itemNoteCmd) Usage() string {
	return `trv item note [-trip <trip>] -day <n> -item <n> [-cat <category>] <text>

  Replaces the note of the selected category of the item. With -cat, that
  category is selected first.
`
}

func (c *itemNoteCmd) SetFlags(f *flag.FlagSet) {
	c.itemTarget.SetFlags(f)
	f.StringVar(&c.cat, "cat", "", "Category to select before writing: transport, food, restroom or notice.")
}

func (c *itemNoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.Join(f.Args(), " ")
	var cat *travel.Category
	if c.cat != "" {
		v, err := travel.ParseCategory(c.cat)
		if err != nil {
			return status(err)
		}
		cat = &v
	}
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	return status(c.updateItem(s, func(it *travel.ScheduleItem) error {
		if cat != nil {
			it.Select(*cat)
		}
		it.SetNote(text)
		return nil
	}))
}

type itemToggleCmd struct {
	itemTarget
}

func (*itemToggleCmd) Name() string     { return "toggle" }
func (*itemToggleCmd) Synopsis() string { return "expand or collapse the notes of an item" }
func (*itemToggleCmd) Usage() string {
	return `trv item toggle [-trip <trip>] -day <n> -item <n>

  Expands or collapses the item. Only expanded items show all their notes.
`
}

func (c *itemToggleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	return status(c.updateItem(s, func(it *travel.ScheduleItem) error {
		it.Toggle()
		return nil
	}))
}

type itemLinkCmd struct {
	itemTarget
}

func (*itemLinkCmd) Name() string     { return "link" }
func (*itemLinkCmd) Synopsis() string { return "set the map link of an item" }
func (*itemLinkCmd) Usage() string {
	return `trv item link [-trip <trip>] -day <n> -item <n> [<link>]

  Sets the map link of the item. Without <link> it is asked for; an empty
  answer leaves it unchanged.
`
}

func (c *itemLinkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
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
	j, err := c.itemIndex()
	if err != nil {
		return status(err)
	}
	var p travel.Prompter = newTerminal(false)
	if f.NArg() > 0 {
		p = answer{text: f.Arg(0)}
	}
	return status(s.SetMapLink(trip.ID, i, j, p))
}
