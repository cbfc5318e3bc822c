package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/travel"
	"github.com/google/subcommands"
)

// expenseCmd groups the commands editing the expenses of a day.
type expenseCmd struct{}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "edit the expenses of a day" }
func (*expenseCmd) Usage() string {
	return `trv expense <add|rm|set> [flags]

  Edits the expenses of a day. Run 'trv expense help <command>' for the flags
  of each command.
`
}
func (*expenseCmd) SetFlags(*flag.FlagSet) {}

func (*expenseCmd) commands() []subcommands.Command {
	return []subcommands.Command{&expenseAddCmd{}, &expenseRmCmd{}, &expenseSetCmd{}}
}

func (c *expenseCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return runGroup(ctx, f, "trv expense", c.commands(), args...)
}

// expenseFields are the flags that set the fields of an expense.
type expenseFields struct {
	category, name, amount, currency string
}

func (c *expenseFields) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "cat", "", "Category of the expense, free text.")
	f.StringVar(&c.name, "name", "", "What was paid.")
	f.StringVar(&c.amount, "amount", "", "Amount, as printed on the receipt.")
	f.StringVar(&c.currency, "currency", "", "Currency: TWD, JPY, KRW or EUR.")
}

// edit returns the edit made of the flags actually set.
func (c *expenseFields) edit(f *flag.FlagSet) travel.ExpenseEdit {
	var e travel.ExpenseEdit
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "cat":
			e.Category = &c.category
		case "name":
			e.Name = &c.name
		case "amount":
			e.Amount = &c.amount
		case "currency":
			e.Currency = &c.currency
		}
	})
	return e
}

type expenseAddCmd struct {
	target
	expenseFields
}

func (*expenseAddCmd) Name() string     { return "add" }
func (*expenseAddCmd) Synopsis() string { return "add an expense" }
func (*expenseAddCmd) Usage() string {
	return `trv expense add [-trip <trip>] -day <n> [-cat <category>] [-name <name>] [-amount <amount>] [-currency <code>]

  Appends an expense to the day, a Dining expense in TWD unless told otherwise.
  The amount is kept as typed: if it does not start with a number it counts
  as zero in totals.
`
}

func (c *expenseAddCmd) SetFlags(f *flag.FlagSet) {
	c.target.SetFlags(f)
	c.expenseFields.SetFlags(f)
}

func (c *expenseAddCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	edit := c.edit(f)
	var n int
	err = c.updateDay(s, func(p *travel.DailyPlan) error {
		e := travel.NewExpense(travel.NewID("exp"))
		if err := edit.Apply(&e); err != nil {
			return err
		}
		n = p.AddExpense(e) + 1
		return nil
	})
	if err != nil {
		return status(err)
	}
	fmt.Fprintf(os.Stderr, "Added expense #%d\n", n)
	return subcommands.ExitSuccess
}

// expenseTarget selects an expense of a day.
type expenseTarget struct {
	target
	expense int
}

func (t *expenseTarget) SetFlags(f *flag.FlagSet) {
	t.target.SetFlags(f)
	f.IntVar(&t.expense, "expense", 0, "Expense number in the day, 1 being the first.")
}

func (t *expenseTarget) expenseIndex() (int, error) {
	if t.expense < 1 {
		return 0, usageErrorf("select an expense with -expense")
	}
	return t.expense - 1, nil
}

type expenseRmCmd struct {
	expenseTarget
}

func (*expenseRmCmd) Name() string     { return "rm" }
func (*expenseRmCmd) Synopsis() string { return "remove an expense" }
func (*expenseRmCmd) Usage() string {
	return `trv expense rm [-trip <trip>] -day <n> -expense <n>

  Removes an expense, the following expenses move up.
`
}

func (c *expenseRmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, err := c.expenseIndex()
	if err != nil {
		return status(err)
	}
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	return status(c.updateDay(s, func(p *travel.DailyPlan) error { return p.RemoveExpense(j) }))
}

type expenseSetCmd struct {
	expenseTarget
	expenseFields
}

func (*expenseSetCmd) Name() string     { return "set" }
func (*expenseSetCmd) Synopsis() string { return "change an expense" }
func (*expenseSetCmd) Usage() string {
	return `trv expense set [-trip <trip>] -day <n> -expense <n> [-cat <category>] [-name <name>] [-amount <amount>] [-currency <code>]

  Changes the fields given, the others are left as they are.
`
}

func (c *expenseSetCmd) SetFlags(f *flag.FlagSet) {
	c.expenseTarget.SetFlags(f)
	c.expenseFields.SetFlags(f)
}

func (c *expenseSetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	j, err := c.expenseIndex()
	if err != nil {
		return status(err)
	}
	s, _, err := OpenStore()
	if err != nil {
		return status(err)
	}
	edit := c.edit(f)
	return status(c.updateDay(s, func(p *travel.DailyPlan) error {
		e, err := p.Expense(j)
		if err != nil {
			return err
		}
		return edit.Apply(e)
	}))
}

type totalCmd struct {
	target
	currency string
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "print the total spent" }
func (*totalCmd) Usage() string {
	return `trv total [-trip <trip>] [-day <n>] [-in <code>]

  Prints what was spent on the trip, or on one day with -day, converted in
  the display currency and rounded to the unit.
`
}

func (c *totalCmd) SetFlags(f *flag.FlagSet) {
	c.target.SetFlags(f)
	f.StringVar(&c.currency, "in", "", "Currency of the total, the display currency by default.")
}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, cfg, err := OpenStore()
	if err != nil {
		return status(err)
	}
	if c.currency != "" {
		cfg.DisplayCurrency = c.currency
	}
	display, err := cfg.Currency()
	if err != nil {
		return status(err)
	}
	trip, err := c.resolve(s)
	if err != nil {
		return status(err)
	}
	var expenses []travel.Expense
	if c.day != 0 {
		i, err := c.dayIndex()
		if err != nil {
			return status(err)
		}
		p, err := trip.Day(i)
		if err != nil {
			return status(err)
		}
		expenses = p.Expenses
	} else {
		for _, p := range trip.Plans {
			expenses = append(expenses, p.Expenses...)
		}
	}
	fmt.Fprintln(stdout, travel.FormatAmount(s.Rates().Total(expenses, display), display))
	return subcommands.ExitSuccess
}
