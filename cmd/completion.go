package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/travel"
	"github.com/etnz/travel/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers a shell completion request and exits, it returns
// immediately otherwise. Run with COMP_INSTALL=1 to install the completion
// in the shell.
func Complete(name string) {
	completion().Complete(name)
}

// completion describes the command line, flags included.
func completion() *complete.Command {
	top := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, cmds := range commands() {
		for _, c := range cmds {
			top.Sub[c.Name()] = commandCompletion(c)
		}
	}
	names := make(predict.Set, 0, len(top.Sub))
	for name := range top.Sub {
		names = append(names, name)
	}
	top.Sub["help"] = &complete.Command{Args: names}
	top.Sub["flags"] = &complete.Command{}
	top.Sub["commands"] = &complete.Command{}
	if topics, err := docs.GetAllTopics(); err == nil {
		top.Sub["topic"].Args = predict.Set(append(topics, "readme", "*"))
	}
	return top
}

func commandCompletion(c subcommands.Command) *complete.Command {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	cc := &complete.Command{Flags: flagPredictors(f)}
	switch c.Name() {
	case "rates":
		cc.Args = currencies()
	case "import":
		cc.Args = predict.Files("*.json")
	}
	if g, ok := c.(group); ok {
		cc.Sub = map[string]*complete.Command{}
		for _, sub := range g.commands() {
			cc.Sub[sub.Name()] = commandCompletion(sub)
		}
	}
	return cc
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "cat":
			names := make(predict.Set, 0, len(travel.Categories))
			for _, c := range travel.Categories {
				names = append(names, c.String())
			}
			flags[fl.Name] = names
		case "currency", "in":
			flags[fl.Name] = currencies()
		case "trip":
			flags[fl.Name] = complete.PredictFunc(predictTrips)
		case "config":
			flags[fl.Name] = predict.Files("*.yaml")
		case "data":
			flags[fl.Name] = predict.Dirs("*")
		case "o":
			flags[fl.Name] = predict.Files("*")
		default:
			if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				flags[fl.Name] = predict.Nothing
			} else {
				flags[fl.Name] = predict.Something
			}
		}
	})
	return flags
}

func currencies() predict.Set {
	set := make(predict.Set, 0, len(travel.Currencies))
	for _, c := range travel.Currencies {
		set = append(set, string(c))
	}
	return set
}

// predictTrips suggests the titles of the stored trips.
func predictTrips(prefix string) []string {
	s, _, err := OpenStore()
	if err != nil {
		return nil
	}
	var titles []string
	for _, t := range s.Trips() {
		if strings.HasPrefix(t.Title, prefix) {
			titles = append(titles, t.Title)
		}
	}
	return titles
}
