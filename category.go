package travel

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is one of the four note slots attached to a schedule item.
type Category int

const (
	// Transport notes: how to get there.
	Transport Category = iota
	// Food notes: where to eat nearby.
	Food
	// Restroom notes.
	Restroom
	// Notice notes: things to keep in mind.
	Notice

	numCategories = iota
)

// Categories lists all the categories in display order.
var Categories = [numCategories]Category{Transport, Food, Restroom, Notice}

var categoryNames = [numCategories]string{"transport", "food", "restroom", "notice"}

// categoryAliases are the labels used by the browser version of the planner.
// Documents exported from it can be imported as-is.
var categoryAliases = map[string]Category{
	"交通":   Transport,
	"附近美食": Food,
	"廁所":   Restroom,
	"注意事項": Notice,
}

func (c Category) String() string {
	if c < 0 || int(c) >= numCategories {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory parses a category name, case insensitive.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	if c, ok := categoryAliases[strings.TrimSpace(s)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrCategory, s)
}

func (c Category) MarshalText() ([]byte, error) {
	if c < 0 || int(c) >= numCategories {
		return nil, fmt.Errorf("%w: %d", ErrCategory, int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Notes holds one free text per category. All four are kept independently
// whatever the category currently selected on the item.
type Notes [numCategories]string

// Get returns the note for category c.
func (n Notes) Get(c Category) string { return n[c] }

// Set replaces the note for category c.
func (n *Notes) Set(c Category, text string) { n[c] = text }

// MarshalJSON writes the notes as an object keyed by category name, in category order.
func (n Notes) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for _, c := range Categories {
		w.Append(c.String(), n[c])
	}
	return w.MarshalJSON()
}

func (n *Notes) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var notes Notes
	for k, v := range m {
		c, err := ParseCategory(k)
		if err != nil {
			return err
		}
		notes[c] = v
	}
	*n = notes
	return nil
}
