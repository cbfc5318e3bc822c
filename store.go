package travel

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultTripTitle is proposed when creating a trip.
const DefaultTripTitle = "My new trip"

// NewID returns a new unique identifier, e.g. "item-0b6a...".
func NewID(prefix string) string { return prefix + "-" + uuid.NewString() }

// Store holds all the trips and the rates. It is the unit of persistence:
// every successful change is written back whole through its Storage.
type Store struct {
	storage Storage
	trips   []Trip
	rates   Rates
}

// Open loads the document from storage.
func Open(storage Storage) (*Store, error) {
	doc, err := storage.Load()
	if err != nil {
		return nil, err
	}
	Log.WithField("trips", len(doc.Trips)).Debug("document loaded")
	return &Store{storage: storage, trips: doc.Trips, rates: doc.Rates}, nil
}

// Document returns a deep copy of the current state.
func (s *Store) Document() Document {
	trips := make([]Trip, len(s.trips))
	for i, t := range s.trips {
		trips[i] = t.clone()
	}
	return Document{Trips: trips, Rates: s.rates.Clone()}
}

func (s *Store) save() error {
	return s.storage.Save(Document{Trips: s.trips, Rates: s.rates})
}

// Trips returns a copy of all the trips, in creation order.
func (s *Store) Trips() []Trip { return s.Document().Trips }

// Rates returns a copy of the rates.
func (s *Store) Rates() Rates { return s.rates.Clone() }

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.trips, func(t Trip) bool { return t.ID == id })
}

// Trip returns a copy of the trip with this id.
func (s *Store) Trip(id string) (Trip, error) {
	i := s.index(id)
	if i < 0 {
		return Trip{}, fmt.Errorf("trip %q: %w", id, ErrNotFound)
	}
	return s.trips[i].clone(), nil
}

// Find returns the trip matching query: its id, its exact title or, failing
// that, the only trip whose title starts with query (case insensitive).
func (s *Store) Find(query string) (Trip, error) {
	if t, err := s.Trip(query); err == nil {
		return t, nil
	}
	for _, t := range s.trips {
		if t.Title == query {
			return t.clone(), nil
		}
	}
	var found []Trip
	q := strings.ToLower(query)
	for _, t := range s.trips {
		if strings.HasPrefix(strings.ToLower(t.Title), q) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return Trip{}, fmt.Errorf("trip %q: %w", query, ErrNotFound)
	case 1:
		return found[0].clone(), nil
	default:
		return Trip{}, fmt.Errorf("trip %q matches %d trips: %w", query, len(found), ErrAmbiguous)
	}
}

// CreateTrip asks for a title and appends a new empty trip. A canceled or
// empty answer leaves the store unchanged and returns ErrCanceled.
func (s *Store) CreateTrip(p Prompter) (Trip, error) {
	title, err := promptNonEmpty(p, "Trip name:", DefaultTripTitle)
	if err != nil {
		return Trip{}, err
	}
	t := Trip{ID: NewID("trip"), Title: title, Plans: []DailyPlan{}}
	s.trips = append(s.trips, t)
	if err := s.save(); err != nil {
		return Trip{}, err
	}
	Log.WithField("trip", t.ID).Info("trip created")
	return t.clone(), nil
}

// DeleteTrip removes the trip and everything it holds, after confirmation.
// There is no way back.
func (s *Store) DeleteTrip(id string, p Prompter) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("trip %q: %w", id, ErrNotFound)
	}
	if !p.Confirm(fmt.Sprintf("Delete trip %q?", s.trips[i].Title)) {
		return ErrCanceled
	}
	s.trips = slices.Delete(s.trips, i, i+1)
	Log.WithField("trip", id).Info("trip deleted")
	return s.save()
}

// Update applies fn to the trip with this id. fn works on a copy: if it
// fails the store is left unchanged, otherwise the change is saved.
func (s *Store) Update(id string, fn func(*Trip) error) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("trip %q: %w", id, ErrNotFound)
	}
	t := s.trips[i].clone()
	if err := fn(&t); err != nil {
		return err
	}
	s.trips[i] = t
	return s.save()
}

// UpdateDay is Update narrowed to one day of the trip.
func (s *Store) UpdateDay(id string, day int, fn func(*DailyPlan) error) error {
	return s.Update(id, func(t *Trip) error {
		p, err := t.Day(day)
		if err != nil {
			return err
		}
		return fn(p)
	})
}

// SetRate overwrites a currency rate and saves. Rates that cannot be stored,
// like Inf or NaN, are refused. The rates are left unchanged when saving fails.
func (s *Store) SetRate(c Currency, v float64) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("%w: rate %v is not a finite number", ErrInvalid, v)
	}
	rates := s.rates.Clone()
	if err := rates.Set(c, v); err != nil {
		return err
	}
	if err := s.storage.Save(Document{Trips: s.trips, Rates: rates}); err != nil {
		return err
	}
	s.rates = rates
	Log.WithFields(logrus.Fields{"currency": c, "rate": v}).Debug("rate updated")
	return nil
}

// SetHotelLink asks for the trip's hotel map link. A canceled or empty answer
// changes nothing.
func (s *Store) SetHotelLink(id string, p Prompter) error {
	t, err := s.Trip(id)
	if err != nil {
		return err
	}
	link, err := promptNonEmpty(p, "Hotel map link:", t.HotelLink)
	if err != nil {
		return err
	}
	return s.Update(id, func(t *Trip) error {
		t.HotelLink = link
		return nil
	})
}

// SetMapLink asks for the map link of an item. A canceled or empty answer
// changes nothing.
func (s *Store) SetMapLink(id string, day, item int, p Prompter) error {
	return s.UpdateDay(id, day, func(d *DailyPlan) error {
		it, err := d.Item(item)
		if err != nil {
			return err
		}
		link, err := promptNonEmpty(p, "Location map link:", it.MapLink)
		if err != nil {
			return err
		}
		it.MapLink = link
		return nil
	})
}

// Export writes the whole document as a single JSON object.
func (s *Store) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Document())
}

// Import replaces the whole document with the one read from r and saves it.
func (s *Store) Import(r io.Reader) error {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	doc.fill()
	s.trips, s.rates = doc.Trips, doc.Rates
	Log.WithField("trips", len(doc.Trips)).Info("document imported")
	return s.save()
}
