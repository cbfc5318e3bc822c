package travel

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Keys of the two persisted blobs. They are the ones the browser version of
// the planner used in its local storage.
const (
	TripsKey = "my_travel_v4"
	RatesKey = "my_travel_rates"
)

// Document is the whole persisted state.
type Document struct {
	Trips []Trip `json:"trips"`
	Rates Rates  `json:"rates"`
}

// NewDocument returns the state of a first start: no trips and the default rates.
func NewDocument() Document {
	return Document{Trips: []Trip{}, Rates: DefaultRates()}
}

// fill restores the invariants a decoded document may miss: non nil lists and all the rates.
func (d *Document) fill() {
	if d.Trips == nil {
		d.Trips = []Trip{}
	}
	for i := range d.Trips {
		d.Trips[i] = d.Trips[i].clone()
	}
	if d.Rates == nil {
		d.Rates = DefaultRates()
	}
	d.Rates.complete()
}

// Storage loads and saves the whole document.
type Storage interface {
	Load() (Document, error)
	Save(Document) error
}

// KeyValue is a minimal durable key-value store.
type KeyValue interface {
	// Get returns the value of key, and false if it has never been set.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// KVStorage stores the document in a KeyValue, trips and rates under two
// separate keys.
type KVStorage struct {
	kv KeyValue
}

// NewKVStorage returns a Storage over kv.
func NewKVStorage(kv KeyValue) *KVStorage { return &KVStorage{kv: kv} }

// Load reads both keys. A missing key means defaults, a key that cannot be
// decoded is an ErrCorrupt error.
func (s *KVStorage) Load() (Document, error) {
	doc := NewDocument()

	trips, ok, err := s.kv.Get(TripsKey)
	if err != nil {
		return Document{}, fmt.Errorf("could not read %q: %w", TripsKey, err)
	}
	if ok {
		doc.Trips = nil
		if err := json.Unmarshal(trips, &doc.Trips); err != nil {
			return Document{}, fmt.Errorf("%w: key %q: %v", ErrCorrupt, TripsKey, err)
		}
	} else {
		Log.WithField("key", TripsKey).Debug("no trips saved yet")
	}

	rates, ok, err := s.kv.Get(RatesKey)
	if err != nil {
		return Document{}, fmt.Errorf("could not read %q: %w", RatesKey, err)
	}
	if ok {
		doc.Rates = nil
		if err := json.Unmarshal(rates, &doc.Rates); err != nil {
			return Document{}, fmt.Errorf("%w: key %q: %v", ErrCorrupt, RatesKey, err)
		}
	} else {
		Log.WithField("key", RatesKey).Debug("no rates saved yet, using defaults")
	}

	doc.fill()
	return doc, nil
}

// Save rewrites both keys.
func (s *KVStorage) Save(doc Document) error {
	if doc.Trips == nil {
		doc.Trips = []Trip{}
	}
	trips, err := json.Marshal(doc.Trips)
	if err != nil {
		return fmt.Errorf("failed to encode trips: %w", err)
	}
	rates, err := json.Marshal(doc.Rates)
	if err != nil {
		return fmt.Errorf("failed to encode rates: %w", err)
	}
	if err := s.kv.Set(TripsKey, trips); err != nil {
		return fmt.Errorf("could not write %q: %w", TripsKey, err)
	}
	if err := s.kv.Set(RatesKey, rates); err != nil {
		return fmt.Errorf("could not write %q: %w", RatesKey, err)
	}
	Log.WithFields(logrus.Fields{"trips": len(doc.Trips), "bytes": len(trips) + len(rates)}).Debug("document saved")
	return nil
}
