package travel

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/etnz/travel/date"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from a list of canned replies.
type scriptedPrompter struct {
	answers  []string // "" with canceled=true means the user canceled
	canceled bool
	confirm  bool
	asked    []string
}

func (p *scriptedPrompter) PromptText(message, def string) (string, bool) {
	p.asked = append(p.asked, message)
	if p.canceled {
		return "", false
	}
	if len(p.answers) == 0 {
		return def, true
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, true
}

func (p *scriptedPrompter) Confirm(message string) bool {
	p.asked = append(p.asked, message)
	return p.confirm
}

// countingStorage counts the saves made to an in-memory storage.
type countingStorage struct {
	Storage
	saves int
	fail  error
}

func (s *countingStorage) Save(doc Document) error {
	if s.fail != nil {
		return s.fail
	}
	s.saves++
	return s.Storage.Save(doc)
}

func newTestStore(t *testing.T) (*Store, *countingStorage) {
	t.Helper()
	storage := &countingStorage{Storage: NewKVStorage(new(MemoryKV))}
	s, err := Open(storage)
	require.NoError(t, err)
	return s, storage
}

func TestStore_CreateTrip(t *testing.T) {
	s, storage := newTestStore(t)

	trip, err := s.CreateTrip(&scriptedPrompter{answers: []string{"Taipei"}})
	require.NoError(t, err)
	assert.Equal(t, "Taipei", trip.Title)
	assert.Empty(t, trip.Plans)
	assert.Equal(t, 1, storage.saves)

	// accepting the proposed default
	p := &scriptedPrompter{}
	trip2, err := s.CreateTrip(p)
	require.NoError(t, err)
	assert.Equal(t, DefaultTripTitle, trip2.Title)
	assert.Equal(t, []string{"Trip name:"}, p.asked)
	assert.NotEqual(t, trip.ID, trip2.ID)

	got := s.Trips()
	require.Len(t, got, 2)
	assert.Equal(t, trip.ID, got[0].ID)
}

func TestStore_CreateTripCanceled(t *testing.T) {
	s, storage := newTestStore(t)

	_, err := s.CreateTrip(&scriptedPrompter{canceled: true})
	assert.ErrorIs(t, err, ErrCanceled)
	_, err = s.CreateTrip(&scriptedPrompter{answers: []string{""}})
	assert.ErrorIs(t, err, ErrCanceled)

	assert.Empty(t, s.Trips())
	assert.Zero(t, storage.saves)
}

func TestStore_DeleteTrip(t *testing.T) {
	s, storage := newTestStore(t)
	a, err := s.CreateTrip(&scriptedPrompter{answers: []string{"A"}})
	require.NoError(t, err)
	b, err := s.CreateTrip(&scriptedPrompter{answers: []string{"B"}})
	require.NoError(t, err)
	saves := storage.saves

	refuse := &scriptedPrompter{confirm: false}
	assert.ErrorIs(t, s.DeleteTrip(a.ID, refuse), ErrCanceled)
	assert.Equal(t, []string{`Delete trip "A"?`}, refuse.asked)
	assert.Len(t, s.Trips(), 2)
	assert.Equal(t, saves, storage.saves)

	require.NoError(t, s.DeleteTrip(a.ID, &scriptedPrompter{confirm: true}))
	trips := s.Trips()
	require.Len(t, trips, 1)
	assert.Equal(t, b.ID, trips[0].ID)

	assert.ErrorIs(t, s.DeleteTrip(a.ID, &scriptedPrompter{confirm: true}), ErrNotFound)
}

func TestStore_Update(t *testing.T) {
	s, storage := newTestStore(t)
	trip, err := s.CreateTrip(&scriptedPrompter{answers: []string{"Seoul"}})
	require.NoError(t, err)

	require.NoError(t, s.Update(trip.ID, func(t *Trip) error {
		t.SelectDates(date.NewRange(date.New(2024, 5, 1), date.New(2024, 5, 2)))
		return nil
	}))
	require.NoError(t, s.UpdateDay(trip.ID, 1, func(d *DailyPlan) error {
		d.AddItem(span("x", "11:00", "10:00"))
		d.Memo = "pack umbrella"
		d.Commit()
		return nil
	}))

	got, err := s.Trip(trip.ID)
	require.NoError(t, err)
	require.Len(t, got.Plans, 2)
	assert.Equal(t, "pack umbrella", got.Plans[1].Memo)
	assert.Equal(t, "10:00", got.Plans[1].Items[0].Start)

	// a failing update leaves everything as it was
	saves := storage.saves
	boom := errors.New("boom")
	err = s.UpdateDay(trip.ID, 0, func(d *DailyPlan) error {
		d.Memo = "half done"
		d.AddItem(NewScheduleItem("y"))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	got, err = s.Trip(trip.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Plans[0].Memo)
	assert.Empty(t, got.Plans[0].Items)
	assert.Equal(t, saves, storage.saves)

	assert.ErrorIs(t, s.UpdateDay(trip.ID, 9, func(*DailyPlan) error { return nil }), ErrIndex)
	assert.ErrorIs(t, s.Update("nope", func(*Trip) error { return nil }), ErrNotFound)
}

func TestStore_CopiesAreIndependent(t *testing.T) {
	s, _ := newTestStore(t)
	trip, err := s.CreateTrip(&scriptedPrompter{answers: []string{"Kyoto"}})
	require.NoError(t, err)
	require.NoError(t, s.Update(trip.ID, func(t *Trip) error {
		t.SelectDates(date.NewRange(date.New(2024, 5, 1), date.New(2024, 5, 1)))
		return nil
	}))

	got, _ := s.Trip(trip.ID)
	got.Plans[0].Memo = "changed outside"
	rates := s.Rates()
	rates[JPY] = 99

	again, _ := s.Trip(trip.ID)
	assert.Empty(t, again.Plans[0].Memo)
	assert.Equal(t, 0.21, s.Rates()[JPY])
}

func TestStore_Find(t *testing.T) {
	s, _ := newTestStore(t)
	for _, title := range []string{"Taipei spring", "Tainan", "Osaka"} {
		_, err := s.CreateTrip(&scriptedPrompter{answers: []string{title}})
		require.NoError(t, err)
	}
	osaka := s.Trips()[2]

	got, err := s.Find("osa")
	require.NoError(t, err)
	assert.Equal(t, osaka.ID, got.ID)

	got, err = s.Find(osaka.ID)
	require.NoError(t, err)
	assert.Equal(t, "Osaka", got.Title)

	got, err = s.Find("Tainan")
	require.NoError(t, err)
	assert.Equal(t, "Tainan", got.Title)

	_, err = s.Find("tai")
	assert.ErrorIs(t, err, ErrAmbiguous)
	_, err = s.Find("Tokyo")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Links(t *testing.T) {
	s, storage := newTestStore(t)
	trip, err := s.CreateTrip(&scriptedPrompter{answers: []string{"Busan"}})
	require.NoError(t, err)

	require.NoError(t, s.SetHotelLink(trip.ID, &scriptedPrompter{answers: []string{"https://maps.example/hotel"}}))
	got, _ := s.Trip(trip.ID)
	assert.Equal(t, "https://maps.example/hotel", got.HotelLink)

	saves := storage.saves
	assert.ErrorIs(t, s.SetHotelLink(trip.ID, &scriptedPrompter{canceled: true}), ErrCanceled)
	assert.ErrorIs(t, s.SetHotelLink(trip.ID, &scriptedPrompter{answers: []string{""}}), ErrCanceled)
	got, _ = s.Trip(trip.ID)
	assert.Equal(t, "https://maps.example/hotel", got.HotelLink)
	assert.Equal(t, saves, storage.saves)

	require.NoError(t, s.Update(trip.ID, func(t *Trip) error {
		t.SelectDates(date.NewRange(date.New(2024, 5, 1), date.New(2024, 5, 1)))
		t.Plans[0].AddItem(NewScheduleItem("i"))
		return nil
	}))
	require.NoError(t, s.SetMapLink(trip.ID, 0, 0, &scriptedPrompter{answers: []string{"https://maps.example/beach"}}))
	assert.ErrorIs(t, s.SetMapLink(trip.ID, 0, 0, &scriptedPrompter{canceled: true}), ErrCanceled)
	assert.ErrorIs(t, s.SetMapLink(trip.ID, 0, 3, &scriptedPrompter{}), ErrIndex)
	got, _ = s.Trip(trip.ID)
	assert.Equal(t, "https://maps.example/beach", got.Plans[0].Items[0].MapLink)
}

func TestStore_SetRate(t *testing.T) {
	s, storage := newTestStore(t)
	require.NoError(t, s.SetRate(EUR, 35))
	assert.Equal(t, 35.0, s.Rates()[EUR])
	assert.Equal(t, 1, storage.saves)

	assert.ErrorIs(t, s.SetRate(TWD, 2), ErrBaseRate)
	assert.Equal(t, 1, storage.saves)
}

func TestStore_SetRateNonFinite(t *testing.T) {
	s, storage := newTestStore(t)
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.ErrorIs(t, s.SetRate(JPY, v), ErrInvalid)
	}
	assert.Equal(t, 0.21, s.Rates()[JPY])
	assert.Zero(t, storage.saves)
}

func TestStore_SetRateSaveFailure(t *testing.T) {
	s, storage := newTestStore(t)
	storage.fail = errors.New("disk full")
	assert.Error(t, s.SetRate(EUR, 40))
	assert.Equal(t, 34.5, s.Rates()[EUR])

	storage.fail = nil
	require.NoError(t, s.SetRate(KRW, 0.03))
	reopened, err := Open(storage.Storage)
	require.NoError(t, err)
	assert.Equal(t, 34.5, reopened.Rates()[EUR])
	assert.Equal(t, 0.03, reopened.Rates()[KRW])
}

func TestStore_SaveFailureIsReported(t *testing.T) {
	s, storage := newTestStore(t)
	storage.fail = errors.New("disk full")
	_, err := s.CreateTrip(&scriptedPrompter{answers: []string{"Nara"}})
	assert.ErrorContains(t, err, "disk full")
}

func TestStore_ExportImport(t *testing.T) {
	s, _ := newTestStore(t)
	trip, err := s.CreateTrip(&scriptedPrompter{answers: []string{"Jeju"}})
	require.NoError(t, err)
	require.NoError(t, s.Update(trip.ID, func(t *Trip) error {
		t.SelectDates(date.NewRange(date.New(2024, 6, 10), date.New(2024, 6, 11)))
		t.Plans[0].AddItem(NewScheduleItem("i"))
		t.Plans[1].AddExpense(Expense{ID: "e", Category: "Taxi", Amount: "12000", Currency: KRW})
		return nil
	}))
	require.NoError(t, s.SetRate(KRW, 0.024))

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))

	other, storage := newTestStore(t)
	require.NoError(t, other.Import(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, s.Document(), other.Document())
	assert.Equal(t, 1, storage.saves)

	reopened, err := Open(storage)
	require.NoError(t, err)
	assert.Equal(t, s.Document(), reopened.Document())

	assert.ErrorIs(t, other.Import(bytes.NewReader([]byte("{not json"))), ErrCorrupt)
	assert.Equal(t, s.Document(), other.Document())
}

func TestOpenLink(t *testing.T) {
	var opened []string
	o := openerFunc(func(url string) error {
		opened = append(opened, url)
		return nil
	})
	assert.ErrorIs(t, OpenLink(o, ""), ErrNoLink)
	require.NoError(t, OpenLink(o, "not even a url"))
	assert.Equal(t, []string{"not even a url"}, opened)
}

type openerFunc func(string) error

func (f openerFunc) Open(url string) error { return f(url) }
