package travel

import "errors"

var (
	// ErrCanceled is returned when the user cancels a prompt or refuses a confirmation.
	ErrCanceled = errors.New("canceled")
	// ErrNotFound is returned when a trip cannot be found.
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous is returned when a trip query matches more than one trip.
	ErrAmbiguous = errors.New("ambiguous")
	// ErrIndex is returned when a day, item or expense index is out of range.
	ErrIndex = errors.New("index out of range")
	// ErrBaseRate is returned on an attempt to change the base currency rate.
	ErrBaseRate = errors.New("the base currency rate is fixed")
	// ErrCorrupt is returned when a persisted blob cannot be decoded.
	ErrCorrupt = errors.New("corrupt document")
	// ErrCurrency is returned for an unsupported currency code.
	ErrCurrency = errors.New("unsupported currency")
	// ErrCategory is returned for an unknown note category.
	ErrCategory = errors.New("unknown category")
	// ErrInvalid is returned when a typed value, like a time, is malformed.
	ErrInvalid = errors.New("invalid value")
	// ErrNoLink is returned when opening a link that was never set.
	ErrNoLink = errors.New("no link")
)
