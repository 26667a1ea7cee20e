package types

import (
	"errors"
	"fmt"
	"time"
)

const timeStringFormat = "15:04"

// minutesPerDay верхняя граница для времени в минутах (24:00 не существует)
const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда арифметика со временем выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time out of range")
)

// TimeString represents a wall-clock time of day as a zero-padded "HH:MM" label.
// The zero value is the empty string.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" label.
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// NewTimeStringFromMinutes converts minutes since midnight into an "HH:MM" label.
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String returns the raw "HH:MM" label.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the value is a well-formed zero-padded "HH:MM" label.
func (t TimeString) Validate() error {
	if len(t) != len(timeStringFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	if _, err := time.Parse(timeStringFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the label m minutes later. Crossing midnight is an error.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	base, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(base + m)
}

// IsBefore reports whether t is strictly earlier than other.
// Zero-padded "HH:MM" labels order lexicographically.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
