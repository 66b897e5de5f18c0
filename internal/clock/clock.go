// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package clock formats the current date into the fixed layouts used as cache
// entry timestamps.
package clock

import "time"

const (
	// LayoutDateTime is YYYY-MM-DD-HH-mm.
	LayoutDateTime = "2006-01-02-15-04"
	// LayoutDate is YYYY-MM-DD.
	LayoutDate = "2006-01-02"
)

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// System is the wall clock in local time.
var System Clock = ClockFunc(time.Now)

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Format renders t with or without the time-of-day component.
func Format(t time.Time, withTime bool) string {
	if withTime {
		return t.Format(LayoutDateTime)
	}
	return t.Format(LayoutDate)
}

// CurrentDate renders c.Now(). A nil Clock means System.
func CurrentDate(c Clock, withTime bool) string {
	if c == nil {
		c = System
	}
	return Format(c.Now(), withTime)
}

// Parse reads a timestamp written by Format with withTime set, in local time.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDateTime, s, time.Local)
}
