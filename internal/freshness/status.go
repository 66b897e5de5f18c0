// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package freshness

import "fmt"

// Status records which branch of a presence or age check was taken.
type Status int

const (
	StatusUnknown Status = iota
	StatusMissing
	StatusMalformed
	StatusFreshHourly
	StatusStaleHourly
	StatusFreshDaily
	StatusStaleDaily
	StatusFreshMonthly
	StatusStaleMonthly
)

var statusNames = map[Status]string{
	StatusUnknown:      "unknown",
	StatusMissing:      "missing",
	StatusMalformed:    "malformed",
	StatusFreshHourly:  "fresh-hourly",
	StatusStaleHourly:  "stale-hourly",
	StatusFreshDaily:   "fresh-daily",
	StatusStaleDaily:   "stale-daily",
	StatusFreshMonthly: "fresh-monthly",
	StatusStaleMonthly: "stale-monthly",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Expired reports whether the status means the caller must refresh.
func (s Status) Expired() bool {
	switch s {
	case StatusFreshHourly, StatusFreshDaily, StatusFreshMonthly:
		return false
	default:
		return true
	}
}

// Message is the diagnostic line logged for s, or "" when s is silent.
// Callers and scripts match on these strings, so they must not change.
func (s Status) Message(key string) string {
	switch s {
	case StatusMissing:
		return fmt.Sprintf("No %s data found", key)
	case StatusMalformed:
		return fmt.Sprintf("Malformed %s data", key)
	case StatusFreshHourly:
		return fmt.Sprintf("Data is less than one hour old %s", key)
	case StatusStaleHourly:
		return fmt.Sprintf("Data more than one hour old -- time check %s", key)
	case StatusStaleDaily:
		return fmt.Sprintf("Data more than one day old - date check %s", key)
	case StatusStaleMonthly:
		return fmt.Sprintf("Data more than one month old - date check %s", key)
	default:
		return ""
	}
}

func statusFor(p Policy, stale bool) Status {
	switch p {
	case Hourly:
		if stale {
			return StatusStaleHourly
		}
		return StatusFreshHourly
	case Daily:
		if stale {
			return StatusStaleDaily
		}
		return StatusFreshDaily
	case Monthly:
		if stale {
			return StatusStaleMonthly
		}
		return StatusFreshMonthly
	}
	return StatusUnknown
}
