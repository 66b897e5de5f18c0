// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Policy is the cadence at which a cached value must be refreshed.
type Policy int

const (
	Hourly Policy = iota + 1
	Daily
	Monthly
)

// MaxHourlyAge is the oldest an entry may be and still be fresh under Hourly.
const MaxHourlyAge = 60 * time.Minute

var ErrUnknownPolicy = errors.New("unknown freshness policy")

var policyNames = map[Policy]string{
	Hourly:  "hourly",
	Daily:   "daily",
	Monthly: "monthly",
}

// Policies lists every policy in cadence order.
var Policies = []Policy{Hourly, Daily, Monthly}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps "hourly", "daily" or "monthly" (any case) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for p, name := range policyNames {
		if name == want {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// stale compares two minute-precision instants in the same location.
func (p Policy) stale(stored, now time.Time) (bool, error) {
	switch p {
	case Hourly:
		d := now.Sub(stored)
		if d < 0 {
			d = -d
		}
		return d > MaxHourlyAge, nil
	case Daily:
		sy, sm, sd := stored.Date()
		ny, nm, nd := now.Date()
		return sy != ny || sm != nm || sd != nd, nil
	case Monthly:
		return stored.Year() != now.Year() || stored.Month() != now.Month(), nil
	default:
		return false, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
	}
}
