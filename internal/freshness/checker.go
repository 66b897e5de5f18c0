// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"

	"github.com/staranto/freshctl/internal/clock"
	"github.com/staranto/freshctl/internal/store"
)

// Observer is notified with the outcome of every presence and age check.
type Observer func(key string, status Status)

// Result is the outcome of an age check.
type Result struct {
	Key     string
	Policy  Policy
	Status  Status
	Expired bool
	Entry   Entry
	Age     time.Duration
}

// Checker answers presence and freshness questions about entries in Store.
type Checker struct {
	Store    store.Store
	Clock    clock.Clock
	Log      log.Interface
	Observer Observer
}

// NewChecker returns a Checker over s using the system clock and the global
// apex logger.
func NewChecker(s store.Store) *Checker {
	return &Checker{Store: s, Clock: clock.System, Log: log.Log}
}

func (c *Checker) logger() log.Interface {
	if c.Log == nil {
		return log.Log
	}
	return c.Log
}

func (c *Checker) report(key string, s Status) {
	if msg := s.Message(key); msg != "" {
		if s == StatusMalformed {
			c.logger().Warn(msg)
		} else {
			c.logger().Info(msg)
		}
	}
	if c.Observer != nil {
		c.Observer(key, s)
	}
}

// Now returns the current instant truncated to the minute, the precision
// entries are stamped with.
func (c *Checker) Now() time.Time {
	stamp := clock.CurrentDate(c.Clock, true)
	t, err := clock.Parse(stamp)
	if err != nil {
		c.logger().WithError(err).Warnf("unparseable clock stamp %q", stamp)
		return time.Now().Truncate(time.Minute)
	}
	return t
}

// Present reports whether key holds a value. Absence is logged, presence is
// silent.
func (c *Checker) Present(ctx context.Context, key string) (bool, error) {
	_, ok, err := c.Store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		c.report(key, StatusMissing)
		return false, nil
	}
	return true, nil
}

// Check reads the entry for key and judges it under p. Missing and malformed
// entries are reported as expired alongside ErrNotFound or ErrMalformedEntry.
func (c *Checker) Check(ctx context.Context, p Policy, key string) (Result, error) {
	res := Result{Key: key, Policy: p, Expired: true}

	if _, ok := policyNames[p]; !ok {
		return res, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
	}

	raw, ok, err := c.Store.Get(ctx, key)
	if err != nil {
		return res, err
	}
	if !ok {
		res.Status = StatusMissing
		c.report(key, res.Status)
		return res, fmt.Errorf("%s: %w", key, ErrNotFound)
	}

	entry, err := ParseEntry(raw)
	if err != nil {
		res.Status = StatusMalformed
		c.report(key, res.Status)
		return res, fmt.Errorf("%s: %w", key, err)
	}
	res.Entry = entry

	now := c.Now()
	res.Age = now.Sub(entry.Time)

	stale, err := p.stale(entry.Time, now)
	if err != nil {
		return res, err
	}
	res.Expired = stale
	res.Status = statusFor(p, stale)
	c.report(key, res.Status)

	return res, nil
}

// Expired is Check reduced to a boolean; any error counts as expired.
func (c *Checker) Expired(ctx context.Context, p Policy, key string) bool {
	res, err := c.Check(ctx, p, key)
	if err != nil {
		c.logger().WithError(err).Debugf("treating %s as expired", key)
	}
	return res.Expired
}

// Stamp stores payload under key with the current timestamp.
func (c *Checker) Stamp(ctx context.Context, key, payload string) error {
	value := FormatEntry(clock.CurrentDate(c.Clock, true), payload)
	if err := c.Store.Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to stamp %s: %w", key, err)
	}
	return nil
}

// Payload returns the payload of the entry held under key.
func (c *Checker) Payload(ctx context.Context, key string) (string, error) {
	raw, ok, err := c.Store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	entry, err := ParseEntry(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return entry.Payload, nil
}
