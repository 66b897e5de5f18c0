// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"strings"
)

// Store is a string key-value store. Get reports ok=false when no value is
// held for key; err is reserved for I/O failures.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
}

// Kind names a Store implementation selectable from config or flags.
type Kind string

const (
	KindFile   Kind = "file"
	KindMemory Kind = "memory"
	KindS3     Kind = "s3"
)

// Kinds lists the selectable store kinds.
var Kinds = []Kind{KindFile, KindMemory, KindS3}

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown store %q, must be one of %v", s, Kinds)
}
