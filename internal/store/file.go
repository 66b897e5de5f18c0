// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/apex/log"
)

// File is a Store that keeps one file per key beneath Base. Filenames are the
// md5 of the clear-text key so arbitrary keys are safe on disk.
type File struct {
	Base    string
	Subdirs []string

	mu sync.Mutex
}

// Dir resolves the base cache directory.
// Precedence:
//  1. FRESHCTL_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/freshctl
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("FRESHCTL_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "freshctl"), true
	}
	return "", false
}

// Enabled returns true unless FRESHCTL_CACHE explicitly disables it ("0"/"false").
func Enabled() bool {
	enabled, _ := os.LookupEnv("FRESHCTL_CACHE")
	return enabled == "" || (enabled != "0" && enabled != "false")
}

// NewFile returns a File rooted at the resolved cache directory, creating it
// if needed. The returned File is nil when caching is disabled or no base can
// be resolved.
func NewFile(subdirs ...string) (*File, error) {
	if !Enabled() {
		return nil, nil
	}
	base, ok := Dir()
	if !ok {
		return nil, nil
	}
	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	return &File{Base: base, Subdirs: subdirs}, nil
}

// EntryPath returns the absolute path where the entry for clearKey lives and
// whether a file currently exists there.
func (f *File) EntryPath(clearKey string) (string, bool) {
	p := filepath.Join(append([]string{f.Base}, append(f.Subdirs, encodeKey(clearKey))...)...)
	if _, err := os.Stat(p); err == nil {
		return p, true
	}
	return p, false
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	if f == nil {
		return "", false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.EntryPath(key)
	if !ok {
		return "", false, nil
	}
	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cache entry %s: %w", key, err)
	}
	return string(b), true, nil
}

// Set writes value for key, creating directories as needed. A nil File
// discards writes.
func (f *File) Set(_ context.Context, key string, value string) error {
	if f == nil {
		return nil // treat as disabled.
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Join(append([]string{f.Base}, f.Subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	p := filepath.Join(dir, encodeKey(key))
	if err := os.WriteFile(p, []byte(value), os.FileMode(0o600)); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// Purge removes files older than the provided number of hours and returns
// how many were removed. If hours <= 0 it is a no-op.
func (f *File) Purge(hours int) (int, error) {
	if f == nil {
		return 0, nil
	}
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return 0, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	removed := 0
	maxAge := time.Duration(hours) * time.Hour
	if err := filepath.Walk(f.Base, func(path string, info os.FileInfo, err error) error {
		if err != nil || info == nil {
			return nil
		}
		if !info.IsDir() && time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				removed++
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	}); err != nil {
		return removed, fmt.Errorf("failed to purge cache: %w", err)
	}
	return removed, nil
}

// encodeKey hashes k with MD5 and returns the hex string.
func encodeKey(k string) string {
	h := md5.New()
	_, _ = h.Write([]byte(k))
	return hex.EncodeToString(h.Sum(nil))
}
