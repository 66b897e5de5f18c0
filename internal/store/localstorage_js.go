// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build js && wasm

package store

import (
	"context"
	"errors"
	"syscall/js"
)

// LocalStorage is a Store over the browser's window.localStorage.
type LocalStorage struct {
	v js.Value
}

// NewLocalStorage binds to window.localStorage.
func NewLocalStorage() (*LocalStorage, error) {
	v := js.Global().Get("localStorage")
	if v.IsUndefined() || v.IsNull() {
		return nil, errors.New("localStorage is not available")
	}
	return &LocalStorage{v: v}, nil
}

func (l *LocalStorage) Get(_ context.Context, key string) (string, bool, error) {
	v := l.v.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (l *LocalStorage) Set(_ context.Context, key string, value string) (err error) {
	// setItem throws QuotaExceededError when storage is full.
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = jsErr
				return
			}
			panic(r)
		}
	}()
	l.v.Call("setItem", key, value)
	return nil
}
