// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

//go:build js && wasm

// freshwasm exposes the entry checks and the location overlay to page
// scripts. Build with GOOS=js GOARCH=wasm and load with wasm_exec.js; the
// functions are installed on the global object under their page names.
package main

import (
	"context"
	"os"
	"syscall/js"

	"github.com/apex/log"

	"github.com/staranto/freshctl/internal/clock"
	"github.com/staranto/freshctl/internal/freshness"
	mylog "github.com/staranto/freshctl/internal/log"
	"github.com/staranto/freshctl/internal/overlay"
	"github.com/staranto/freshctl/internal/store"
)

func main() {
	log.SetHandler(mylog.NewPlainHandler(os.Stdout))
	log.SetLevel(log.InfoLevel)

	ls, err := store.NewLocalStorage()
	if err != nil {
		log.WithError(err).Error("freshwasm disabled")
		return
	}
	checker := freshness.NewChecker(ls)
	ctx := context.Background()

	global := js.Global()
	global.Set("checkLocalStorage", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 1 {
			return false
		}
		ok, err := checker.Present(ctx, args[0].String())
		if err != nil {
			log.WithError(err).Error("checkLocalStorage")
			return false
		}
		return ok
	}))
	global.Set("checkAge", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 2 {
			return true
		}
		p, err := freshness.ParsePolicy(args[0].String())
		if err != nil {
			log.WithError(err).Error("checkAge")
			return true
		}
		return checker.Expired(ctx, p, args[1].String())
	}))
	global.Set("getCurrentDate", js.FuncOf(func(_ js.Value, args []js.Value) any {
		withTime := len(args) > 0 && args[0].Truthy()
		return clock.CurrentDate(clock.System, withTime)
	}))
	global.Set("openLocationFrame", js.FuncOf(func(_ js.Value, _ []js.Value) any {
		if err := overlay.OpenLocationFrame(overlay.NewJSDocument()); err != nil {
			log.WithError(err).Error("openLocationFrame")
		}
		return nil
	}))

	// Keep the exported functions alive for the life of the page.
	select {}
}
