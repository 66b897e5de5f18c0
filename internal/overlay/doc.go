// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package overlay opens the location-selection lightbox: an iframe injected
// into a hidden container that is then made visible.
package overlay
