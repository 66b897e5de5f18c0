// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package version

// Version is set at build time with -ldflags "-X .../internal/version.Version=...".
var Version = "dev"
