// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package output renders command results as a lipgloss table, JSON or YAML.
package output
