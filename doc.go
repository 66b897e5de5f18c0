// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// freshctl is the main package for the freshctl command line tool. It wires
// the CLI over the timestamped cache entry stores and serves as the entry
// point.
package main
