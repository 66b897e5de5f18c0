// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package freshness reads timestamped cache entries from a store and decides
// whether they are stale under an hourly, daily or monthly policy.
package freshness
