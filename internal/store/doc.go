// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

// Package store provides the key-value stores that hold cache entries: an
// in-memory map, md5-named files under the user cache directory, an S3
// bucket, and window.localStorage when built for js/wasm.
package store
