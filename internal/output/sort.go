// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// SortDataset orders rows by a comma-separated list of keys. A leading "-"
// sorts that key descending. Values are compared as case-insensitive
// strings; rows missing a key sort first.
func SortDataset(rows []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	type sortKey struct {
		name string
		desc bool
	}
	var keys []sortKey
	for _, k := range strings.Split(spec, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		sk := sortKey{name: k}
		if strings.HasPrefix(k, "-") {
			sk = sortKey{name: k[1:], desc: true}
		}
		keys = append(keys, sk)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for _, k := range keys {
			a := strings.ToLower(InterfaceToString(rows[i][k.name]))
			b := strings.ToLower(InterfaceToString(rows[j][k.name]))
			if a == b {
				continue
			}
			if k.desc {
				return a > b
			}
			return a < b
		}
		return false
	})
}
