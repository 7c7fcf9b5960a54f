// Copyright (c) 2026, Sciviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "log/slog"

// joinUpdate pairs a surviving mark with the index of its datum in
// the new dataset.
type joinUpdate struct {
	Mark  *Mark
	Index int
}

// joinSets is the result of reconciling live marks against new data:
// indices of new data with no existing mark (enter), surviving marks
// with their new data index (update), and marks whose key left the
// dataset (exit).
type joinSets struct {
	enter  []int
	update []joinUpdate
	exit   []*Mark
}

// reconcile matches the live marks of one class against the keys of
// a new dataset. Matching is by key only, never by position, so
// reordering or partially replacing the data assigns animations to
// the right physical marks. Duplicate keys are reported and the last
// occurrence wins.
func reconcile(live []*Mark, keys []string) joinSets {
	nmap := make(map[string]int, len(keys))
	for i, k := range keys {
		if _, has := nmap[k]; has {
			slog.Error("lineplot: duplicate reconcile key", "key", k)
		}
		nmap[k] = i
	}
	var j joinSets
	matched := make(map[string]bool, len(live))
	for _, m := range live {
		i, ok := nmap[m.Key]
		if !ok || matched[m.Key] {
			j.exit = append(j.exit, m)
			continue
		}
		matched[m.Key] = true
		j.update = append(j.update, joinUpdate{Mark: m, Index: i})
	}
	for i, k := range keys {
		// only the last occurrence of a duplicate key may enter
		if !matched[k] && nmap[k] == i {
			j.enter = append(j.enter, i)
		}
	}
	return j
}
