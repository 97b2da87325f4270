package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ConfigurationItem is the set of nested-collection item types.
type ConfigurationItem interface {
	CameraLocation | MonitoringSchedule | AlertSettings
}

// ItemsToMap converts an ordered item list into the keyed-map wire form the
// backend requires. Keys are "{prefix}_{0..n-1}" in list order; an empty or
// nil list yields an empty map.
func ItemsToMap[T ConfigurationItem](items []T, prefix string) map[string]T {
	out := make(map[string]T, len(items))
	for i, item := range items {
		out[fmt.Sprintf("%s_%d", prefix, i)] = item
	}
	return out
}

// ItemsFromJSON converts a nested-collection wire value back into an ordered
// list. The backend sometimes returns an array and sometimes an object keyed
// by arbitrary strings, so both shapes are accepted; null or absent values
// yield an empty list. Keyed objects are ordered by an index-aware key sort
// ("camera_2" before "camera_10"), which makes decoding deterministic even
// when the backend's keys don't follow the {prefix}_{index} convention.
// Server-assigned ids are stripped because editing operates on id-less items.
func ItemsFromJSON[T ConfigurationItem](raw json.RawMessage) []T {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return []T{}
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return []T{}
		}
		for i := range items {
			clearItemID(&items[i])
		}
		return items
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return []T{}
	}

	keys := make([]string, 0, len(keyed))
	for key := range keyed {
		keys = append(keys, key)
	}
	sortItemKeys(keys)

	items := make([]T, 0, len(keys))
	for _, key := range keys {
		var item T
		if err := json.Unmarshal(keyed[key], &item); err != nil {
			continue
		}
		clearItemID(&item)
		items = append(items, item)
	}
	return items
}

func clearItemID[T ConfigurationItem](item *T) {
	switch v := any(item).(type) {
	case *CameraLocation:
		v.ID = 0
	case *MonitoringSchedule:
		v.ID = 0
	case *AlertSettings:
		v.ID = 0
	}
}

// sortItemKeys orders synthetic keys by numeric suffix when both keys share a
// prefix ("camera_2" < "camera_10"), falling back to plain string order.
func sortItemKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		pi, ni, oki := splitIndexSuffix(keys[i])
		pj, nj, okj := splitIndexSuffix(keys[j])
		if oki && okj && pi == pj {
			return ni < nj
		}
		return keys[i] < keys[j]
	})
}

func splitIndexSuffix(key string) (string, int, bool) {
	idx := strings.LastIndexByte(key, '_')
	if idx < 0 {
		return "", 0, false
	}
	n, err := strconv.Atoi(key[idx+1:])
	if err != nil {
		return "", 0, false
	}
	return key[:idx], n, true
}
