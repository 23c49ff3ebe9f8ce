package monitor

import (
	"sort"
)

// Op classifies a single property difference.
type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpChange  Op = "change"
	OpReorder Op = "reorder"
)

// Record is one property difference between two snapshots of a device.
type Record struct {
	Op  Op
	Key string
	Old Value // set for OpRemove and OpChange
	New Value // set for OpAdd, OpChange and OpReorder

	// For list-valued changes with a non-empty new list, the elements
	// that entered and left the set. A list emptied outright carries no
	// item breakdown and is reported as a plain before/after change.
	AddedItems   []string
	RemovedItems []string
}

// Diff computes the ordered differences between two property views.
// A nil old view means the device has no prior snapshot, so every
// property of cur is reported as added. Keys are visited in sorted
// order of the union of both views, making the output reproducible.
func Diff(old, cur View) []Record {
	var records []Record
	if old == nil {
		for _, key := range sortedKeys(cur) {
			records = append(records, Record{Op: OpAdd, Key: key, New: cur[key]})
		}
		return records
	}
	for _, key := range unionKeys(old, cur) {
		oldVal, hasOld := old[key]
		newVal, hasNew := cur[key]
		switch {
		case !hasNew:
			records = append(records, Record{Op: OpRemove, Key: key, Old: oldVal})
		case !hasOld:
			records = append(records, Record{Op: OpAdd, Key: key, New: newVal})
		case oldVal.Equal(newVal):
			// unchanged
		default:
			records = append(records, changed(key, oldVal, newVal))
		}
	}
	return records
}

func changed(key string, oldVal, newVal Value) Record {
	oldList, oldOK := oldVal.(List)
	newList, newOK := newVal.(List)
	if oldOK && newOK {
		if newList.SameElements(oldList) {
			return Record{Op: OpReorder, Key: key, New: newList}
		}
		if len(newList) > 0 {
			return Record{
				Op:           OpChange,
				Key:          key,
				Old:          oldVal,
				New:          newVal,
				AddedItems:   missingFrom(newList, oldList),
				RemovedItems: missingFrom(oldList, newList),
			}
		}
	}
	return Record{Op: OpChange, Key: key, Old: oldVal, New: newVal}
}

// missingFrom returns the elements of l absent from o's element set,
// deduplicated, in l's order.
func missingFrom(l, o List) []string {
	os := o.set()
	var out []string
	seen := make(map[string]struct{})
	for _, e := range l {
		if _, ok := os[e]; ok {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

func sortedKeys(v View) []string {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func unionKeys(a, b View) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for key := range a {
		set[key] = struct{}{}
	}
	for key := range b {
		set[key] = struct{}{}
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
