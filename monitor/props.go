package monitor

import (
	"strings"
)

// ignoredKeys are properties that describe the event itself rather than
// device state, so they never land in a snapshot.
var ignoredKeys = map[string]struct{}{
	"ACTION": {},
	"SEQNUM": {},
}

// listKeys maps list-valued property keys to their element separator.
// Classification is static configuration, never inferred from the value.
var listKeys = map[string]string{
	"DEVLINKS":     " ",
	"TAGS":         ":",
	"CURRENT_TAGS": ":",
}

// Value is a single property value, either a Scalar or a List.
type Value interface {
	Equal(Value) bool
	String() string
	isValue()
}

type Scalar string

func (s Scalar) isValue() {}

func (s Scalar) Equal(other Value) bool {
	o, ok := other.(Scalar)
	return ok && s == o
}

func (s Scalar) String() string {
	return string(s)
}

// List is an ordered sequence of elements. Element membership is the
// primary equality signal, order the secondary one.
type List []string

func (l List) isValue() {}

// Equal compares as ordered sequences.
func (l List) Equal(other Value) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i := range l {
		if l[i] != o[i] {
			return false
		}
	}
	return true
}

// SameElements reports whether both lists hold the same set of elements,
// ignoring order and repetition.
func (l List) SameElements(o List) bool {
	ls, os := l.set(), o.set()
	if len(ls) != len(os) {
		return false
	}
	for e := range ls {
		if _, ok := os[e]; !ok {
			return false
		}
	}
	return true
}

func (l List) set() map[string]struct{} {
	s := make(map[string]struct{}, len(l))
	for _, e := range l {
		s[e] = struct{}{}
	}
	return s
}

func (l List) String() string {
	return "[" + strings.Join(l, ", ") + "]"
}

// View is a device property snapshot: property key to normalized value.
// A View never contains an ignored key.
type View map[string]Value

// NewView normalizes a raw event payload into a View. Keys in the static
// list-key table are split on their separator, everything else is stored
// as a Scalar. Empty or malformed raw values become empty lists/strings,
// never an error.
func NewView(props map[string]string) View {
	v := make(View, len(props))
	for key, raw := range props {
		if _, ok := ignoredKeys[key]; ok {
			continue
		}
		if sep, ok := listKeys[key]; ok {
			v[key] = splitList(raw, sep)
		} else {
			v[key] = Scalar(raw)
		}
	}
	return v
}

func splitList(raw, sep string) List {
	l := List{}
	for _, e := range strings.Split(raw, sep) {
		if e = strings.TrimSpace(e); e != "" {
			l = append(l, e)
		}
	}
	return l
}
