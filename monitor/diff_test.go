package monitor_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocek/udevmonitor-fancy/monitor"
)

func TestDiffNoPriorSnapshot(t *testing.T) {
	cur := monitor.View{
		"NAME":     monitor.Scalar("eth0"),
		"DEVLINKS": monitor.List{"/dev/a"},
	}

	records := monitor.Diff(nil, cur)

	require.Len(t, records, 2)
	assert.Equal(t, monitor.Record{Op: monitor.OpAdd, Key: "DEVLINKS", New: monitor.List{"/dev/a"}}, records[0])
	assert.Equal(t, monitor.Record{Op: monitor.OpAdd, Key: "NAME", New: monitor.Scalar("eth0")}, records[1])
}

func TestDiffIdenticalViews(t *testing.T) {
	v := monitor.View{
		"NAME":     monitor.Scalar("eth0"),
		"DEVLINKS": monitor.List{"/dev/a", "/dev/b"},
	}
	assert.Empty(t, monitor.Diff(v, v))
}

func TestDiffAddedAndRemovedKeys(t *testing.T) {
	old := monitor.View{"GONE": monitor.Scalar("1"), "KEPT": monitor.Scalar("x")}
	cur := monitor.View{"KEPT": monitor.Scalar("x"), "FRESH": monitor.Scalar("2")}

	records := monitor.Diff(old, cur)

	require.Len(t, records, 2)
	assert.Equal(t, monitor.Record{Op: monitor.OpAdd, Key: "FRESH", New: monitor.Scalar("2")}, records[0])
	assert.Equal(t, monitor.Record{Op: monitor.OpRemove, Key: "GONE", Old: monitor.Scalar("1")}, records[1])
}

func TestDiffScalarChange(t *testing.T) {
	old := monitor.View{"NAME": monitor.Scalar("eth0")}
	cur := monitor.View{"NAME": monitor.Scalar("eth1")}

	records := monitor.Diff(old, cur)

	require.Len(t, records, 1)
	assert.Equal(t, monitor.Record{
		Op:  monitor.OpChange,
		Key: "NAME",
		Old: monitor.Scalar("eth0"),
		New: monitor.Scalar("eth1"),
	}, records[0])
}

func TestDiffReorder(t *testing.T) {
	old := monitor.View{"DEVLINKS": monitor.List{"a", "b", "c"}}
	cur := monitor.View{"DEVLINKS": monitor.List{"c", "a", "b"}}

	records := monitor.Diff(old, cur)

	require.Len(t, records, 1)
	assert.Equal(t, monitor.Record{
		Op:  monitor.OpReorder,
		Key: "DEVLINKS",
		New: monitor.List{"c", "a", "b"},
	}, records[0])
}

func TestDiffListSetChange(t *testing.T) {
	old := monitor.View{"DEVLINKS": monitor.List{"x", "y"}}
	cur := monitor.View{"DEVLINKS": monitor.List{"y", "z"}}

	records := monitor.Diff(old, cur)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, monitor.OpChange, rec.Op)
	assert.Equal(t, []string{"z"}, rec.AddedItems)
	assert.Equal(t, []string{"x"}, rec.RemovedItems)
	assert.Equal(t, monitor.List{"x", "y"}, rec.Old)
	assert.Equal(t, monitor.List{"y", "z"}, rec.New)
}

func TestDiffListEmptied(t *testing.T) {
	old := monitor.View{"DEVLINKS": monitor.List{"x", "y"}}
	cur := monitor.View{"DEVLINKS": monitor.List{}}

	records := monitor.Diff(old, cur)

	require.Len(t, records, 1)
	// An emptied list is a plain before/after change, not itemized.
	assert.Equal(t, monitor.Record{
		Op:  monitor.OpChange,
		Key: "DEVLINKS",
		Old: monitor.List{"x", "y"},
		New: monitor.List{},
	}, records[0])
}

func TestDiffListPopulatedFromEmpty(t *testing.T) {
	old := monitor.View{"DEVLINKS": monitor.List{}}
	cur := monitor.View{"DEVLINKS": monitor.List{"x"}}

	records := monitor.Diff(old, cur)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, monitor.OpChange, rec.Op)
	assert.Equal(t, []string{"x"}, rec.AddedItems)
	assert.Empty(t, rec.RemovedItems)
}

func TestDiffDeterministic(t *testing.T) {
	old := monitor.View{
		"A": monitor.Scalar("1"),
		"B": monitor.List{"x", "y"},
		"C": monitor.Scalar("same"),
	}
	cur := monitor.View{
		"B": monitor.List{"y", "x"},
		"C": monitor.Scalar("same"),
		"D": monitor.Scalar("2"),
	}

	first := monitor.Diff(old, cur)
	second := monitor.Diff(old, cur)
	assert.Equal(t, first, second)
}

func TestDiffSortedKeyOrder(t *testing.T) {
	old := monitor.View{
		"ZULU":  monitor.Scalar("1"),
		"ALPHA": monitor.Scalar("2"),
		"MIKE":  monitor.Scalar("3"),
	}
	cur := monitor.View{
		"ALPHA": monitor.Scalar("changed"),
		"BRAVO": monitor.Scalar("4"),
	}

	records := monitor.Diff(old, cur)

	keys := make([]string, len(records))
	for i, rec := range records {
		keys[i] = rec.Key
	}
	assert.True(t, sort.StringsAreSorted(keys), "keys out of order: %v", keys)
}

func TestDiffUnchangedKeysAbsent(t *testing.T) {
	old := monitor.View{
		"NAME":     monitor.Scalar("eth0"),
		"DEVLINKS": monitor.List{"/dev/a", "/dev/b"},
	}
	cur := monitor.View{
		"NAME":     monitor.Scalar("eth0"),
		"DEVLINKS": monitor.List{"/dev/b", "/dev/a"},
	}

	records := monitor.Diff(old, cur)

	require.Len(t, records, 1)
	assert.Equal(t, "DEVLINKS", records[0].Key)
}
