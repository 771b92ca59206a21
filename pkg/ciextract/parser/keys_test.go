package parser

import (
	"reflect"
	"testing"
)

func TestGroupingKeys(t *testing.T) {
	g := buildGrid(8, map[[2]int]interface{}{
		{0, 0}: 3, {0, 3}: "VALVES",
		{1, 0}: 1, {1, 3}: " PUMPS ",
		{2, 0}: 1, {2, 1}: "A", {2, 3}: "Pump doc",
		{3, 0}: "1", {3, 3}: "AS TEXT",
		{4, 0}: 2, {4, 3}: "PUMPS",
		{5, 0}: 4, {5, 2}: "x", {5, 3}: "SKIPPED",
		{6, 0}: 5,
		{7, 0}: 1.5, {7, 3}: "FANS",
	})

	got := GroupingKeys(g, DefaultLayout())
	want := []string{"", "FANS", "PUMPS", "VALVES"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GroupingKeys() = %q, expected %q", got, want)
	}
}

func TestGroupingKeysNilGrid(t *testing.T) {
	got := GroupingKeys(nil, DefaultLayout())
	if !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("GroupingKeys(nil) = %q, expected only the empty entry", got)
	}
}
