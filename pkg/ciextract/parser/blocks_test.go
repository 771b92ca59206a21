package parser

import (
	"testing"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
)

func TestFindBlock(t *testing.T) {
	g := sampleGrid()
	layout := DefaultLayout()

	tests := []struct {
		key   string
		found bool
		start int
		end   int
	}{
		{"PUMP01", true, 10, 14},
		{"PUMP02", true, 14, 17},
		{"Pump layout", true, 12, 14},
		{"pump01", false, 0, 0},
		{"PUMP03", false, 0, 0},
	}

	for _, tt := range tests {
		block, ok := FindBlock(g, layout, tt.key)
		if ok != tt.found {
			t.Errorf("FindBlock(%q) found = %v, expected %v", tt.key, ok, tt.found)
			continue
		}
		if ok && (block.Start != tt.start || block.End != tt.end) {
			t.Errorf("FindBlock(%q) = [%d, %d), expected [%d, %d)",
				tt.key, block.Start, block.End, tt.start, tt.end)
		}
	}
}

func TestFindBlockFirstOccurrence(t *testing.T) {
	g := buildGrid(8, map[[2]int]interface{}{
		{1, 3}: "FAN",
		{2, 3}: "Fan doc",
		{4, 3}: "OTHER",
		{5, 3}: " FAN ",
		{6, 3}: "Second fan doc",
	})

	block, ok := FindBlock(g, DefaultLayout(), "FAN")
	if !ok {
		t.Fatal("expected FAN to be found")
	}
	if block.Start != 1 || block.End != 3 {
		t.Errorf("block = [%d, %d), expected [1, 3)", block.Start, block.End)
	}
}

func TestFindBlockStopsAtEmptyKey(t *testing.T) {
	g := buildGrid(6, map[[2]int]interface{}{
		{0, 3}: "MOTOR",
		{1, 3}: "Motor doc",
		{2, 3}: "   ",
		{4, 3}: "Orphan doc",
	})

	block, ok := FindBlock(g, DefaultLayout(), "MOTOR")
	if !ok {
		t.Fatal("expected MOTOR to be found")
	}
	// Whitespace-only text is not a terminator; the empty row 3 is.
	if block.End != 3 {
		t.Errorf("block end = %d, expected 3", block.End)
	}
}

func TestFindBlockRunsToEnd(t *testing.T) {
	g := buildGrid(4, map[[2]int]interface{}{
		{1, 3}: "LAST",
		{2, 3}: "Doc a",
		{3, 3}: "Doc b",
	})

	block, ok := FindBlock(g, DefaultLayout(), "LAST")
	if !ok || block.End != 4 {
		t.Errorf("FindBlock = %+v %v, expected end 4", block, ok)
	}
	if block.Len() != 2 {
		t.Errorf("block.Len() = %d, expected 2", block.Len())
	}
}

func TestIsGroupTerminator(t *testing.T) {
	tests := []struct {
		cell     models.Cell
		expected bool
	}{
		{models.Cell{}, true},
		{models.TextCell("PUMP02"), true},
		{models.TextCell("  AREA-100  "), true},
		{models.TextCell("Pump datasheet"), false},
		{models.TextCell("PUMP02 rev b"), false},
		{models.TextCell("123"), false},
		{models.TextCell("   "), false},
		{models.NumberCell(42), false},
		{models.TextCell("ÉTUDE"), true},
	}

	for _, tt := range tests {
		if got := IsGroupTerminator(tt.cell); got != tt.expected {
			t.Errorf("IsGroupTerminator(%+v) = %v, expected %v", tt.cell, got, tt.expected)
		}
	}
}
