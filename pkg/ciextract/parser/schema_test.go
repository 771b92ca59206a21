package parser

import (
	"reflect"
	"testing"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
)

func TestLocate(t *testing.T) {
	s := Locate(sampleGrid(), DefaultLayout())

	wantStages := []string{"Concept", "Basic", "Detail", "Construction"}
	if !reflect.DeepEqual(s.StageNames, wantStages) {
		t.Errorf("StageNames = %v, expected %v", s.StageNames, wantStages)
	}
	wantCols := []int{12, 13, 15, 18}
	if !reflect.DeepEqual(s.StageColumns, wantCols) {
		t.Errorf("StageColumns = %v, expected %v", s.StageColumns, wantCols)
	}
	wantDetails := []string{"Title", "Rev", "Date", "Owner", "", "Remarks"}
	if !reflect.DeepEqual(s.DetailHeaders, wantDetails) {
		t.Errorf("DetailHeaders = %v, expected %v", s.DetailHeaders, wantDetails)
	}
}

func TestLocateMissingHeader(t *testing.T) {
	tests := []struct {
		name string
		grid *models.Grid
	}{
		{"nil grid", nil},
		{"short grid", buildGrid(2, map[[2]int]interface{}{{0, 12}: "Concept"})},
	}

	for _, tt := range tests {
		s := Locate(tt.grid, DefaultLayout())
		if len(s.StageNames) != 0 || len(s.DetailHeaders) != 0 {
			t.Errorf("%s: expected empty schema, got %+v", tt.name, s)
		}
	}
}

func TestResolveStages(t *testing.T) {
	s := Locate(sampleGrid(), DefaultLayout())

	tests := []struct {
		selected  []string
		wantCols  []int
		wantNames []string
	}{
		{[]string{"Concept"}, []int{12}, []string{"Concept"}},
		{[]string{"Detail", "Concept"}, []int{15, 12}, []string{"Detail", "Concept"}},
		{[]string{"Unknown", "Basic"}, []int{13}, []string{"Basic"}},
		{[]string{"concept"}, nil, nil},
		{nil, nil, nil},
	}

	for _, tt := range tests {
		cols, names := s.ResolveStages(tt.selected)
		if !reflect.DeepEqual(cols, tt.wantCols) || !reflect.DeepEqual(names, tt.wantNames) {
			t.Errorf("ResolveStages(%v) = %v %v, expected %v %v",
				tt.selected, cols, names, tt.wantCols, tt.wantNames)
		}
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Layout)
		wantErr bool
	}{
		{"default", func(*Layout) {}, false},
		{"negative header", func(l *Layout) { l.HeaderRow = -1 }, true},
		{"negative key", func(l *Layout) { l.KeyColumn = -2 }, true},
		{"reversed stages", func(l *Layout) { l.StageColumns = ColumnRange{First: 18, Last: 12} }, true},
		{"negative detail", func(l *Layout) { l.DetailColumns.First = -1 }, true},
		{"negative flag", func(l *Layout) { l.DetailFlagColumns = []int{0, -1} }, true},
	}

	for _, tt := range tests {
		l := DefaultLayout()
		tt.mutate(&l)
		if err := l.Validate(); (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestSelectedStages(t *testing.T) {
	s := Locate(sampleGrid(), DefaultLayout())

	got := s.SelectedStages([]string{"Detail", "Unknown", "Concept"})
	want := []string{"Detail", "Concept"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SelectedStages() = %v, expected %v", got, want)
	}
}
