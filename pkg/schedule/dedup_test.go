package schedule

import (
	"reflect"
	"testing"
)

func TestDedupeResources(t *testing.T) {
	in := []BusyResource{
		{ResourceID: 1, ActivityID: 10},
		{ResourceID: 2, ActivityID: 10},
		{ResourceID: 1, ActivityID: 11},
		{ResourceID: 3, ActivityID: 12},
		{ResourceID: 2, ActivityID: 12},
	}

	out := DedupeResources(in)

	if len(out) != 3 {
		t.Fatalf("expected 3 unique resources, got %d", len(out))
	}
	// First occurrence wins
	if out[0].ResourceID != 1 || out[0].ActivityID != 10 {
		t.Errorf("out[0] = %+v, expected resource 1 from activity 10", out[0])
	}
	if out[1].ResourceID != 2 || out[1].ActivityID != 10 {
		t.Errorf("out[1] = %+v, expected resource 2 from activity 10", out[1])
	}
	if out[2].ResourceID != 3 {
		t.Errorf("out[2] = %+v, expected resource 3", out[2])
	}
}

func TestDedupeResourcesEmptyInput(t *testing.T) {
	out := DedupeResources(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestOrderDrivers(t *testing.T) {
	tests := []struct {
		name     string
		ids      []int64
		order    []int64
		hidden   []int64
		expected []int64
	}{
		{"nil order keeps input order", []int64{3, 1, 2}, nil, nil, []int64{3, 1, 2}},
		{"explicit order applied", []int64{3, 1, 2}, []int64{1, 2, 3}, nil, []int64{1, 2, 3}},
		{"unknown ids pushed to end in input order", []int64{5, 1, 4, 2}, []int64{2, 1}, nil, []int64{2, 1, 5, 4}},
		{"hidden removed before ordering", []int64{3, 1, 2}, []int64{1, 2, 3}, []int64{2}, []int64{1, 3}},
		{"order entries absent from input ignored", []int64{2}, []int64{9, 2, 7}, nil, []int64{2}},
		{"empty input", nil, []int64{1, 2}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrderDrivers(tt.ids, tt.order, tt.hidden)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("OrderDrivers(%v, %v, %v) = %v, expected %v",
					tt.ids, tt.order, tt.hidden, got, tt.expected)
			}
		})
	}
}
