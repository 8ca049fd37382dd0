package schedule

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func int64Ptr(v int64) *int64 { return &v }

func TestNormalizedDate(t *testing.T) {
	docDate := time.Date(2024, 5, 31, 14, 22, 0, 0, time.Local)
	delivery := day(2024, 5, 30)
	recorded := time.Date(2024, 5, 29, 23, 59, 0, 0, time.Local)

	tests := []struct {
		name     string
		doc      DocumentRecord
		expected time.Time
		ok       bool
	}{
		{"document date wins", DocumentRecord{DataDoc: &docDate, DataConsegna: &delivery}, day(2024, 5, 31), true},
		{"delivery date second", DocumentRecord{DataConsegna: &delivery, RecordedAt: &recorded}, day(2024, 5, 30), true},
		{"recorded timestamp last", DocumentRecord{RecordedAt: &recorded}, day(2024, 5, 29), true},
		{"no dates at all", DocumentRecord{}, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizedDate(tt.doc)
			if ok != tt.ok {
				t.Fatalf("ok = %v, expected %v", ok, tt.ok)
			}
			if ok && !got.Equal(tt.expected) {
				t.Errorf("NormalizedDate = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMatchDocuments(t *testing.T) {
	friday := day(2024, 5, 31)
	monday := day(2024, 6, 3)
	sameDay := day(2024, 6, 3)

	docY := DocumentRecord{ID: 1, CodiceDoc: "DDT", NumeroDoc: "1042", ClientID: 7, SiteID: int64Ptr(3), DataDoc: &friday}
	docZ := DocumentRecord{ID: 2, CodiceDoc: "DDT", NumeroDoc: "1043", ClientID: 7, SiteID: int64Ptr(3), DataDoc: &sameDay}
	wrongClient := DocumentRecord{ID: 3, ClientID: 8, SiteID: int64Ptr(3), DataDoc: &friday}
	wrongSite := DocumentRecord{ID: 4, ClientID: 7, SiteID: int64Ptr(4), DataDoc: &friday}
	noSite := DocumentRecord{ID: 5, ClientID: 7, DataDoc: &friday}

	docs := []DocumentRecord{docY, docZ, wrongClient, wrongSite, noSite}

	t.Run("exact triple match only", func(t *testing.T) {
		got := MatchDocuments(int64Ptr(7), int64Ptr(3), &monday, docs)
		if len(got) != 1 || got[0].ID != 1 {
			t.Fatalf("expected only document 1 (previous working day, exact client+site), got %+v", got)
		}
	})

	t.Run("same-day document excluded", func(t *testing.T) {
		got := MatchDocuments(int64Ptr(7), int64Ptr(3), &monday, []DocumentRecord{docZ})
		if len(got) != 0 {
			t.Fatalf("document dated the activity day itself must not match, got %+v", got)
		}
	})

	t.Run("missing site yields no suggestions", func(t *testing.T) {
		got := MatchDocuments(int64Ptr(7), nil, &monday, docs)
		if len(got) != 0 {
			t.Fatalf("expected empty result without site, got %+v", got)
		}
	})

	t.Run("missing client yields no suggestions", func(t *testing.T) {
		got := MatchDocuments(nil, int64Ptr(3), &monday, docs)
		if len(got) != 0 {
			t.Fatalf("expected empty result without client, got %+v", got)
		}
	})

	t.Run("missing day yields no suggestions", func(t *testing.T) {
		got := MatchDocuments(int64Ptr(7), int64Ptr(3), nil, docs)
		if len(got) != 0 {
			t.Fatalf("expected empty result without day, got %+v", got)
		}
	})

	t.Run("delivery date fallback matches", func(t *testing.T) {
		delivered := DocumentRecord{ID: 6, ClientID: 7, SiteID: int64Ptr(3), DataConsegna: &friday}
		got := MatchDocuments(int64Ptr(7), int64Ptr(3), &monday, []DocumentRecord{delivered})
		if len(got) != 1 || got[0].ID != 6 {
			t.Fatalf("expected delivery-dated document to match, got %+v", got)
		}
	})
}
