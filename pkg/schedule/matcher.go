package schedule

import "time"

// DocumentRecord is the engine's view of one synchronized ERP document.
// RecordedAt is the fallback timestamp used when both document and delivery
// dates are missing (the instant the row was synchronized).
type DocumentRecord struct {
	ID           int64      `json:"id"`
	CodiceDoc    string     `json:"codiceDoc"`
	NumeroDoc    string     `json:"numeroDoc"`
	ClientID     int64      `json:"clientId"`
	SiteID       *int64     `json:"siteId"`
	DataDoc      *time.Time `json:"dataDoc"`
	DataConsegna *time.Time `json:"dataConsegna"`
	RecordedAt   *time.Time `json:"recordedAt"`
}

// NormalizedDate resolves the document's date: the first non-nil of document
// date, delivery date and the fallback timestamp, truncated to midnight in
// local time. ok is false when no date field is set.
func NormalizedDate(d DocumentRecord) (day time.Time, ok bool) {
	var t *time.Time
	switch {
	case d.DataDoc != nil:
		t = d.DataDoc
	case d.DataConsegna != nil:
		t = d.DataConsegna
	case d.RecordedAt != nil:
		t = d.RecordedAt
	default:
		return time.Time{}, false
	}
	local := t.In(time.Local)
	y, m, dd := local.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.Local), true
}

// MatchDocuments suggests documents likely to belong to an activity on the
// given client, site and day: a document matches when its client and site
// equal the activity's exactly and its normalized date equals the previous
// working day of the activity's date. Missing inputs (no client, no site, no
// day) yield an empty result without error: an activity without a site gets
// no suggestions rather than a relaxed client-only match.
func MatchDocuments(clientID, siteID *int64, day *time.Time, docs []DocumentRecord) []DocumentRecord {
	if clientID == nil || siteID == nil || day == nil || day.IsZero() {
		return nil
	}

	target := PreviousWorkingDay(*day)

	var matched []DocumentRecord
	for _, doc := range docs {
		if doc.ClientID != *clientID {
			continue
		}
		if doc.SiteID == nil || *doc.SiteID != *siteID {
			continue
		}
		docDay, ok := NormalizedDate(doc)
		if !ok || !docDay.Equal(target) {
			continue
		}
		matched = append(matched, doc)
	}
	return matched
}
