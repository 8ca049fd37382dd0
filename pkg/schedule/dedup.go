package schedule

// DedupeResources removes duplicate busy entries keyed by resource id,
// keeping the first occurrence in input order.
func DedupeResources(in []BusyResource) []BusyResource {
	// Never nil: the report lists encode as [] instead of null.
	out := make([]BusyResource, 0, len(in))
	seen := make(map[int64]bool, len(in))
	for _, r := range in {
		if seen[r.ResourceID] {
			continue
		}
		seen[r.ResourceID] = true
		out = append(out, r)
	}
	return out
}

// OrderDrivers applies an explicit driver ordering and hidden set to a list
// of driver ids. Hidden ids are removed; the rest are sorted by their
// position in order, with ids not present in order pushed to the end
// preserving their relative input order. A nil order keeps input order.
func OrderDrivers(ids []int64, order []int64, hidden []int64) []int64 {
	hiddenSet := make(map[int64]bool, len(hidden))
	for _, id := range hidden {
		hiddenSet[id] = true
	}

	var visible []int64
	for _, id := range ids {
		if !hiddenSet[id] {
			visible = append(visible, id)
		}
	}
	if len(order) == 0 {
		return visible
	}

	rank := make(map[int64]int, len(order))
	for i, id := range order {
		if _, ok := rank[id]; !ok {
			rank[id] = i
		}
	}

	var ordered, rest []int64
	added := make(map[int64]bool, len(order))
	for _, id := range order {
		if added[id] {
			continue
		}
		for _, v := range visible {
			if v == id {
				ordered = append(ordered, v)
				added[id] = true
				break
			}
		}
	}
	for _, v := range visible {
		if _, ok := rank[v]; !ok {
			rest = append(rest, v)
		}
	}
	return append(ordered, rest...)
}
