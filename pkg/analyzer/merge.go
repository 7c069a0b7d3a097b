package analyzer

// originRank fixes dedup precedence: interface/type-alias declaration over
// destructuring-pattern inference over markup-attribute inference.
var originRank = map[Origin]int{
	OriginInterface:   3,
	OriginTypeAlias:   3,
	OriginDestructure: 2,
	OriginMarkup:      1,
}

// dedupeProps collapses property candidates sharing a name. The kept record
// is the highest-precedence candidate in full; lower-precedence duplicates
// neither upgrade nor downgrade it. Output preserves first-seen name order
// so results are deterministic.
func dedupeProps(cands []propertyCandidate) []propertyCandidate {
	order := make([]string, 0, len(cands))
	kept := make(map[string]propertyCandidate, len(cands))

	for _, c := range cands {
		prev, seen := kept[c.Name]
		if !seen {
			order = append(order, c.Name)
			kept[c.Name] = c
			continue
		}
		if originRank[c.Origin] > originRank[prev.Origin] {
			kept[c.Name] = c
		}
	}

	out := make([]propertyCandidate, 0, len(order))
	for _, name := range order {
		out = append(out, kept[name])
	}
	return out
}

// dedupeEvents collapses event candidates sharing a name with the same
// precedence rules as properties.
func dedupeEvents(cands []eventCandidate) []eventCandidate {
	order := make([]string, 0, len(cands))
	kept := make(map[string]eventCandidate, len(cands))

	for _, c := range cands {
		prev, seen := kept[c.Name]
		if !seen {
			order = append(order, c.Name)
			kept[c.Name] = c
			continue
		}
		if originRank[c.Origin] > originRank[prev.Origin] {
			kept[c.Name] = c
		}
	}

	out := make([]eventCandidate, 0, len(order))
	for _, name := range order {
		out = append(out, kept[name])
	}
	return out
}
