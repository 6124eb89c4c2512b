package normalize

import (
	"strings"

	"github.com/gnvclient/gnvclient/internal/engine"
	"github.com/gnvclient/gnvclient/internal/model"
)

// Normalize maps raw engine output into a VerificationResult for the given
// request.
//
// Correlation is by the echoed queried-name field, never by position: the
// engine is not guaranteed to return entries in submission order. A request
// name with no raw entry yields an empty candidate list, not an error.
// When the request asked for the best match only, the first candidate of
// each group wins; the engine's ranking is trusted and never re-derived.
func Normalize(raw *engine.RawOutput, req engine.Request) *model.VerificationResult {
	byName := indexByName(raw.Names)

	result := &model.VerificationResult{
		Names: make([]model.NameMatch, len(req.Names)),
	}

	for i, input := range req.Names {
		entry, ok := byName[correlationKey(input)]
		if !ok {
			result.Names[i] = model.NameMatch{
				Input:      input,
				MatchType:  model.MatchTypeNoMatch,
				Candidates: []model.MatchCandidate{},
			}
			continue
		}
		result.Names[i] = normalizeName(input, entry, req.WithAllMatches)
	}

	if req.WithStats {
		result.Stats = buildStats(result, raw.Metadata)
	}

	return result
}

// indexByName builds the correlation index from raw entries. When the engine
// returns duplicate entries for the same queried string (a name submitted
// twice), the first entry serves all occurrences.
func indexByName(names []engine.RawName) map[string]engine.RawName {
	byName := make(map[string]engine.RawName, len(names))
	for _, n := range names {
		key := correlationKey(n.Name)
		if _, ok := byName[key]; !ok {
			byName[key] = n
		}
	}
	return byName
}

// correlationKey normalizes a name string for matching request names against
// echoed output names. Only surrounding whitespace is stripped; the name
// itself must match exactly.
func correlationKey(name string) string {
	return strings.TrimSpace(name)
}

// normalizeName converts one raw match group into a NameMatch.
func normalizeName(input string, raw engine.RawName, allMatches bool) model.NameMatch {
	matches := raw.Matches()
	if !allMatches && len(matches) > 1 {
		matches = matches[:1]
	}

	candidates := make([]model.MatchCandidate, 0, len(matches))
	for _, m := range matches {
		candidates = append(candidates, normalizeCandidate(m))
	}

	matchType := model.MatchType(raw.MatchType)
	if matchType == "" {
		matchType = model.MatchTypeNoMatch
	}

	return model.NameMatch{
		Input:      input,
		MatchType:  matchType,
		Curation:   raw.Curation,
		Candidates: candidates,
	}
}

// normalizeCandidate converts one raw match record. Absent optional fields
// stay at their zero value; no sentinel defaults are invented.
func normalizeCandidate(raw engine.RawResult) model.MatchCandidate {
	return model.MatchCandidate{
		DataSourceID:           raw.DataSourceID,
		DataSourceTitleShort:   raw.DataSourceTitleShort,
		RecordID:               raw.RecordID,
		MatchedName:            raw.MatchedName,
		MatchedCanonicalSimple: raw.MatchedCanonicalSimple,
		MatchedCanonicalFull:   raw.MatchedCanonicalFull,
		CurrentName:            raw.CurrentName,
		CurrentCanonicalFull:   raw.CurrentCanonicalFull,
		TaxonomicStatus:        raw.TaxonomicStatus,
		IsSynonym:              raw.IsSynonym,
		Curation:               raw.Curation,
		Outlink:                raw.Outlink,
		EntryDate:              raw.EntryDate,
		SortScore:              raw.SortScore,
		EditDistance:           raw.EditDistance,
		StemEditDistance:       raw.StemEditDistance,
		MatchType:              model.MatchType(raw.MatchType),
		Classification:         parseClassification(raw.ClassificationPath, raw.ClassificationRanks, raw.ClassificationIDs),
	}
}

// parseClassification assembles the classification entries from the engine's
// three parallel pipe-separated strings. The path drives the length; ranks
// and IDs fill in where present. An empty path means no classification.
func parseClassification(path, ranks, ids string) []model.ClassificationRank {
	if path == "" {
		return nil
	}

	names := strings.Split(path, "|")
	rankList := splitOrNil(ranks)
	idList := splitOrNil(ids)

	classification := make([]model.ClassificationRank, len(names))
	for i, name := range names {
		entry := model.ClassificationRank{Name: name}
		if i < len(rankList) {
			entry.Rank = rankList[i]
		}
		if i < len(idList) {
			entry.ID = idList[i]
		}
		classification[i] = entry
	}
	return classification
}

func splitOrNil(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "|")
}

// buildStats derives aggregate statistics. Matched and per-source counts are
// always computed from the normalized candidate lists, which stay correct
// even when the engine's call was split into batches. The taxon summary
// fields are taken from engine metadata when present, because the client has
// no way to re-derive them.
func buildStats(result *model.VerificationResult, meta engine.RawMetadata) *model.Statistics {
	stats := &model.Statistics{
		NamesTotal:          len(result.Names),
		MainTaxon:           meta.MainTaxon,
		MainTaxonPercentage: meta.MainTaxonPercentage,
		Kingdom:             meta.Kingdom,
		KingdomPercentage:   meta.KingdomPercentage,
	}

	perSource := make(map[int]int)
	for _, n := range result.Names {
		if n.Matched() {
			stats.NamesMatched++
		}
		for _, c := range n.Candidates {
			perSource[c.DataSourceID]++
		}
	}
	stats.NamesUnmatched = stats.NamesTotal - stats.NamesMatched
	if len(perSource) > 0 {
		stats.PerSource = perSource
	}

	for _, k := range meta.Kingdoms {
		stats.Kingdoms = append(stats.Kingdoms, model.KingdomCount{
			Kingdom:    k.KingdomName,
			Count:      k.NamesNumber,
			Percentage: k.Percentage,
		})
	}

	return stats
}
