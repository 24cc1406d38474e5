package checks

import "sort"

// CoverageReport accounts for every source record of a dump.
type CoverageReport struct {
	// TotalSource is the number of records the source enumerates.
	TotalSource int `json:"total_source"`
	// Persisted is the number of source records with persisted rows.
	Persisted int `json:"persisted"`
	// Failed is the number of source records captured as failures.
	Failed int `json:"failed"`
	// Missing lists source records that are neither persisted nor failed.
	Missing []string `json:"missing"`
	// Orphaned lists persisted records no longer present in the source.
	Orphaned []string `json:"orphaned"`
}

// Complete reports whether every source record is accounted for and no
// orphans remain.
func (r *CoverageReport) Complete() bool {
	return len(r.Missing) == 0 && len(r.Orphaned) == 0
}

// Coverage reconciles the three record ID sets. Records both persisted
// and failed count as persisted; a later pass succeeded where an earlier
// one failed.
func Coverage(sourceIDs, storedIDs, failedIDs []string) *CoverageReport {
	stored := toSet(storedIDs)
	failed := toSet(failedIDs)

	report := &CoverageReport{TotalSource: len(sourceIDs)}
	inSource := make(map[string]bool, len(sourceIDs))
	for _, id := range sourceIDs {
		inSource[id] = true
		switch {
		case stored[id]:
			report.Persisted++
		case failed[id]:
			report.Failed++
		default:
			report.Missing = append(report.Missing, id)
		}
	}
	for _, id := range storedIDs {
		if !inSource[id] {
			report.Orphaned = append(report.Orphaned, id)
		}
	}
	sort.Strings(report.Missing)
	sort.Strings(report.Orphaned)
	return report
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
