package main

import (
	"sort"
	"time"
)

// groupDuplicates fingerprints every record and groups the ones sharing a
// digest, preserving discovery order within each group. Only groups with two
// or more members are returned, ordered by when their first member was seen.
// Files that become unreadable mid-scan are reported in skipped and do not
// abort the pass.
func groupDuplicates(records []FileRecord) ([]DuplicateGroup, []SkippedFile) {
	byDigest := make(map[string][]FileRecord)
	var order []string
	var skipped []SkippedFile

	for _, rec := range records {
		digest, err := fingerprintFile(rec.Path)
		if err != nil {
			skipped = append(skipped, SkippedFile{Path: rec.Path, Err: err})
			continue
		}
		if _, seen := byDigest[digest]; !seen {
			order = append(order, digest)
		}
		byDigest[digest] = append(byDigest[digest], rec)
	}

	var groups []DuplicateGroup
	for _, digest := range order {
		files := byDigest[digest]
		if len(files) < 2 {
			continue
		}
		groups = append(groups, DuplicateGroup{Fingerprint: digest, Files: files})
	}
	return groups, skipped
}

// partitionByAge splits records into stale (modified strictly before cutoff)
// and fresh sets. The cutoff is computed once by the caller at invocation
// time, not per file.
func partitionByAge(records []FileRecord, cutoff time.Time) (stale, fresh []FileRecord) {
	for _, rec := range records {
		if rec.ModTime.Before(cutoff) {
			stale = append(stale, rec)
		} else {
			fresh = append(fresh, rec)
		}
	}
	return stale, fresh
}

// topBySize returns up to n records ordered by descending size. The sort is
// stable, so equal sizes keep their traversal order. Read-only: the result
// never feeds the planner.
func topBySize(records []FileRecord, n int) []FileRecord {
	if n <= 0 {
		return nil
	}
	ranked := make([]FileRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Size > ranked[j].Size
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
