// Package auditing evaluates configuration-hygiene rule batteries against
// campaign and audience snapshot rows. Both domains share the same
// protocol: resolve the two most recent snapshot dates in scope, join rows
// to managers by normalized account id, flag latest-date rows per rule and
// tally previous-date rows for period-over-period deltas.
package auditing

import (
	"sort"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/eme-digital/ads-audit-api/internal/usecases/normalizing"
	"github.com/eme-digital/ads-audit-api/pkg/utils"
)

// snapshotDates picks the latest and previous distinct snapshot dates from
// a row set. Dates that fail to parse are dropped entirely, so a malformed
// date can never become "latest" and shadow real data. The returned list
// keeps the raw strings, newest first.
func snapshotDates(raw []string) (latest, previous string, available []string) {
	type dated struct {
		raw string
		at  int64
	}

	seen := make(map[string]struct{})
	var dates []dated
	for _, d := range raw {
		if d == "" {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		t, ok := utils.ParseSnapshotDate(d)
		if !ok {
			continue
		}
		dates = append(dates, dated{raw: d, at: t.Unix()})
	}

	sort.SliceStable(dates, func(i, j int) bool { return dates[i].at > dates[j].at })

	available = make([]string, 0, len(dates))
	for _, d := range dates {
		available = append(available, d.raw)
	}
	if len(available) > 0 {
		latest = available[0]
	}
	if len(available) > 1 {
		previous = available[1]
	}
	return latest, previous, available
}

// sortByTotalDesc orders manager summaries by total flagged issues
// descending, ties alphabetical.
func sortByTotalDesc[T any](summaries []T, key func(T) (int, string)) {
	sort.SliceStable(summaries, func(i, j int) bool {
		ti, ni := key(summaries[i])
		tj, nj := key(summaries[j])
		if ti != tj {
			return ti > tj
		}
		return ni < nj
	})
}

// resolveManager joins an audit row to its manager through the normalized
// account id. Rows with no match still count, under the Unknown sentinel.
func resolveManager(cid string, managerByCID map[string]string) (key, manager string) {
	key = normalizing.AccountID(cid)
	manager = managerByCID[key]
	if manager == "" {
		manager = domain.UnknownManager
	}
	return key, manager
}
