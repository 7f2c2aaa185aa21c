// Package normalizing canonicalizes the keys used to join the
// independently-sourced snapshot tabs: account CIDs and manager names.
package normalizing

import (
	"strings"

	"github.com/eme-digital/ads-audit-api/internal/domain"
)

// strategicLeadSuffix is the title some manager names carry in the sheets.
// It is stripped so "Jane Doe Strategic Lead" and "Jane Doe" group together.
const strategicLeadSuffix = "Strategic Lead"

// AccountID reduces a raw CID to its digits. CIDs arrive formatted
// inconsistently across tabs ("123-456-7890", "1234567890"); two values
// that differ only in punctuation are the same account. An input with no
// digits normalizes to "" which never matches a real key.
func AccountID(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
		}
	}
	return b.String()
}

// Manager canonicalizes a manager display name for use as a group key.
func Manager(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, strategicLeadSuffix, ""))
}

// ManagerIndex builds the CID → manager join map from the management sheet.
// Manager names in AccountRecords are already canonical at ingest.
func ManagerIndex(accounts []domain.AccountRecord) map[string]string {
	index := make(map[string]string, len(accounts))
	for _, a := range accounts {
		if a.CID == "" {
			continue
		}
		index[AccountID(a.CID)] = a.Manager
	}
	return index
}
