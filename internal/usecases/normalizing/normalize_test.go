package normalizing

import (
	"testing"

	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccountID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "dashed CID", raw: "123-456-7890", want: "1234567890"},
		{name: "plain CID", raw: "1234567890", want: "1234567890"},
		{name: "whitespace and punctuation", raw: " 123 456.7890 ", want: "1234567890"},
		{name: "no digits", raw: "n/a", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AccountID(tt.raw))
		})
	}
}

func TestManager(t *testing.T) {
	assert.Equal(t, "Jane Doe", Manager("Jane Doe Strategic Lead"))
	assert.Equal(t, "Jane Doe", Manager("  Jane Doe  "))
	assert.Equal(t, "", Manager(""))
	// Case-sensitive on purpose: only the exact title is stripped.
	assert.Equal(t, "Jane Doe strategic lead", Manager("Jane Doe strategic lead"))
}

func TestManagerIndex(t *testing.T) {
	accounts := []domain.AccountRecord{
		{CID: "111-222-3333", Manager: "Jane Doe"},
		{CID: "", Manager: "Ignored"},
		{CID: "444", Manager: "John Roe"},
	}

	index := ManagerIndex(accounts)

	assert.Equal(t, "Jane Doe", index["1112223333"])
	assert.Equal(t, "John Roe", index["444"])
	assert.Len(t, index, 2)
}
