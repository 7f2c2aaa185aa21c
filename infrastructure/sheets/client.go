// Package sheets pulls the published-CSV snapshot tabs and maps them into
// the typed row sets the engine consumes.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const fetchTimeout = 30 * time.Second

// Client fetches a published CSV document.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// FetchCSV downloads and parses one CSV document. Rows may have ragged
// widths; the mappers treat missing cells as empty.
func (c *Client) FetchCSV(ctx context.Context, url string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building sheet request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching sheet")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetching sheet: unexpected status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing sheet CSV")
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	return records, nil
}
