package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cleared-dev/boardbrief/internal/model"
)

// DefaultMondayURL is the monday.com GraphQL endpoint.
const DefaultMondayURL = "https://api.monday.com/v2"

// itemsLimit is the largest page monday.com serves in one items_page call.
const itemsLimit = 500

const boardItemsQuery = `query ($ids: [ID!]) {
  boards(ids: $ids) {
    name
    items_page(limit: %d) {
      cursor
      items {
        id
        name
        column_values {
          text
          column {
            title
          }
        }
      }
    }
  }
}`

// MondayClient fetches boards from the monday.com GraphQL API. Every call
// is a single request; failures are not retried. Items past the first page
// are not fetched and a warning is logged when a board has more.
type MondayClient struct {
	url    string
	apiKey string
	client *http.Client
	log    *slog.Logger
}

// NewMondayClient creates a client. An empty url uses DefaultMondayURL.
func NewMondayClient(url, apiKey string, log *slog.Logger) *MondayClient {
	if url == "" {
		url = DefaultMondayURL
	}
	if log == nil {
		log = slog.Default()
	}
	return &MondayClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 60 * time.Second},
		log:    log,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Fetch returns the items of boardID.
func (c *MondayClient) Fetch(ctx context.Context, boardID string) (model.Table, error) {
	body, err := json.Marshal(graphQLRequest{
		Query:     fmt.Sprintf(boardItemsQuery, itemsLimit),
		Variables: map[string]any{"ids": []string{boardID}},
	})
	if err != nil {
		return model.Table{}, fmt.Errorf("encoding board query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: building request: %w", ErrFetch, err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: monday API request: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Table{}, fmt.Errorf("%w: monday API HTTP error: %d", ErrFetch, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.Table{}, fmt.Errorf("%w: reading monday response: %w", ErrFetch, err)
	}
	b, err := decodeBoard(payload)
	if err != nil {
		return model.Table{}, err
	}
	if b.hasMore() {
		c.log.Warn("board truncated to first page of items", "board", boardID, "limit", itemsLimit)
	}
	return b.table(), nil
}
