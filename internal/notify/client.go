package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client pushes content-change notifications to an external consumer
// (edge cache purge, search indexer). A client with an empty base URL
// is disabled and every call is a no-op.
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

func NewClient(baseURL, secret string) *Client {
	return &Client{
		baseURL: baseURL,
		secret:  secret,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

type contentChangedRequest struct {
	EntityKind string `json:"entity_kind"` // "card" or "section"
	EntityID   int    `json:"entity_id"`
	Action     string `json:"action"`
}

// ContentChanged tells the consumer that an entity was created or
// edited so it can refetch.
func (c *Client) ContentChanged(ctx context.Context, entityKind string, entityID int, action string) error {
	if !c.Enabled() {
		return nil
	}

	url := fmt.Sprintf("%s/hooks/content-changed", c.baseURL)

	body, err := json.Marshal(contentChangedRequest{
		EntityKind: entityKind,
		EntityID:   entityID,
		Action:     action,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf(
			"webhook error: status=%d body=%s",
			resp.StatusCode,
			string(b),
		)
	}

	return nil
}
