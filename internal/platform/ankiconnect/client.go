package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultURL is where AnkiConnect listens unless reconfigured.
const DefaultURL = "http://localhost:8765"

// Client errors.
var (
	ErrEmptyEndpoint = errors.New("ankiconnect endpoint cannot be empty")
	ErrNilLogger     = errors.New("logger cannot be nil")

	// ErrRequestFailed wraps transport failures and undecodable replies.
	// When it is returned no response was received.
	ErrRequestFailed = errors.New("ankiconnect request failed")
)

// Client posts actions to an AnkiConnect endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client for endpoint. A nil httpClient gets a client
// with a 30 second timeout. A timed-out addNote may still be applied by Anki
// later; that card is then missing from the ledger and is rejected by Anki
// as a duplicate on the next run.
func NewClient(endpoint string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid ankiconnect endpoint %q: %w", endpoint, err)
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger.With("component", "ankiconnect"),
	}, nil
}

// AddCard submits a single Basic note with the given fields to deck, with
// duplicates disallowed. It returns the decoded response, or an error
// wrapping ErrRequestFailed if no response could be obtained.
func (c *Client) AddCard(ctx context.Context, front, back, deck string) (*Response, error) {
	params := AddNoteParams{
		Note: Note{
			DeckName:  deck,
			ModelName: BasicModel,
			Fields:    NoteFields{Front: front, Back: back},
			Options:   NoteOptions{AllowDuplicate: false},
		},
	}

	return c.invoke(ctx, "addNote", params)
}

// Version asks AnkiConnect for its protocol version. It is used as a
// reachability probe before a run.
func (c *Client) Version(ctx context.Context) (int, error) {
	resp, err := c.invoke(ctx, "version", nil)
	if err != nil {
		return 0, err
	}
	if resp.HasError() {
		return 0, fmt.Errorf("ankiconnect version: %s", resp.ErrorMessage())
	}

	var version int
	if err := json.Unmarshal(resp.Result, &version); err != nil {
		return 0, fmt.Errorf("%w: unexpected version result %s", ErrRequestFailed, string(resp.Result))
	}
	return version, nil
}

func (c *Client) invoke(ctx context.Context, action string, params any) (*Response, error) {
	body, err := json.Marshal(Request{
		Action:  action,
		Version: APIVersion,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "sending ankiconnect request", "action", action)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrRequestFailed, err)
	}

	var out Response
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: status %d: invalid JSON body: %v",
			ErrRequestFailed, resp.StatusCode, err)
	}

	return &out, nil
}
