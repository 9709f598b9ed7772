package ankiconnect_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/ankigen/internal/platform/ankiconnect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSink records every decoded request and answers with a fixed body.
type fakeSink struct {
	mu       sync.Mutex
	requests []map[string]any
	status   int
	body     string
}

func (f *fakeSink) recorded() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.requests...)
}

func (f *fakeSink) server(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var decoded map[string]any
		if err := json.NewDecoder(req.Body).Decode(&decoded); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.requests = append(f.requests, decoded)
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		status := f.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, f.body)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("empty endpoint", func(t *testing.T) {
		t.Parallel()
		_, err := ankiconnect.NewClient("", nil, discardLogger())
		assert.ErrorIs(t, err, ankiconnect.ErrEmptyEndpoint)
	})

	t.Run("invalid endpoint", func(t *testing.T) {
		t.Parallel()
		_, err := ankiconnect.NewClient("not a url", nil, discardLogger())
		assert.Error(t, err)
	})

	t.Run("nil logger", func(t *testing.T) {
		t.Parallel()
		_, err := ankiconnect.NewClient(ankiconnect.DefaultURL, nil, nil)
		assert.ErrorIs(t, err, ankiconnect.ErrNilLogger)
	})

	t.Run("defaults http client", func(t *testing.T) {
		t.Parallel()
		client, err := ankiconnect.NewClient(ankiconnect.DefaultURL, nil, discardLogger())
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestAddCard_RequestShape(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{body: `{"result": 1496198395707, "error": null}`}
	srv := sink.server(t)

	client, err := ankiconnect.NewClient(srv.URL, srv.Client(), discardLogger())
	require.NoError(t, err)

	resp, err := client.AddCard(context.Background(), "What is a flip-flop?", "A bistable circuit.", "Deck A")
	require.NoError(t, err)
	require.NotNil(t, resp)

	requests := sink.recorded()
	require.Len(t, requests, 1)
	got := requests[0]
	assert.Equal(t, "addNote", got["action"])
	assert.EqualValues(t, 6, got["version"])

	params, ok := got["params"].(map[string]any)
	require.True(t, ok)
	note, ok := params["note"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Deck A", note["deckName"])
	assert.Equal(t, "Basic", note["modelName"])
	assert.Equal(t, map[string]any{
		"Front": "What is a flip-flop?",
		"Back":  "A bistable circuit.",
	}, note["fields"])
	assert.Equal(t, map[string]any{"allowDuplicate": false}, note["options"])
}

func TestAddCard_Responses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    bool
		wantResult bool
		wantError  string
		wantNoteID int64
	}{
		{
			name:       "note created",
			body:       `{"result": 1496198395707, "error": null}`,
			wantResult: true,
			wantNoteID: 1496198395707,
		},
		{
			name:      "duplicate rejected by anki",
			body:      `{"result": null, "error": "cannot create note because it is a duplicate"}`,
			wantError: "cannot create note because it is a duplicate",
		},
		{
			name: "empty object",
			body: `{}`,
		},
		{
			name:    "not json",
			body:    `<html>oops</html>`,
			wantErr: true,
		},
		{
			name:       "error status with json body still decoded",
			status:     http.StatusInternalServerError,
			body:       `{"result": null, "error": "collection is not available"}`,
			wantError:  "collection is not available",
			wantResult: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sink := &fakeSink{status: tc.status, body: tc.body}
			srv := sink.server(t)

			client, err := ankiconnect.NewClient(srv.URL, srv.Client(), discardLogger())
			require.NoError(t, err)

			resp, err := client.AddCard(context.Background(), "Q", "A", "Deck")
			if tc.wantErr {
				assert.ErrorIs(t, err, ankiconnect.ErrRequestFailed)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, resp)

			assert.Equal(t, tc.wantResult, resp.HasResult())
			assert.Equal(t, tc.wantError, resp.ErrorMessage())
			assert.Equal(t, tc.wantError != "", resp.HasError())

			id, ok := resp.NoteID()
			assert.Equal(t, tc.wantNoteID != 0, ok)
			assert.Equal(t, tc.wantNoteID, id)
		})
	}
}

func TestAddCard_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	client, err := ankiconnect.NewClient(endpoint, nil, discardLogger())
	require.NoError(t, err)

	resp, err := client.AddCard(context.Background(), "Q", "A", "Deck")
	assert.ErrorIs(t, err, ankiconnect.ErrRequestFailed)
	assert.Nil(t, resp)
}

func TestAddCard_CancelledContext(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{body: `{"result": 1, "error": null}`}
	srv := sink.server(t)

	client, err := ankiconnect.NewClient(srv.URL, srv.Client(), discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := client.AddCard(ctx, "Q", "A", "Deck")
	assert.ErrorIs(t, err, ankiconnect.ErrRequestFailed)
	assert.Nil(t, resp)
	assert.Empty(t, sink.recorded())
}

func TestVersion(t *testing.T) {
	t.Parallel()

	sink := &fakeSink{body: `{"result": 6, "error": null}`}
	srv := sink.server(t)

	client, err := ankiconnect.NewClient(srv.URL, srv.Client(), discardLogger())
	require.NoError(t, err)

	version, err := client.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, version)

	requests := sink.recorded()
	require.Len(t, requests, 1)
	assert.Equal(t, "version", requests[0]["action"])
	_, hasParams := requests[0]["params"]
	assert.False(t, hasParams)
}

func TestResponse_NilSafe(t *testing.T) {
	t.Parallel()

	var resp *ankiconnect.Response
	assert.False(t, resp.HasResult())
	assert.False(t, resp.HasError())
	assert.Equal(t, "", resp.ErrorMessage())
	assert.Equal(t, "<nil>", resp.String())
}

func TestResponse_String(t *testing.T) {
	t.Parallel()

	msg := "deck was not found"
	resp := &ankiconnect.Response{Result: []byte("null"), Error: &msg}
	assert.Equal(t, `{"result": null, "error": "deck was not found"}`, resp.String())
}
