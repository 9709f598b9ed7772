package ankiconnect

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// APIVersion is the AnkiConnect protocol version sent with every request.
const APIVersion = 6

// BasicModel is the two-field note type every card is created with.
const BasicModel = "Basic"

// Request is the AnkiConnect envelope.
type Request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

// AddNoteParams is the params object of an addNote request.
type AddNoteParams struct {
	Note Note `json:"note"`
}

// Note describes a single note to create.
type Note struct {
	DeckName  string      `json:"deckName"`
	ModelName string      `json:"modelName"`
	Fields    NoteFields  `json:"fields"`
	Options   NoteOptions `json:"options"`
}

// NoteFields holds the two fields of a Basic note.
type NoteFields struct {
	Front string `json:"Front"`
	Back  string `json:"Back"`
}

// NoteOptions controls note creation. AllowDuplicate is always false: Anki
// itself rejects an exact duplicate independently of the local ledger.
type NoteOptions struct {
	AllowDuplicate bool `json:"allowDuplicate"`
}

// Response is the AnkiConnect reply: {"result": ..., "error": ...}.
type Response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// HasResult reports whether result is present and not JSON null.
func (r *Response) HasResult() bool {
	if r == nil {
		return false
	}
	trimmed := bytes.TrimSpace(r.Result)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// HasError reports whether error is present and not null.
func (r *Response) HasError() bool {
	return r != nil && r.Error != nil
}

// ErrorMessage returns the error payload, or "" when there is none.
func (r *Response) ErrorMessage() string {
	if !r.HasError() {
		return ""
	}
	return *r.Error
}

// NoteID decodes the result of an addNote call. ok is false when the result
// is absent or not an integer.
func (r *Response) NoteID() (id int64, ok bool) {
	if !r.HasResult() {
		return 0, false
	}

	id, err := strconv.ParseInt(string(bytes.TrimSpace(r.Result)), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// String renders the response for logs.
func (r *Response) String() string {
	if r == nil {
		return "<nil>"
	}

	result := "null"
	if len(r.Result) > 0 {
		result = string(r.Result)
	}

	errMsg := "null"
	if r.Error != nil {
		errMsg = strconv.Quote(*r.Error)
	}

	return `{"result": ` + result + `, "error": ` + errMsg + `}`
}
