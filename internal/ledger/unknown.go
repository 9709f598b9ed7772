package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/phrazzld/ankigen/internal/domain"
)

// Keys of the ledger file that map onto domain types.
const flashcardsKey = "flashcards"

var knownCardKeys = map[string]bool{"front": true, "back": true, "unit": true}

// unknownFields holds the parts of a ledger file the domain model does not
// carry, so that a rewrite keeps them. Card keys are indexed by front.
type unknownFields struct {
	top   map[string]json.RawMessage
	cards map[string]map[string]json.RawMessage
}

func (u unknownFields) empty() bool {
	return len(u.top) == 0 && len(u.cards) == 0
}

// collectUnknown extracts every key outside the known schema. data must
// already have decoded into a domain.Ledger.
func collectUnknown(data []byte) (unknownFields, error) {
	var u unknownFields

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return u, err
	}

	for key, value := range doc {
		if key == flashcardsKey {
			continue
		}
		if u.top == nil {
			u.top = make(map[string]json.RawMessage)
		}
		u.top[key] = value
	}

	raw, ok := doc[flashcardsKey]
	if !ok {
		return u, nil
	}

	var cards []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &cards); err != nil {
		return u, err
	}

	for _, card := range cards {
		var front string
		if err := json.Unmarshal(card["front"], &front); err != nil {
			continue
		}

		for key, value := range card {
			if knownCardKeys[key] {
				continue
			}
			if u.cards == nil {
				u.cards = make(map[string]map[string]json.RawMessage)
			}
			if u.cards[front] == nil {
				u.cards[front] = make(map[string]json.RawMessage)
			}
			u.cards[front][key] = value
		}
	}

	return u, nil
}

// marshalWithUnknown renders ledger like Marshal, then appends the unknown
// keys in sorted order after the known ones of each object.
func marshalWithUnknown(ledger *domain.Ledger, u unknownFields) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')

	if err := writeMember(&compact, flashcardsKey, nil); err != nil {
		return nil, err
	}
	compact.WriteByte('[')
	for i, card := range ledger.Flashcards {
		if i > 0 {
			compact.WriteByte(',')
		}
		if err := writeCard(&compact, card, u.cards[card.Front]); err != nil {
			return nil, err
		}
	}
	compact.WriteByte(']')

	for _, key := range sortedKeys(u.top) {
		compact.WriteByte(',')
		if err := writeMember(&compact, key, u.top[key]); err != nil {
			return nil, err
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to marshal ledger: %w", err)
	}
	out.WriteByte('\n')

	return out.Bytes(), nil
}

func writeCard(buf *bytes.Buffer, card domain.Flashcard, extra map[string]json.RawMessage) error {
	known := []struct {
		key   string
		value any
	}{
		{"front", card.Front},
		{"back", card.Back},
		{"unit", card.Unit},
	}

	buf.WriteByte('{')
	for i, field := range known {
		if i > 0 {
			buf.WriteByte(',')
		}
		value, err := encodeValue(field.value)
		if err != nil {
			return err
		}
		if err := writeMember(buf, field.key, value); err != nil {
			return err
		}
	}
	for _, key := range sortedKeys(extra) {
		buf.WriteByte(',')
		if err := writeMember(buf, key, extra[key]); err != nil {
			return err
		}
	}
	buf.WriteByte('}')

	return nil
}

// writeMember writes "key": followed by value, which may be nil when the
// caller writes the value itself.
func writeMember(buf *bytes.Buffer, key string, value json.RawMessage) error {
	encodedKey, err := encodeValue(key)
	if err != nil {
		return err
	}
	buf.Write(encodedKey)
	buf.WriteByte(':')
	buf.Write(value)
	return nil
}

// encodeValue marshals v without HTML escaping and without the encoder's
// trailing newline.
func encodeValue(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal ledger: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
