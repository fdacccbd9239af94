// Package metadata decodes the campaign metadata blob stored on-chain.
//
// Campaigns carry their metadata as raw bytes holding a UTF-8 JSON object.
// Off-chain it usually travels as a 0x-prefixed hex string.
package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrDecode is returned when the input is not valid hex.
	ErrDecode = errors.New("invalid metadata hex")
	// ErrEncoding is returned when the decoded bytes are not valid UTF-8.
	ErrEncoding = errors.New("metadata is not valid UTF-8")
	// ErrFormat is returned when the text is not a JSON object with a string title.
	ErrFormat = errors.New("invalid metadata format")
)

// Metadata is the decoded campaign metadata.
type Metadata struct {
	Title string `json:"title"`
}

// Decode parses a hex string, with or without 0x prefix, into Metadata.
func Decode(input string) (*Metadata, error) {
	raw, err := hexutil.Decode("0x" + trim0x(input))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Parse(raw)
}

// Parse decodes raw metadata bytes.
func Parse(raw []byte) (*Metadata, error) {
	if !utf8.Valid(raw) {
		return nil, ErrEncoding
	}

	title, err := readTitle(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return &Metadata{Title: title}, nil
}

// readTitle scans a single JSON object and returns its "title" string.
// Keys match exactly and "title" may appear only once; other fields are skipped.
func readTitle(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return "", errors.New("expected a JSON object")
	}

	var (
		title *string
		seen  bool
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		key, ok := tok.(string)
		if !ok {
			return "", fmt.Errorf("unexpected token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return "", err
		}
		if key != "title" {
			continue
		}
		if seen {
			return "", errors.New(`duplicate field "title"`)
		}
		seen = true
		if err := json.Unmarshal(value, &title); err != nil {
			return "", fmt.Errorf(`field "title": %w`, err)
		}
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return "", err
	}
	if _, err := dec.Token(); err != io.EOF {
		return "", errors.New("unexpected data after JSON object")
	}

	if title == nil {
		return "", errors.New(`missing field "title"`)
	}
	return *title, nil
}

// Bytes returns the JSON serialisation stored on-chain.
func (m Metadata) Bytes() ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return b, nil
}

// Encode returns the 0x-prefixed hex form accepted by Decode.
func Encode(m Metadata) (string, error) {
	b, err := m.Bytes()
	if err != nil {
		return "", err
	}
	return hexutil.Encode(b), nil
}

// Describe renders the metadata for display.
func (m Metadata) Describe() string {
	return fmt.Sprintf("Title: %s\n", m.Title)
}

func (m Metadata) String() string {
	return m.Describe()
}

func trim0x(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}
