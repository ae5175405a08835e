package planjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads a single JSON document from r into an order-preserving Value
// tree. Trailing data after the document is an error.
func Decode(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected trailing data after JSON document")
	}
	return v, nil
}

// DecodeBytes is a convenience wrapper around Decode for in-memory documents.
func DecodeBytes(data []byte) (*Value, error) {
	return Decode(bytes.NewReader(data))
}

// decodeValue consumes the next complete value from the token stream.
func decodeValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON token: %w", err)
	}
	return decodeFromToken(dec, tok)
}

// decodeFromToken builds a Value from an already-consumed token, reading
// further tokens for containers.
func decodeFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return &Value{Kind: String, Str: t}, nil
	case json.Number:
		return &Value{Kind: Number, Num: t}, nil
	case bool:
		return &Value{Kind: Bool, Bool: t}, nil
	case nil:
		return &Value{Kind: Null}, nil
	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

// decodeObject consumes tokens up to and including the matching '}' and
// preserves key order.
func decodeObject(dec *json.Decoder) (*Value, error) {
	obj := &Value{Kind: Object}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read object key: %w", err)
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return obj, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("failed to decode value of key %q: %w", key, err)
		}
		obj.Entries = append(obj.Entries, Entry{Key: key, Value: val})
	}
}

// decodeArray consumes tokens up to and including the matching ']'.
func decodeArray(dec *json.Decoder) (*Value, error) {
	arr := &Value{Kind: Array}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read array element: %w", err)
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return arr, nil
		}

		item, err := decodeFromToken(dec, tok)
		if err != nil {
			return nil, fmt.Errorf("failed to decode array element %d: %w", len(arr.Items), err)
		}
		arr.Items = append(arr.Items, item)
	}
}
