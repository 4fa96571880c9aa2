package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Record is one course row. Columns keep the order in which they were first set,
// and that order is the order used when the record is serialized.
type Record struct {
	keys   []string
	values map[string]interface{}
}

// NewRecord creates an empty record
func NewRecord() *Record {
	return &Record{values: make(map[string]interface{})}
}

// Get returns the value stored under key
func (r *Record) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether the column exists on the record, even with a null value
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Set stores a value. A new column is appended after the existing ones.
func (r *Record) Set(key string, value interface{}) {
	if r.values == nil {
		r.values = make(map[string]interface{})
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Delete removes a column
func (r *Record) Delete(key string) {
	if _, ok := r.values[key]; !ok {
		return
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the column names in order
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of columns
func (r *Record) Len() int {
	return len(r.keys)
}

// String returns the value under key when it is a string, "" otherwise
func (r *Record) String(key string) string {
	s, _ := r.values[key].(string)
	return s
}

// Strings returns the value under key as a list of strings.
// Non-string elements are skipped; a missing or non-list value yields nil.
func (r *Record) Strings(key string) []string {
	switch v := r.values[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Clone returns a copy of the record. List values are copied, other values shared.
func (r *Record) Clone() *Record {
	c := &Record{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]interface{}, len(r.values)),
	}
	copy(c.keys, r.keys)
	for k, v := range r.values {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		c.values[k] = v
	}
	return c
}

// MarshalJSON writes the record as an object in column order with HTML
// characters and non-ASCII text unescaped. json.Marshal escapes HTML again
// when compacting the result, so callers that need literal bytes encode
// through an Encoder with SetEscapeHTML(false).
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(key); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(r.values[key]); err != nil {
			return nil, fmt.Errorf("column %q: %w", key, err)
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping its key order. Numbers keep their
// literal form as json.Number and string lists are decoded as []string.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("course record must be a JSON object")
	}

	r.keys = nil
	r.values = make(map[string]interface{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("column %q: %w", key, err)
		}
		r.Set(key, normalizeList(value))
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// normalizeList turns a decoded list of strings into []string
func normalizeList(value interface{}) interface{} {
	list, ok := value.([]interface{})
	if !ok {
		return value
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return value
		}
		out = append(out, s)
	}
	return out
}

func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
