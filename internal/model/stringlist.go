package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings stored as a JSON array in a TEXT
// column.
//
// Encoding never fails and always produces an array ("[]" for nil).
// Decoding a NULL, empty or JSON null payload yields an empty list, so a
// scanned StringList is never nil.
type StringList []string

// EncodeStringList returns the JSON array text stored for list.
func EncodeStringList(list []string) string {
	if list == nil {
		return "[]"
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Keep "&", "<" and ">" literal in the column so substring search sees
	// what the client sent.
	enc.SetEscapeHTML(false)
	// Encoding a []string cannot fail.
	_ = enc.Encode(list)

	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// DecodeStringList parses a stored payload back into a list.
func DecodeStringList(payload []byte) ([]string, error) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return []string{}, nil
	}

	var list []string
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, fmt.Errorf("decoding string list: %w", err)
	}
	if list == nil {
		return []string{}, nil
	}
	return list, nil
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return EncodeStringList(l), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var payload []byte

	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		payload = []byte(v)
	case []byte:
		payload = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}

	list, err := DecodeStringList(payload)
	if err != nil {
		return err
	}
	*l = list
	return nil
}
