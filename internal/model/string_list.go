package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// StringList decodes from either a JSON array of strings or a single
// comma-separated string ("React, Go, SQL").
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = compact(arr)
		return nil
	}
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("skills must be a list or a comma-separated string: %w", err)
	}
	if s == nil {
		*l = nil
		return nil
	}
	*l = SplitList(*s)
	return nil
}

// MarshalJSON always emits an array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

func (l StringList) Value() (driver.Value, error) {
	b, err := l.MarshalJSON()
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, (*[]string)(l))
	case string:
		return json.Unmarshal([]byte(v), (*[]string)(l))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// SplitList splits a comma-separated string and drops empty items.
func SplitList(s string) StringList {
	return compact(strings.Split(s, ","))
}

func compact(items []string) StringList {
	out := make(StringList, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
