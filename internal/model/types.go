package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Dimensions are the pixel dimensions of the original image, stored as JSONB.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal Dimensions: %w", err)
	}
	return b, nil
}
func (d *Dimensions) Scan(src interface{}) error {
	if src == nil {
		*d = Dimensions{}
		return nil
	}
	data, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("Dimensions.Scan: %w", err)
	}
	if err := json.Unmarshal(data, d); err != nil {
		return fmt.Errorf("unmarshal Dimensions: %w", err)
	}
	return nil
}

// StringList is a JSONB-encoded list of tags.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal([]string(l))
}
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	data, err := jsonBytes(src)
	if err != nil {
		return fmt.Errorf("StringList.Scan: %w", err)
	}
	return json.Unmarshal(data, l)
}

func jsonBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("expected []byte or string, got %T", src)
	}
}
