package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonb column helpers shared by the typed sub-record columns below.

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(dst interface{}, src interface{}) error {
	switch s := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(s) == 0 {
			return nil
		}
		return json.Unmarshal(s, dst)
	case string:
		if s == "" {
			return nil
		}
		return json.Unmarshal([]byte(s), dst)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return jsonValue(l)
}
func (l *StringList) Scan(src interface{}) error { return jsonScan(l, src) }

type QtyMap map[string]string

func (m QtyMap) Value() (driver.Value, error) {
	if m == nil {
		m = QtyMap{}
	}
	return jsonValue(m)
}
func (m *QtyMap) Scan(src interface{}) error { return jsonScan(m, src) }

type DocsMap map[string]bool

func (m DocsMap) Value() (driver.Value, error) {
	if m == nil {
		m = DocsMap{}
	}
	return jsonValue(m)
}
func (m *DocsMap) Scan(src interface{}) error { return jsonScan(m, src) }
