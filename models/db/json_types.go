package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// StringList хранится как json массив, работает и при Create, и при Updates через map
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	body, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(body), nil
}

func (l *StringList) Scan(value interface{}) error {
	body, err := scanBytes(value)
	if err != nil || body == nil {
		*l = StringList{}
		return err
	}
	return json.Unmarshal(body, l)
}

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	body, err := json.Marshal(map[string]interface{}(m))
	if err != nil {
		return nil, err
	}
	return string(body), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	body, err := scanBytes(value)
	if err != nil || body == nil {
		*m = JSONMap{}
		return err
	}
	return json.Unmarshal(body, m)
}

func scanBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.Errorf("неподдерживаемый тип json значения: %T", value)
	}
}
