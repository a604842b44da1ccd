package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ChatTurn 问答记录表的结构体，两种 scope 各一张表。
type ChatTurn struct {
	ID        string      `json:"id" db:"id"`
	ScopeID   string      `json:"scope_id" db:"scope_id"`
	Question  string      `json:"question" db:"question"`
	Answer    string      `json:"answer" db:"answer"`
	Sources   ChatSources `json:"sources" db:"sources"`
	CreatedAt int64       `json:"created_at" db:"created_at"`
}

// ChatSource cites one retrieved passage backing an answer.
type ChatSource struct {
	Page    int     `json:"page"`
	Excerpt string  `json:"excerpt"`
	Score   float64 `json:"score,omitempty"`
}

type ChatSources []ChatSource

func (s ChatSources) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (s *ChatSources) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("unsupported sources column type %T", value)
	}
}
