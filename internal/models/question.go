package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

type QuestionType string

const (
	QuestionShortText QuestionType = "short_text"
	QuestionLongText  QuestionType = "long_text"
	QuestionCheckbox  QuestionType = "checkbox"
	QuestionSelect    QuestionType = "select"
	QuestionRadio     QuestionType = "radio"
)

// Question is one item of a campaign's qualification questionnaire,
// discriminated by Type. Options is only meaningful for select/radio.
type Question struct {
	Type     QuestionType `json:"type"`
	Label    string       `json:"label"`
	Required bool         `json:"required"`
	Options  []string     `json:"options,omitempty"`
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Label) == "" {
		return fmt.Errorf("question label is required")
	}
	switch q.Type {
	case QuestionShortText, QuestionLongText, QuestionCheckbox:
		if len(q.Options) > 0 {
			return fmt.Errorf("question %q: options are only allowed for select and radio questions", q.Label)
		}
	case QuestionSelect, QuestionRadio:
		if len(q.Options) == 0 {
			return fmt.Errorf("question %q: at least one option is required", q.Label)
		}
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("question %q: options must be non-empty", q.Label)
			}
		}
	default:
		return fmt.Errorf("question %q: unknown question type %q", q.Label, q.Type)
	}
	return nil
}

// QuestionList is stored as a jsonb column on the campaign row.
type QuestionList []Question

func (l QuestionList) Validate() error {
	for _, q := range l {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (l QuestionList) Value() (driver.Value, error) {
	if l == nil {
		l = QuestionList{}
	}
	return json.Marshal(l)
}

func (l *QuestionList) Scan(value any) error {
	if value == nil {
		*l = QuestionList{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into QuestionList", value)
	}
	return json.Unmarshal(raw, l)
}
