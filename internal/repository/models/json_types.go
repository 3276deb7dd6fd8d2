package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// Option mirrors domain.Option for JSON storage inside a question row.
type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// OptionSlice stores a question's options as a JSON document in a CLOB
// column.
type OptionSlice []Option

// Value implements the driver.Valuer interface
func (s OptionSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *OptionSlice) Scan(value interface{}) error {
	return scanJSON(value, s, "OptionSlice")
}

// AnswerResult mirrors domain.AnswerResult for JSON storage inside an
// attempt row.
type AnswerResult struct {
	QuestionID      string   `json:"questionId"`
	SelectedOptions []string `json:"selectedOptions"`
	CorrectOptions  []string `json:"correctOptions"`
	IsCorrect       bool     `json:"isCorrect"`
}

// AnswerResultSlice stores an attempt's per-question results as a JSON
// document in a CLOB column.
type AnswerResultSlice []AnswerResult

// Value implements the driver.Valuer interface
func (s AnswerResultSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *AnswerResultSlice) Scan(value interface{}) error {
	return scanJSON(value, s, "AnswerResultSlice")
}

func scanJSON(value interface{}, dest interface{}, typeName string) error {
	if value == nil {
		return resetJSONDest(dest)
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New(typeName + " Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	// Empty columns and literal "null" come back as empty slices.
	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		return resetJSONDest(dest)
	}

	return json.Unmarshal(bytesToParse, dest)
}

func resetJSONDest(dest interface{}) error {
	switch d := dest.(type) {
	case *OptionSlice:
		*d = OptionSlice{}
	case *AnswerResultSlice:
		*d = AnswerResultSlice{}
	default:
		return fmt.Errorf("scanJSON: unsupported destination %T", dest)
	}
	return nil
}
