package model

import (
	"encoding/json"
	"time"
)

// Response is one completed survey submission. Job, AgeFrom and AgeTo keep
// the literal submitted strings and stay empty when the respondent is not
// employed.
type Response struct {
	Name     string
	Employed bool
	Job      string
	AgeFrom  string
	AgeTo    string
	Time     time.Time
}

type QuestionKind int

const (
	FreeText QuestionKind = iota
	Number
	SingleChoice
)

// ParseQuestionKind maps the form-level question type to its kind.
// Radio and dropdown questions are both single-choice.
func ParseQuestionKind(s string) (QuestionKind, bool) {
	switch s {
	case "text":
		return FreeText, true
	case "number":
		return Number, true
	case "radio", "dropdown":
		return SingleChoice, true
	}
	return 0, false
}

// Question describes one survey question for voice extraction. Options only
// apply to single-choice questions. More than one target field means a
// composite answer, like an age range.
type Question struct {
	Prompt  string
	Kind    QuestionKind
	Options []string
	Fields  []string
}

// NoAnswer is the sentinel value used when no usable answer could be
// extracted from the audio.
const NoAnswer = "null"

// Answer is the outcome of a voice extraction: a single text value, or a
// field-to-value map for composite questions. A NoAnswer text means nothing
// usable was found.
type Answer struct {
	Text   string
	Fields map[string]string
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.Fields != nil {
		return json.Marshal(a.Fields)
	}
	return json.Marshal(a.Text)
}
