package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Answer is a ternary checklist answer. On the wire it is a JSON boolean for
// yes/no and the string "NA" for not-applicable. An unanswered question is
// represented by absence from the answers map, never by a zero Answer.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
	AnswerNA  Answer = "NA"
)

// IsValid reports whether the value is one of the three answer states
func (a Answer) IsValid() bool {
	switch a {
	case AnswerYes, AnswerNo, AnswerNA:
		return true
	}
	return false
}

func (a Answer) String() string {
	return string(a)
}

func (a Answer) MarshalJSON() ([]byte, error) {
	switch a {
	case AnswerYes:
		return []byte("true"), nil
	case AnswerNo:
		return []byte("false"), nil
	case AnswerNA:
		return []byte(`"NA"`), nil
	}
	return nil, fmt.Errorf("invalid checklist answer %q", string(a))
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*a = AnswerYes
		} else {
			*a = AnswerNo
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if strings.EqualFold(s, "NA") {
			*a = AnswerNA
			return nil
		}
		return fmt.Errorf("invalid checklist answer %q", s)
	}

	return fmt.Errorf("invalid checklist answer %s", string(data))
}
