package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Stat is a histogram statistic. The histogram repository stores some values
// as JSON numbers and some as strings, both are accepted.
type Stat float64

// UnmarshalJSON implements json.Unmarshaler
func (s *Stat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSuffix(strings.TrimSpace(str), "%")
		if str == "" {
			*s = 0
			return nil
		}
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("invalid statistic %q: %w", str, err)
		}
		*s = Stat(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = Stat(f)
	return nil
}

// ExamStats is the summary stored next to an exam histogram image
type ExamStats struct {
	Students    Stat `json:"students"`
	PassFail    Stat `json:"passFail"`
	PassPercent Stat `json:"passPercent"`
	Min         Stat `json:"min"`
	Max         Stat `json:"max"`
	Average     Stat `json:"average"`
	Median      Stat `json:"median"`
}

// ExamGrades pairs an exam's statistics with its histogram image
type ExamGrades struct {
	Course   string    `json:"course"`
	Semester string    `json:"semester"`
	Exam     string    `json:"exam"`
	Stats    ExamStats `json:"stats"`
	ImageURL string    `json:"imageUrl"`
}
