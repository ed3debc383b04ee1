package dbo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Course is the persisted layout of one course. Older records store every
// field as a string, so numbers are decoded from both forms.
type Course struct {
	CourseName      string `json:"courseName"`
	GPA             gpa    `json:"gpa"`
	PPractic        number `json:"pPractic"`
	Partial1        number `json:"partial1"`
	Partial2        number `json:"partial2"`
	Practic         number `json:"practic"`
	ReplacementExam number `json:"replacementExam"`
}

type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	raw, quoted, err := unquote(data)
	if err != nil {
		return err
	}
	if raw == "" {
		*n = 0
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		if !quoted {
			return fmt.Errorf("strconv.ParseFloat: %w", err)
		}
		// free-form text entered by hand counts as 0
		value = 0
	}
	*n = number(value)

	return nil
}

// gpa is written as a string with exactly two fraction digits.
type gpa decimal.Decimal

func (g gpa) MarshalJSON() ([]byte, error) {
	return json.Marshal(decimal.Decimal(g).StringFixed(2))
}

func (g *gpa) UnmarshalJSON(data []byte) error {
	raw, quoted, err := unquote(data)
	if err != nil {
		return err
	}
	raw = strings.TrimSuffix(raw, ".")
	if raw == "" {
		*g = gpa(decimal.Zero)
		return nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		if !quoted {
			return fmt.Errorf("decimal.NewFromString: %w", err)
		}
		// a manually entered gpa is not validated, e.g. "8,5"
		value = decimal.Zero
	}
	*g = gpa(value)

	return nil
}

// unquote returns the scalar text of data and whether it was a JSON string.
func unquote(data []byte) (string, bool, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", true, fmt.Errorf("json.Unmarshal: %w", err)
		}
		return strings.TrimSpace(s), true, nil
	}

	return string(data), false, nil
}

func FromDomain(records []*domain.CourseRecord) ([]byte, error) {
	data := make([]Course, 0, len(records))
	for _, record := range records {
		data = append(data, Course{
			CourseName:      record.CourseName,
			GPA:             gpa(record.GPA),
			PPractic:        number(record.PPractic),
			Partial1:        number(record.Partial1),
			Partial2:        number(record.Partial2),
			Practic:         number(record.Practic),
			ReplacementExam: number(record.ReplacementExam),
		})
	}

	coursesBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return coursesBytes, nil
}

func ToDomain(data []byte) ([]*domain.CourseRecord, error) {
	courses := make([]Course, 0)
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}
	if courses == nil {
		return nil, errors.New("course list is null")
	}

	records := make([]*domain.CourseRecord, 0, len(courses))
	for _, course := range courses {
		records = append(records, &domain.CourseRecord{
			CourseName:      course.CourseName,
			GPA:             decimal.Decimal(course.GPA),
			PPractic:        float64(course.PPractic),
			Partial1:        float64(course.Partial1),
			Partial2:        float64(course.Partial2),
			Practic:         float64(course.Practic),
			ReplacementExam: float64(course.ReplacementExam),
		})
	}

	return records, nil
}
