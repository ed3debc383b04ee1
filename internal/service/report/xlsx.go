package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	ierrors "github.com/ilyadubrovsky/grades-calculator/internal/errors"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/sanitize"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

var xlsxHeader = []interface{}{
	"Materia", "Promedio", "% Práctico", "Parcial 1", "Parcial 2", "Práctico", "Mejoramiento",
}

func RenderXLSX(w io.Writer, view *domain.CoursesView) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("f.NewStyle: %w", err)
	}

	if err = f.SetSheetRow(sheetName, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("f.SetSheetRow(header): %w", err)
	}
	if err = f.SetCellStyle(sheetName, "A1", "G1", headerStyle); err != nil {
		return fmt.Errorf("f.SetCellStyle: %w", err)
	}
	if err = f.SetColWidth(sheetName, "A", "A", 30); err != nil {
		return fmt.Errorf("f.SetColWidth: %w", err)
	}

	row := 2
	for _, course := range view.Courses {
		values := []interface{}{
			course.CourseName,
			course.GPA.StringFixed(2),
			course.PPractic,
			course.Partial1,
			course.Partial2,
			course.Practic,
			course.ReplacementExam,
		}
		if err = f.SetSheetRow(sheetName, cell("A", row), &values); err != nil {
			return fmt.Errorf("f.SetSheetRow(%d): %w", row, err)
		}
		row++
	}

	// a blank row ends the course list
	row++
	totals := []interface{}{"Promedio general", view.GlobalGPA}
	if err = f.SetSheetRow(sheetName, cell("A", row), &totals); err != nil {
		return fmt.Errorf("f.SetSheetRow(totals): %w", err)
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("f.Write: %w", err)
	}

	return nil
}

// ParseXLSX reads courses from the first sheet until the first row without
// a course name.
func ParseXLSX(r io.Reader) ([]*domain.CourseRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("f.GetRows: %w", err)
	}
	if len(rows) == 0 || !isHeader(rows[0]) {
		return nil, fmt.Errorf("missing header row: %w", ierrors.ErrUnsupportedImport)
	}

	records := make([]*domain.CourseRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(column(row, 0))
		if name == "" {
			break
		}

		records = append(records, &domain.CourseRecord{
			CourseName:      name,
			GPA:             sanitize.GPA(column(row, 1)),
			PPractic:        sanitize.Score(column(row, 2)),
			Partial1:        sanitize.Score(column(row, 3)),
			Partial2:        sanitize.Score(column(row, 4)),
			Practic:         sanitize.Score(column(row, 5)),
			ReplacementExam: sanitize.Score(column(row, 6)),
		})
	}

	return records, nil
}

func isHeader(row []string) bool {
	return strings.EqualFold(strings.TrimSpace(column(row, 0)), "Materia") &&
		strings.EqualFold(strings.TrimSpace(column(row, 1)), "Promedio")
}

func column(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}

	return ""
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
