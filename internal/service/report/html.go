package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/ilyadubrovsky/grades-calculator/internal/domain"
	"github.com/ilyadubrovsky/grades-calculator/internal/service/sanitize"
)

var coursesTemplate = template.Must(template.New("courses").Parse(`<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Promedio general</title></head>
<body>
<table class="formTable">
  <thead>
    <tr><th>Materia</th><th>Promedio</th></tr>
  </thead>
  <tbody id="coursesTableBody">
{{- range $index, $course := .Courses }}
    <tr class="formTable__tr" data-index="{{ $index }}">
      <td class="formTable__td courseName">{{ $course.CourseName }}</td>
      <td class="formTable__td gpa">{{ $course.GPA.StringFixed 2 }}</td>
    </tr>
{{- end }}
  </tbody>
</table>
<p>Promedio general: <span id="globalGPA">{{ .GlobalGPA }}</span></p>
</body>
</html>
`))

func RenderHTML(w io.Writer, view *domain.CoursesView) error {
	if err := coursesTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("coursesTemplate.Execute: %w", err)
	}

	return nil
}

// ParseHTML reads the rows of a courses table. Only the name and the GPA
// are present in the markup, so records come back in simple form mode.
func ParseHTML(r io.Reader) ([]*domain.CourseRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	records := make([]*domain.CourseRecord, 0)
	doc.Find("tr.formTable__tr").Each(func(_ int, row *goquery.Selection) {
		name := normalizeSpace(row.Find("td.courseName").Text())
		if name == "" {
			return
		}

		records = append(records, &domain.CourseRecord{
			CourseName: name,
			GPA:        sanitize.GPA(normalizeSpace(row.Find("td.gpa").Text())),
		})
	})

	return records, nil
}
