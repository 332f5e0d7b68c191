package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// columnGap is the horizontal distance, in text-space units, between two
// fragments on the same row that marks the row as tabular rather than
// ordinary prose with wide spacing.
const columnGap = 18.0

// extractPDF walks the document page by page. Each page contributes its
// rows of text in reading order; rows recognised as tabular are
// additionally appended, flattened to one space-joined line, after the
// page's prose. Pages that fail to yield text are skipped; only a document
// that yields nothing at all is an error.
func extractPDF(data []byte) (text string, err error) {
	// The upstream reader panics on some malformed xref tables instead of
	// returning an error.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrCorruptDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}

		var tables []string
		for _, row := range rows {
			line := joinRow(row)
			if line == "" {
				continue
			}
			b.WriteString(line)
			b.WriteString("\n")

			if isTabular(row) {
				tables = append(tables, line)
			}
		}

		for _, line := range tables {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		return "", ErrEmptyDocument
	}

	return result, nil
}

func joinRow(row *pdf.Row) string {
	parts := make([]string, 0, len(row.Content))
	for _, fragment := range row.Content {
		if s := strings.TrimSpace(fragment.S); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// isTabular reports whether the row's fragments are separated by gaps wide
// enough to indicate table columns.
func isTabular(row *pdf.Row) bool {
	if len(row.Content) < 2 {
		return false
	}

	for i := 1; i < len(row.Content); i++ {
		prev := row.Content[i-1]
		if row.Content[i].X-(prev.X+prev.W) > columnGap {
			return true
		}
	}

	return false
}
