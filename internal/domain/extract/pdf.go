package extract

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/swhalen98/MasonsDBCC/internal/domain/statement"
)

// Horizontal gap (in points) between text fragments that separates two table
// cells. Smaller gaps are treated as word spacing within one cell.
const cellGapPoints = 12.0

// ExtractContent reads a PDF and returns its flattened text and row-oriented
// tables. All failures, including parser panics on malformed documents, come
// back as ErrDocumentRead so the caller can skip the file and move on.
func ExtractContent(path string) (content *Content, err error) {
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("%w: %s: parser panic: %v", statement.ErrDocumentRead, path, r)
		}
	}()

	f, reader, openErr := pdf.Open(path)
	if openErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", statement.ErrDocumentRead, path, openErr)
	}
	defer f.Close()

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("%w: %s: document has no pages", statement.ErrDocumentRead, path)
	}

	var lines []string
	var tables []Table

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageRows := reconstructRows(page.Content())
		for _, row := range pageRows {
			lines = append(lines, strings.Join(row, " "))
		}
		tables = append(tables, groupTables(pageRows)...)
	}

	text := strings.TrimSpace(strings.Join(lines, "\n"))
	if text == "" && len(tables) == 0 {
		// Coordinate reconstruction found nothing; some documents only
		// yield text through the plain-text path.
		text = plainText(reader, numPages)
	}

	if text == "" && len(tables) == 0 {
		return nil, fmt.Errorf("%w: %s: no extractable content", statement.ErrDocumentRead, path)
	}

	return &Content{Text: text, Tables: tables}, nil
}

// reconstructRows groups a page's text fragments into rows by Y coordinate,
// orders each row left-to-right, and splits it into cells wherever the
// horizontal gap exceeds cellGapPoints.
func reconstructRows(content pdf.Content) []Row {
	type fragment struct {
		x, w, size float64
		s          string
	}

	rowMap := make(map[int][]fragment)
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		// Round Y to group fragments into rows with a small tolerance.
		yKey := int(math.Round(t.Y))
		rowMap[yKey] = append(rowMap[yKey], fragment{x: t.X, w: t.W, size: t.FontSize, s: t.S})
	}

	// PDF Y runs bottom-to-top, so higher Y comes first.
	yKeys := make([]int, 0, len(rowMap))
	for y := range rowMap {
		yKeys = append(yKeys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

	var rows []Row
	for _, y := range yKeys {
		frags := rowMap[y]
		sort.Slice(frags, func(a, b int) bool { return frags[a].x < frags[b].x })

		var row Row
		var cell strings.Builder
		prevEnd := math.Inf(-1)
		for _, fr := range frags {
			gap := fr.x - prevEnd
			switch {
			case cell.Len() == 0:
				// first fragment of the row
			case gap > cellGapPoints:
				row = append(row, strings.TrimSpace(cell.String()))
				cell.Reset()
			case gap > wordGap(fr.size):
				cell.WriteByte(' ')
			}
			cell.WriteString(fr.s)
			prevEnd = fr.x + fr.w
		}
		if cell.Len() > 0 {
			row = append(row, strings.TrimSpace(cell.String()))
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// wordGap is the fragment spacing treated as a word boundary within a cell.
func wordGap(fontSize float64) float64 {
	if fontSize <= 0 {
		return 1.0
	}
	return 0.25 * fontSize
}

// groupTables collects consecutive multi-cell rows into tables. Single-cell
// rows are narrative text and close off any open table.
func groupTables(rows []Row) []Table {
	var tables []Table
	var current Table
	for _, row := range rows {
		if len(row) >= 2 {
			current = append(current, row)
			continue
		}
		if len(current) > 0 {
			tables = append(tables, current)
			current = nil
		}
	}
	if len(current) > 0 {
		tables = append(tables, current)
	}
	return tables
}

// plainText extracts page text without layout reconstruction.
func plainText(reader *pdf.Reader, numPages int) string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		fontNames := page.Fonts()
		fonts := make(map[string]*pdf.Font, len(fontNames))
		for _, name := range fontNames {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}
	return strings.Join(pages, "\n")
}
