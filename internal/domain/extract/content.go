package extract

// Row is an ordered sequence of text cells. Cells are plain text; empty
// strings stand in for blank cells.
type Row []string

// Table is a sequence of rows. By convention the first row is the header and
// is excluded from line-item matching.
type Table []Row

// Content is the flattened form of a statement document: a text stream for
// line-based matching and row-oriented tables for the table tier. No semantic
// interpretation happens at this layer.
type Content struct {
	Text   string
	Tables []Table
}
