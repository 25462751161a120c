package domain

import "time"

// Document is a printable page: the template frame around either a grid of
// records, the entries of one record, or free HTML content.
type Document struct {
	Title    string
	Template PrintTemplate
	Date     time.Time

	Columns []string
	Rows    [][]string
	Entries []Entry
	Content string
}

type Entry struct {
	Label string
	Value string
}

// Sheet is the tabular content of a spreadsheet export.
type Sheet struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// Export is a rendered file ready to be sent to the caller.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}
