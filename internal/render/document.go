// Package render turns a computed invoice into a printable HTML page.
//
// Rendering runs in two passes. The builder binds invoice data into a
// generic document tree of sections, labelled fields, and one table; the
// formatter then walks that tree and emits HTML. The tree carries no
// markup and the formatter knows nothing about invoices, so either half
// can change without touching the other.
package render

// Document is the root of the generic tree handed to the formatter.
type Document struct {
	Lang      string
	Title     string
	Logo      string
	Watermark string
	Heading   Heading
	Sections  []Section
}

// Heading is the banner above the sections.
type Heading struct {
	Title    string
	Subtitle []Field
}

// Section groups labelled fields under a title. A section holds fields
// or a table, not both.
type Section struct {
	Title  string
	Fields []Field
	Table  *Table
}

// Field is one label/value pair rendered on its own row.
type Field struct {
	Label string
	Value string
}

// Table is a column-headed grid with an optional emphasized footer row.
type Table struct {
	Columns []string
	Rows    [][]string
	Footer  []string
}
