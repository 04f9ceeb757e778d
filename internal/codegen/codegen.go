// Package codegen holds generated C++ source as data: files made of blocks,
// blocks made of indented lines. Emitters build the structure and Render
// is the only place that decides whitespace.
package codegen

import (
	"bytes"
	"fmt"
	"strings"
)

// IndentUnit is the text emitted for one indentation level
const IndentUnit = "    "

// Line is a single source line at an indentation depth
type Line struct {
	Indent int
	Text   string
}

// String renders the line without its trailing newline
func (l Line) String() string {
	if l.Text == "" {
		return ""
	}
	return strings.Repeat(IndentUnit, l.Indent) + l.Text
}

// Block is a run of consecutive lines. Blocks are separated by one blank line.
type Block struct {
	Lines []Line
}

// Add appends a line
func (b *Block) Add(indent int, text string) *Block {
	b.Lines = append(b.Lines, Line{Indent: indent, Text: text})
	return b
}

// Addf appends a formatted line
func (b *Block) Addf(indent int, format string, args ...interface{}) *Block {
	return b.Add(indent, fmt.Sprintf(format, args...))
}

// Len returns the number of lines in the block
func (b *Block) Len() int {
	return len(b.Lines)
}

// File is an ordered list of blocks
type File struct {
	Blocks []*Block
}

// NewBlock appends an empty block and returns it
func (f *File) NewBlock() *Block {
	b := &Block{}
	f.Blocks = append(f.Blocks, b)
	return b
}

// Render writes every non-empty block, one blank line between blocks.
// Each line ends with a newline, so the output ends with exactly one.
func (f *File) Render() []byte {
	var buf bytes.Buffer
	first := true
	for _, b := range f.Blocks {
		if b.Len() == 0 {
			continue
		}
		if !first {
			buf.WriteByte('\n')
		}
		first = false
		for _, line := range b.Lines {
			buf.WriteString(line.String())
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// Statement joins fragments of one long line with single spaces, skipping empty ones
func Statement(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

var quoteEscaper = strings.NewReplacer(`"`, `\"`)

// Quote returns s as a C++ string literal, escaping backslashes and quotes
func Quote(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// QuoteEscaped returns s as a C++ string literal for text whose backslashes
// are already escaped, such as route paths
func QuoteEscaped(s string) string {
	return `"` + quoteEscaper.Replace(s) + `"`
}
