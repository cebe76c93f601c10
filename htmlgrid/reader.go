// Package htmlgrid extracts letter grids from HTML pages.
//
// Word search puzzles published on the web are usually laid out as a
// <table> with one letter per cell, or as a <pre> block with one row per
// line and letters optionally separated by spaces. The first <table> in the
// document wins; without one, the first <pre> block is used.
//
//	rows, err := htmlgrid.Open("puzzle.html")
//	if err != nil {
//	    // ErrNoGrid if the page has neither element
//	}
//	g, err := grid.Parse(strings.Join(rows, "\n"))
package htmlgrid

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// ErrNoGrid is returned when the document has no table or pre element with
// content.
var ErrNoGrid = errors.New("htmlgrid: no table or pre element found")

// Open reads an HTML file and returns its grid rows.
func Open(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Extract(f)
}

// Extract parses HTML from r and returns one string per grid row. Whitespace
// inside a row is removed. Rows are not checked for equal length; that is
// left to the grid package.
func Extract(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	if table := findElement(doc, "table"); table != nil {
		if rows := tableRows(table); len(rows) > 0 {
			return rows, nil
		}
	}

	if pre := findElement(doc, "pre"); pre != nil {
		if rows := preRows(pre); len(rows) > 0 {
			return rows, nil
		}
	}

	return nil, ErrNoGrid
}

// tableRows returns the text of each row of table. Rows of nested tables
// and rows without td or th cells are skipped. Blank rows before and after
// the grid are dropped; blank rows inside it are kept so that the grid
// package can reject them.
func tableRows(table *html.Node) []string {
	var rows []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "table":
				// nested table
			case "tr":
				if row, ok := rowText(c); ok {
					rows = append(rows, row)
				}
			default:
				walk(c)
			}
		}
	}
	walk(table)
	return trimBlank(rows)
}

// rowText concatenates the letters of every td and th directly under tr.
// It reports false when tr has no cells at all.
func rowText(tr *html.Node) (string, bool) {
	var sb strings.Builder
	cells := false
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = true
			sb.WriteString(stripSpace(getTextContent(c)))
		}
	}
	return sb.String(), cells
}

// preRows splits a pre block into rows. Blank lines before and after the
// grid are dropped; blank lines inside it are kept so that the grid package
// can reject them.
func preRows(pre *html.Node) []string {
	lines := strings.Split(getTextContent(pre), "\n")
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, stripSpace(line))
	}
	return trimBlank(rows)
}

// trimBlank drops empty rows at both ends of rows.
func trimBlank(rows []string) []string {
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}

// findElement returns the first element named tagName in document order.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts all text content from a node and its descendants.
// A br element becomes a newline.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return result.String()
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style":
			return
		case "br":
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
