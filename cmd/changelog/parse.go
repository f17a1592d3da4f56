package main

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Entry is one released (or unreleased) version section.
type Entry struct {
	Version string
	Date    string
	Body    string
}

// Changelog is a parsed Keep a Changelog document.
type Changelog struct {
	Entries []Entry
	Links   map[string]string
}

// Find returns the entry for version, tolerating a leading "v".
func (c *Changelog) Find(version string) *Entry {
	version = strings.TrimPrefix(version, "v")
	for i := range c.Entries {
		if strings.TrimPrefix(c.Entries[i].Version, "v") == version {
			return &c.Entries[i]
		}
	}
	return nil
}

// Parse walks the markdown AST and slices the source into version entries,
// one per level-2 heading.
func Parse(source []byte) (*Changelog, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	doc := md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	c := &Changelog{Links: map[string]string{}}
	for _, ref := range ctx.References() {
		c.Links[string(ref.Label())] = string(ref.Destination())
	}

	type section struct {
		version, date string
		start, end    int
	}
	var sections []section

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		heading, ok := n.(*ast.Heading)
		if !entering || !ok || heading.Level != 2 {
			return ast.WalkContinue, nil
		}

		version, date := splitHeading(headingText(heading, source))
		lines := heading.Lines()
		s := section{version: version, date: date}
		if lines.Len() > 0 {
			s.start = lines.At(0).Start
			s.end = lines.At(lines.Len() - 1).Stop
		}
		sections = append(sections, s)
		return ast.WalkContinue, nil
	})

	for i, s := range sections {
		bodyEnd := len(source)
		if i+1 < len(sections) {
			bodyEnd = sections[i+1].start
		}
		body := ""
		if s.end < bodyEnd {
			body = strings.TrimSpace(string(source[s.end:bodyEnd]))
		}
		c.Entries = append(c.Entries, Entry{Version: s.version, Date: s.date, Body: body})
	}

	return c, nil
}

// headingText flattens the text of a heading, including text inside links.
func headingText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			if t, ok := child.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
				continue
			}
			walk(child)
		}
	}
	walk(node)
	return buf.String()
}

// splitHeading parses "[1.2.3] - 2024-02-21" into version and date. The
// brackets are optional.
func splitHeading(heading string) (version, date string) {
	heading = strings.TrimSpace(strings.TrimPrefix(heading, "["))
	heading = strings.Replace(heading, "]", "", 1)
	version = heading
	if idx := strings.Index(heading, " - "); idx != -1 {
		version = strings.TrimSpace(heading[:idx])
		date = strings.TrimSpace(heading[idx+3:])
	}
	return version, date
}
