// Package xmltree builds ordered XML element trees with an explicit cursor.
//
// A Builder starts with the root element open. Open descends into a new child,
// Up returns to the parent and Elem appends a leaf without moving the cursor:
//
//	b := xmltree.New("result")
//	b.Elem("has_error", 0).Elem("version", 1)
//	b.Open("posts")
//	// ...
//	b.Up()
//	out, err := b.String(true)
//
// String refuses to serialize a tree whose cursor is not back at the root.
package xmltree

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

// Declaration prefixes every serialized document.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

const indentSpaces = 2

type Builder struct {
	doc    *etree.Document
	cursor *etree.Element
	depth  int
	err    error
}

func New(root string) *Builder {
	doc := etree.NewDocument()
	return &Builder{
		doc:    doc,
		cursor: doc.CreateElement(root),
		depth:  1,
	}
}

// Elem appends a child to the current element. A nil value leaves the child
// empty; it is still written with an explicit end tag.
func (b *Builder) Elem(name string, value any) *Builder {
	el := b.cursor.CreateElement(name)
	if value != nil {
		el.SetText(Format(value))
	}
	return b
}

// Open appends a child and makes it the current element.
func (b *Builder) Open(name string) *Builder {
	b.cursor = b.cursor.CreateElement(name)
	b.depth++
	return b
}

// Up closes the current element and moves back to its parent.
func (b *Builder) Up() *Builder {
	if b.depth <= 1 {
		b.err = ErrUnbalanced
		return b
	}
	b.cursor = b.cursor.Parent()
	b.depth--
	return b
}

// Depth is the number of open elements, root included.
func (b *Builder) Depth() int {
	return b.depth
}

// String serializes the tree behind the XML declaration. Pretty output is
// indented with two spaces; compact output carries no whitespace between tags.
func (b *Builder) String(pretty bool) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.depth != 1 {
		return "", fmt.Errorf("%w: %d elements still open", ErrUnbalanced, b.depth-1)
	}

	doc := b.doc.Copy()
	doc.WriteSettings = etree.WriteSettings{
		CanonicalEndTags: true,
		CanonicalText:    true,
		CanonicalAttrVal: true,
	}
	if pretty {
		settings := etree.NewIndentSettings()
		settings.Spaces = indentSpaces
		settings.PreserveLeafWhitespace = true
		doc.IndentWithSettings(settings)
	}

	body, err := doc.WriteToString()
	if err != nil {
		return "", err
	}

	return Declaration + body, nil
}

// Format renders a scalar the way the console clients expect it. Booleans
// are written as 0 or 1.
func Format(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
