// Package markup flattens a post's pre-rendered HTML into text blocks for
// surfaces that cannot display HTML.
//
// The conversion is lossy by intent: inline styling and links collapse into
// their text, images into their alt text, and scripts, styles and embedded
// documents are dropped. Block structure (headings, paragraphs, list items,
// quotes and preformatted text) is kept.
package markup

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind classifies a Block.
type Kind int

const (
	Paragraph Kind = iota
	Heading
	ListItem
	Quote
	Preformatted
)

func (k Kind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case ListItem:
		return "list-item"
	case Quote:
		return "quote"
	case Preformatted:
		return "preformatted"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Block is one run of text with a block-level role. Level is the heading
// level for headings and the nesting depth for list items.
type Block struct {
	Kind  Kind
	Level int
	Text  string
}

// Bullet is the prefix PlainText puts before list items.
const Bullet = "• "

var skipped = map[atom.Atom]bool{
	atom.Head:     true,
	atom.Script:   true,
	atom.Style:    true,
	atom.Template: true,
	atom.Noscript: true,
	atom.Iframe:   true,
	atom.Object:   true,
	atom.Svg:      true,
}

var headings = map[atom.Atom]int{
	atom.H1: 1, atom.H2: 2, atom.H3: 3,
	atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

var blocks = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Section:    true,
	atom.Article:    true,
	atom.Header:     true,
	atom.Footer:     true,
	atom.Aside:      true,
	atom.Nav:        true,
	atom.Main:       true,
	atom.Figure:     true,
	atom.Figcaption: true,
	atom.Table:      true,
	atom.Tr:         true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Dd:         true,
	atom.Hr:         true,
	atom.Details:    true,
	atom.Summary:    true,
	atom.Address:    true,
}

// Parse splits markup into blocks in document order. Empty blocks are
// dropped.
func Parse(markup string) ([]Block, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("markup: parse: %w", err)
	}

	b := &builder{}
	for _, n := range nodes {
		b.walk(n)
	}
	b.flush()

	return b.blocks, nil
}

// PlainText renders markup as text: blocks separated by a blank line, list
// items prefixed with Bullet and indented by depth.
func PlainText(markup string) (string, error) {
	parsed, err := Parse(markup)
	if err != nil {
		return "", err
	}
	return Join(parsed), nil
}

// Join renders blocks the way PlainText does.
func Join(blocks []Block) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		parts = append(parts, block.Plain())
	}
	return strings.Join(parts, "\n\n")
}

// Plain returns the block's text with its list prefix, if any.
func (b Block) Plain() string {
	if b.Kind != ListItem {
		return b.Text
	}
	indent := strings.Repeat("  ", max(b.Level-1, 0))
	return indent + Bullet + b.Text
}

type builder struct {
	blocks []Block
	buf    strings.Builder

	kind  Kind
	level int
	lists int
	pre   int
}

func (b *builder) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.text(n.Data)
		return
	case html.ElementNode:
	case html.DocumentNode:
		b.children(n)
		return
	default:
		return
	}

	if skipped[n.DataAtom] {
		return
	}

	switch n.DataAtom {
	case atom.Br:
		b.buf.WriteByte('\n')
		return
	case atom.Img:
		if alt := attr(n, "alt"); alt != "" {
			b.text(alt)
		}
		return
	case atom.Td, atom.Th:
		if b.buf.Len() > 0 {
			b.text(" ")
		}
		b.children(n)
		return
	}

	if level, ok := headings[n.DataAtom]; ok {
		b.block(Heading, level, n)
		return
	}

	switch n.DataAtom {
	case atom.Li:
		b.block(ListItem, b.lists, n)
	case atom.Blockquote:
		b.block(Quote, 0, n)
	case atom.Pre:
		b.pre++
		b.block(Preformatted, 0, n)
		b.pre--
	case atom.Ul, atom.Ol:
		b.lists++
		b.block(b.kind, b.level, n)
		b.lists--
	default:
		if blocks[n.DataAtom] {
			b.block(b.inherited(), b.level, n)
			return
		}
		b.children(n)
	}
}

// inherited keeps the role of an enclosing list item or quote for plain
// containers such as a paragraph inside a list item.
func (b *builder) inherited() Kind {
	switch b.kind {
	case ListItem, Quote, Preformatted:
		return b.kind
	default:
		return Paragraph
	}
}

func (b *builder) block(kind Kind, level int, n *html.Node) {
	b.flush()
	prevKind, prevLevel := b.kind, b.level
	b.kind, b.level = kind, level

	b.children(n)
	b.flush()

	b.kind, b.level = prevKind, prevLevel
}

func (b *builder) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.walk(c)
	}
}

func (b *builder) text(s string) {
	if b.pre > 0 {
		b.buf.WriteString(s)
		return
	}

	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && !b.atBreak() {
			b.buf.WriteByte(' ')
		}
		space = false
		b.buf.WriteRune(r)
	}
	if space && !b.atBreak() {
		b.buf.WriteByte(' ')
	}
}

func (b *builder) atBreak() bool {
	s := b.buf.String()
	return s == "" || strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\n")
}

func (b *builder) flush() {
	text := b.buf.String()
	b.buf.Reset()

	if b.kind == Preformatted {
		text = strings.TrimPrefix(text, "\n")
		text = strings.TrimRight(text, "\n")
	} else {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
		text = strings.Trim(strings.Join(lines, "\n"), "\n")
	}

	if strings.TrimSpace(text) == "" {
		return
	}

	b.blocks = append(b.blocks, Block{Kind: b.kind, Level: b.level, Text: text})
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
