package command

import (
	"fmt"
	"strings"
)

// Block is one line of a reply. Expandable blocks hold their lines in Children.
type Block struct {
	Text       string
	Bold       bool
	Expandable bool
	Children   []Block
}

// Message is a transport-neutral reply; transports render it to their markup
type Message struct {
	Blocks []Block
}

// Text is a plain line
func Text(format string, args ...any) Block {
	if len(args) == 0 {
		return Block{Text: format}
	}
	return Block{Text: fmt.Sprintf(format, args...)}
}

// Bold is an emphasized line
func Bold(format string, args ...any) Block {
	b := Text(format, args...)
	b.Bold = true
	return b
}

// Expandable groups lines that may be collapsed by the client
func Expandable(children ...Block) Block {
	return Block{Expandable: true, Children: children}
}

// NewMessage builds a message from blocks
func NewMessage(blocks ...Block) Message {
	return Message{Blocks: blocks}
}

// PlainMessage is a single-line message
func PlainMessage(format string, args ...any) Message {
	return NewMessage(Text(format, args...))
}

// Plain is a single-line message taken verbatim
func Plain(text string) Message {
	return NewMessage(Block{Text: text})
}

// IsEmpty reports whether there is nothing to send
func (m Message) IsEmpty() bool {
	return len(m.Blocks) == 0
}

// Renderer converts messages to a transport's markup
type Renderer interface {
	Render(m Message) string
}

// PlainRenderer drops all markup
type PlainRenderer struct{}

func (PlainRenderer) Render(m Message) string {
	return renderLines(m.Blocks, func(b Block) string { return b.Text },
		func(inner string) string { return inner })
}

// String renders without markup
func (m Message) String() string {
	return PlainRenderer{}.Render(m)
}

// RenderWith walks blocks, formatting leaf lines with line and expandable groups with quote
func RenderWith(m Message, line func(Block) string, quote func(string) string) string {
	return renderLines(m.Blocks, line, quote)
}

func renderLines(blocks []Block, line func(Block) string, quote func(string) string) string {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Expandable {
			parts = append(parts, quote(renderLines(b.Children, line, quote)))
			continue
		}
		parts = append(parts, line(b))
	}
	return strings.Join(parts, "\n")
}
