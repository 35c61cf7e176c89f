package telegram

import (
	"html"

	"github.com/osse101/SkinBot_Go/internal/command"
)

// HTMLRenderer renders messages in Telegram's HTML parse mode
type HTMLRenderer struct{}

func (HTMLRenderer) Render(m command.Message) string {
	return command.RenderWith(m,
		func(b command.Block) string {
			text := html.EscapeString(b.Text)
			if b.Bold {
				return "<b>" + text + "</b>"
			}
			return text
		},
		func(inner string) string {
			return "<blockquote expandable>" + inner + "</blockquote>"
		},
	)
}
