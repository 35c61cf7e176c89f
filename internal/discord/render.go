package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/SkinBot_Go/internal/command"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
	">", `\>`,
)

// MarkdownRenderer renders messages as Discord markdown. Expandable blocks become block quotes.
type MarkdownRenderer struct{}

func (MarkdownRenderer) Render(m command.Message) string {
	return command.RenderWith(m, markdownLine, markdownQuote)
}

func markdownLine(b command.Block) string {
	text := markdownEscaper.Replace(b.Text)
	if b.Bold && strings.TrimSpace(text) != "" {
		return "**" + text + "**"
	}
	return text
}

func markdownQuote(inner string) string {
	lines := strings.Split(inner, "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n")
}

// buildEmbed turns a response into an embed, attaching the photo when there is one
func buildEmbed(resp command.Response, color int) *discordgo.MessageEmbed {
	embed := createEmbed("", truncate(MarkdownRenderer{}.Render(resp.Message), maxEmbedDesc), color, "")
	if resp.PhotoURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: resp.PhotoURL}
	}
	return embed
}

// createEmbed creates a standard embed. An empty footer uses FooterSkinBot.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterSkinBot
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit-1]) + "…"
}
