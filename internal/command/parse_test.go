package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SkinBot_Go/internal/domain"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		text     string
		wantCmd  string
		wantArgs string
		wantOK   bool
	}{
		{"/skin red fox", "skin", "red fox", true},
		{"/Add@SkinBot red fox: 2", "add", "red fox: 2", true},
		{"/inv", "inv", "", true},
		{"/add\nred fox: 1", "add", "red fox: 1", true},
		{"  /col   wild west  ", "col", "wild west", true},
		{"да", "", "", false},
		{"/", "", "", false},
		{"/@bot", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd, args, ok := ParseText(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestTargetKey(t *testing.T) {
	assert.Equal(t, "100", TargetKey(domain.PlatformTelegram, "100"))
	assert.Equal(t, "discord-100", TargetKey(domain.PlatformDiscord, "100"))
	assert.Equal(t, "discord-100", TargetKey(domain.PlatformTelegram, "discord-100"))
}

func TestSplitQuantity(t *testing.T) {
	name, qty, ok := splitQuantity(" Red Fox : 12 ")
	assert.True(t, ok)
	assert.Equal(t, "Red Fox", name)
	assert.Equal(t, "12", qty)

	name, _, ok = splitQuantity("Red Fox")
	assert.False(t, ok)
	assert.Equal(t, "Red Fox", name)
}

func TestPlainRendering(t *testing.T) {
	m := NewMessage(
		Text("head"),
		Expandable(Bold("Rare:"), Text("      Red Fox")),
		Text("total %d", 3),
	)
	assert.Equal(t, "head\nRare:\n      Red Fox\ntotal 3", m.String())
	assert.False(t, m.IsEmpty())
	assert.True(t, Message{}.IsEmpty())
}

func TestPlain_KeepsPercentVerbatim(t *testing.T) {
	assert.Equal(t, "скидка 50% %s", Plain("скидка 50% %s").String())
}
