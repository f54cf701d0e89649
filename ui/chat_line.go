package ui

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ChatLine is a single-line text entry opened during play.
type ChatLine struct {
	open   bool
	buf    []rune
	runes  []rune
	maxLen int
}

func NewChatLine(maxLen int) *ChatLine {
	return &ChatLine{maxLen: maxLen}
}

func (c *ChatLine) Open() {
	c.open = true
	c.buf = c.buf[:0]
}

func (c *ChatLine) IsOpen() bool { return c.open }

func (c *ChatLine) Text() string { return string(c.buf) }

// Update reads typed characters. It returns the line and true when Enter
// submits it. Escape closes the line without sending.
func (c *ChatLine) Update() (string, bool) {
	if !c.open {
		return "", false
	}

	c.runes = ebiten.AppendInputChars(c.runes[:0])
	for _, r := range c.runes {
		if c.maxLen > 0 && len(c.buf) >= c.maxLen {
			break
		}
		if r == utf8.RuneError || r < ' ' {
			continue
		}
		c.buf = append(c.buf, r)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(c.buf) > 0 {
		c.buf = c.buf[:len(c.buf)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		c.open = false
		return "", false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		c.open = false
		return string(c.buf), true
	}
	return "", false
}
