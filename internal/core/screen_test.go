package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)
	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("size = %dx%d, expected 10x5", s.Width(), s.Height())
	}
	for y := 0; y < 5; y++ {
		if s.Row(y) != strings.Repeat(" ", 10) {
			t.Errorf("row %d not blank: %q", y, s.Row(y))
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 2, '@', ColorPlayer)

	c := s.GetCell(1, 2)
	if c.Rune != '@' || c.Color != ColorPlayer {
		t.Errorf("GetCell() = %+v, expected @/player", c)
	}

	// Out of bounds is ignored and reads as blank
	s.SetCell(-1, 0, 'x', ColorBlood)
	s.SetCell(4, 0, 'x', ColorBlood)
	if got := s.GetCell(10, 10); got.Rune != ' ' {
		t.Errorf("out-of-bounds GetCell() = %q, expected space", got.Rune)
	}
}

func TestScreenDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(2, 0, "hello")
	if s.Row(0) != "  hel" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "  hel")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorText)
	if s.Row(0) != "    abc    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorText {
		t.Errorf("centered text lost its color")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 3)
	s.FillRect(NewRect(1, 1, 3, 1), '=', ColorPlatform)
	expected := "     \n === \n     "
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorDim)
	expected := "┌──┐\n│  │\n└──┘"
	if s.String() != expected {
		t.Errorf("String() = %q, expected %q", s.String(), expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Set(0, 0, 'x')
	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size after Resize = %dx%d", s.Width(), s.Height())
	}
	if s.Get(0, 0) != ' ' {
		t.Errorf("Resize should clear the buffer")
	}
}
