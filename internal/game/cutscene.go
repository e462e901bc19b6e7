package game

import "github.com/vovakirdan/mias-adventure/internal/levels"

// captionDelay is how long a cutscene phase stays silent before its caption.
const captionDelay = 30

// Cutscene plays the timed captions between levels, then a stretch of black.
type Cutscene struct {
	messages []levels.Line
	gap      int
	black    int

	phase int
	timer int // Ticks within the current phase, or within the black tail
	tick  int // Ticks since the cutscene began
}

func newCutscene(messages []levels.Line, gap, black int) *Cutscene {
	return &Cutscene{messages: messages, gap: gap, black: black}
}

// Update advances one tick. whisper is true on the first tick of each
// message; done is true once the black tail has run out.
func (c *Cutscene) Update() (whisper, done bool) {
	c.tick++
	c.timer++

	if c.phase < len(c.messages) {
		whisper = c.timer == 1
		if c.timer > c.messages[c.phase].Ticks()+c.gap {
			c.phase++
			c.timer = 0
		}
		return whisper, false
	}

	return false, c.timer >= c.black
}

// View returns the renderable cutscene state.
func (c *Cutscene) View() CutsceneView {
	v := CutsceneView{Tick: c.tick, Black: c.phase >= len(c.messages)}
	if !v.Black && c.timer > captionDelay {
		v.Caption = c.messages[c.phase].Text
		v.Fade = min(float64(c.timer-captionDelay)/captionDelay, 1)
	}
	return v
}

// CutsceneView is the cutscene part of a snapshot.
type CutsceneView struct {
	Tick    int
	Caption string  // Empty while the caption is still hidden
	Fade    float64 // Caption opacity 0..1
	Black   bool    // Past the last message
}
