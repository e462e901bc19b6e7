package core

// Color is a palette slot for a screen cell. The terminal host maps each slot
// to a concrete style.
type Color uint8

// Palette slots used by the platformer renderer.
const (
	ColorDefault Color = iota
	ColorSky
	ColorPlatform
	ColorBlood
	ColorPlayer
	ColorGoal
	ColorKey
	ColorDoor
	ColorDoorOpen
	ColorChaser
	ColorText
	ColorDim
	ColorSpeaker
	ColorHighlight
	ColorPhone
	ColorGlitch
)
