package core

// Color is the role of a screen cell. Themes map roles to terminal colours,
// so the same board renders in both light and dark mode.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBorder
	ColorGrid
	ColorBody
	ColorHead
	ColorTarget
	ColorText
	ColorAccent
	ColorDim
	ColorAlert
)
