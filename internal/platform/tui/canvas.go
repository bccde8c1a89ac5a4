package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is a foreground color for a canvas cell.
type Color uint8

// Confetti colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
)

// confettiColors are the colors particles are drawn in.
var confettiColors = []Color{
	ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan, ColorOrange,
}

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault: lipgloss.NewStyle(),
	ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// Cell is one character of a canvas.
type Cell struct {
	Rune  rune
	Color Color
}

// Canvas is a fixed-size character buffer the celebration draws into.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a blank canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
	c.Clear()
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the canvas with spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Set places a colored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (c *Canvas) DrawTextCentered(y int, text string, color Color) {
	runes := []rune(text)
	x := (c.width - len(runes)) / 2
	for i, r := range runes {
		c.Set(x+i, y, r, color)
	}
}

// Render converts the canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.width {
			start := c.cells[y][x].Color

			var run strings.Builder
			for x < c.width && c.cells[y][x].Color == start {
				run.WriteRune(c.cells[y][x].Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// String returns the canvas runes without styling.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := range c.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range c.width {
			sb.WriteRune(c.cells[y][x].Rune)
		}
	}
	return sb.String()
}
