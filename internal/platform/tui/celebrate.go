package tui

import (
	"math/rand"

	"github.com/vovakirdan/goal-bingo/internal/config"
)

var confettiGlyphs = []rune{'*', '+', '•', '◆', '▪', '✦', '~'}

// particle is one confetti piece in unit coordinates; the canvas scales
// them to its size when rendering.
type particle struct {
	x, y   float64
	vx, vy float64
	glyph  rune
	color  Color
}

// burst is one celebration. It emits fewer particles as it runs out and
// ends by itself after a fixed number of frames.
type burst struct {
	label     string
	frame     int
	particles []particle
}

// Celebration animates overlapping confetti bursts. Each trigger is
// independent; the animation stops once every burst has run its frames.
type Celebration struct {
	rng      *rand.Rand
	frames   int
	perFrame int
	tickRate int
	bursts   []burst
}

// NewCelebration creates an idle celebration.
func NewCelebration(cfg config.CelebrationConfig, rng *rand.Rand) Celebration {
	return Celebration{
		rng:      rng,
		frames:   max(cfg.Frames(), 1),
		perFrame: cfg.Particles,
		tickRate: max(cfg.TickRate, 1),
	}
}

// Trigger starts a new burst showing label.
func (c *Celebration) Trigger(label string) {
	c.bursts = append(c.bursts, burst{label: label})
}

// Active reports whether any burst is still running.
func (c Celebration) Active() bool {
	return len(c.bursts) > 0
}

// Label returns the text of the newest running burst.
func (c Celebration) Label() string {
	if len(c.bursts) == 0 {
		return ""
	}
	return c.bursts[len(c.bursts)-1].label
}

// TickRate returns the animation frame rate.
func (c Celebration) TickRate() int {
	return c.tickRate
}

// Step advances every burst by one frame and drops finished ones.
func (c *Celebration) Step() {
	live := c.bursts[:0]
	for _, b := range c.bursts {
		b.frame++
		if b.frame > c.frames {
			continue
		}

		moved := b.particles[:0]
		for _, p := range b.particles {
			p.x += p.vx
			p.y += p.vy
			p.vy += 0.02
			if p.y <= 1 && p.x >= 0 && p.x <= 1 {
				moved = append(moved, p)
			}
		}
		b.particles = moved

		remaining := c.frames - b.frame
		for range c.perFrame * remaining / c.frames {
			b.particles = append(b.particles, c.spawn())
		}
		live = append(live, b)
	}
	c.bursts = live
}

func (c *Celebration) spawn() particle {
	return particle{
		x:     c.rng.Float64(),
		y:     c.rng.Float64() * 0.2,
		vx:    (c.rng.Float64() - 0.5) * 0.08,
		vy:    0.08 + c.rng.Float64()*0.12,
		glyph: confettiGlyphs[c.rng.Intn(len(confettiGlyphs))],
		color: confettiColors[c.rng.Intn(len(confettiColors))],
	}
}

// Render draws all particles and the newest label onto a canvas.
func (c Celebration) Render(width, height int) string {
	canvas := NewCanvas(width, height)
	for _, b := range c.bursts {
		for _, p := range b.particles {
			x := int(p.x * float64(width-1))
			y := int(p.y * float64(height-1))
			canvas.Set(x, y, p.glyph, p.color)
		}
	}
	if label := c.Label(); label != "" {
		canvas.DrawTextCentered(height/2, " "+label+" ", ColorYellow)
	}
	return canvas.Render()
}
