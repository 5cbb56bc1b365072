package engine

import (
	"math"

	"github.com/vovakirdan/sprite-tutorial/internal/core"
)

// Rotation constants in radians, 0 pointing right and increasing
// counter-clockwise.
const (
	RotationEast      float32 = 0
	RotationNorthEast float32 = math.Pi / 4
	RotationNorth     float32 = math.Pi / 2
	RotationNorthWest float32 = 3 * math.Pi / 4
	RotationWest      float32 = math.Pi
	RotationSouthWest float32 = 5 * math.Pi / 4
	RotationSouth     float32 = 3 * math.Pi / 2
	RotationSouthEast float32 = 7 * math.Pi / 4
)

// Sprite is a drawable, optionally collidable entity.
type Sprite struct {
	Label       string
	Preset      string
	Translation core.Vec2
	Rotation    float32 // Radians
	Scale       float32
	Layer       float32 // Higher layers draw on top
	Collision   bool

	size core.Vec2
}

// Collider returns the sprite's axis-aligned collision box in world units.
// Rotation does not affect the box.
func (s *Sprite) Collider() core.Box {
	return core.NewBox(s.Translation, s.size.X*s.Scale, s.size.Y*s.Scale)
}

// Heading returns which of the eight compass directions the rotation is
// closest to, 0 being east and counting counter-clockwise.
func (s *Sprite) Heading() int {
	r := math.Mod(float64(s.Rotation), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return int(math.Round(r/(math.Pi/4))) % 8
}

// Text is a string drawn centred at Translation.
type Text struct {
	Label       string
	Value       string
	Translation core.Vec2
	FontSize    float32
	Layer       float32
}
