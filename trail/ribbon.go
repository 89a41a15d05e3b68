package trail

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// RibbonPoint is one cross-section of the ribbon in world space
type RibbonPoint struct {
	Pos     mgl64.Vec3
	T       float64 // 0 at head, 1 at a full trail's tail
	Width   float64
	Opacity float64
}

// Ribbon is the drawable form of a trail, head first
// PointOnly is set when there is no ribbon geometry: capacity of one, or a single sample
type Ribbon struct {
	Points    []RibbonPoint
	Color     colorful.Color
	PointOnly bool
}

// Empty reports whether there is nothing to draw
func (r Ribbon) Empty() bool {
	return len(r.Points) == 0
}

// Ribbon builds the drawable ribbon at time now
// dst storage is reused when provided
func (t *Trail) Ribbon(now float64, dst []RibbonPoint) Ribbon {
	s := t.settings
	dst = dst[:0]

	denom := float64(s.MaxLength - 1)
	for i := 0; i < t.buf.Len(); i++ {
		sample, _ := t.buf.At(i)

		param := 0.0
		if denom > 0 {
			param = float64(i) / denom
		}
		att := s.Attenuation.eval(param)

		age := now - sample.Time
		if age < 0 {
			age = 0
		}
		fade := math.Exp(-s.Decay * age)

		dst = append(dst, RibbonPoint{
			Pos:     sample.Pos,
			T:       param,
			Width:   s.Width * att,
			Opacity: att * fade,
		})
	}

	return Ribbon{
		Points:    dst,
		Color:     s.Color,
		PointOnly: s.MaxLength <= 1 || len(dst) == 1,
	}
}
