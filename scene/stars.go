package scene

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// StarSettings describe the starfield shell
type StarSettings struct {
	Count      int
	Radius     float64
	Depth      float64
	Factor     float64
	Saturation float64
	Lightness  float64
	Speed      float64
	Seed       uint64
}

// Starfield is a seeded cloud of stars on nested spherical shells
type Starfield struct {
	Points []mgl64.Vec3
	Colors []colorful.Color
	Base   []float64
	speed  float64
}

// NewStarfield generates count stars, the same seed always yields the same field
// Shell radius shrinks from radius+depth inward by a random fraction of depth/count per star
func NewStarfield(s StarSettings) *Starfield {
	if s.Count < 0 {
		s.Count = 0
	}
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed))
	f := &Starfield{
		Points: make([]mgl64.Vec3, s.Count),
		Colors: make([]colorful.Color, s.Count),
		Base:   make([]float64, s.Count),
		speed:  s.Speed,
	}

	r := s.Radius + s.Depth
	step := 0.0
	if s.Count > 0 {
		step = s.Depth / float64(s.Count)
	}
	for i := 0; i < s.Count; i++ {
		r -= step * rng.Float64()
		// Uniform direction on the sphere
		polar := math.Acos(1 - 2*rng.Float64())
		azimuth := rng.Float64() * 2 * math.Pi
		sp, cp := math.Sincos(polar)
		sa, ca := math.Sincos(azimuth)
		f.Points[i] = mgl64.Vec3{r * sp * sa, r * cp, r * sp * ca}

		lr, lg, lb := colorful.Hsl(360*float64(i)/float64(s.Count), s.Saturation, s.Lightness).LinearRgb()
		f.Colors[i] = colorful.Color{R: lr, G: lg, B: lb}
		f.Base[i] = (0.5 + 0.5*rng.Float64()) * s.Factor
	}
	return f
}

// Len returns the star count
func (f *Starfield) Len() int {
	return len(f.Points)
}

// Sizes writes the twinkling sizes at elapsed seconds into dst
func (f *Starfield) Sizes(elapsed float64, dst []float64) []float64 {
	if cap(dst) < len(f.Base) {
		dst = make([]float64, len(f.Base))
	}
	dst = dst[:len(f.Base)]
	k := (3 + math.Sin(elapsed*f.speed+100)) / 3
	for i, b := range f.Base {
		dst[i] = b * k
	}
	return dst
}
