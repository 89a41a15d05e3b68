package orbit

import (
	"math"

	"github.com/lixenwraith/neon-atom/vmath"
)

// Axis selects a rotation component
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis maps "x", "y", "z" to an Axis, unknown names fall back to AxisY
func ParseAxis(s string) Axis {
	switch s {
	case "x", "X":
		return AxisX
	case "z", "Z":
		return AxisZ
	default:
		return AxisY
	}
}

// Drift is a slow sinusoidal wobble layered on a fixed plane rotation
type Drift struct {
	Axis      Axis
	Amplitude float64
	Frequency float64 // radians per second
	Phase     float64
}

// Offset returns the rotation offset at elapsed seconds
func (d Drift) Offset(elapsed float64) vmath.Euler {
	if d.Amplitude == 0 {
		return vmath.Euler{}
	}
	v := d.Amplitude * math.Sin(d.Frequency*elapsed+d.Phase)
	switch d.Axis {
	case AxisX:
		return vmath.Euler{X: v}
	case AxisZ:
		return vmath.Euler{Z: v}
	default:
		return vmath.Euler{Y: v}
	}
}
