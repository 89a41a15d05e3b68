package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/neon-atom/vmath"
)

func TestPhaseRange(t *testing.T) {
	speeds := []float64{0.5, 1, 6, 6.5, 7, -3}
	for _, s := range speeds {
		for i := 0; i < 2000; i++ {
			elapsed := float64(i) * 0.0371
			p := Phase(elapsed, s)
			if p < 0 || p >= vmath.TwoPi {
				t.Fatalf("Phase(%v, %v) = %v outside [0, 2π)", elapsed, s, p)
			}
		}
	}
}

func TestPhasePeriodic(t *testing.T) {
	speeds := []float64{1, 6, 6.5, 7}
	for _, s := range speeds {
		period := vmath.TwoPi / s
		for i := 0; i < 200; i++ {
			elapsed := float64(i) * 0.173
			a := Phase(elapsed, s)
			b := Phase(elapsed+period, s)
			if vmath.AngleDist(a, b) > 1e-9 {
				t.Fatalf("speed %v: Phase(%v)=%v, Phase(+period)=%v", s, elapsed, a, b)
			}
		}
	}
}

func TestPhaseNoDrift(t *testing.T) {
	// Direct evaluation at a late time matches one fresh computation
	elapsed := 3600.123
	want := math.Mod(elapsed*6.5, vmath.TwoPi)
	if got := Phase(elapsed, 6.5); math.Abs(got-want) > 1e-12 {
		t.Errorf("Phase = %v, want %v", got, want)
	}
}

func TestPhaseScenario(t *testing.T) {
	// speed 6 at π/6 seconds is half a turn
	theta := Phase(math.Pi/6, 6)
	if math.Abs(theta-math.Pi) > 1e-9 {
		t.Fatalf("Phase = %v, want π", theta)
	}
	p := Position(1, 0.38, theta)
	if !vecNear(p, mgl64.Vec3{0, -0.38, 0}, 1e-9) {
		t.Errorf("Position at π = %v, want (0, -0.38, 0)", p)
	}
}

func TestRevolutions(t *testing.T) {
	if n := Revolutions(0, 6); n != 0 {
		t.Errorf("Revolutions at 0 = %d", n)
	}
	if n := Revolutions(vmath.TwoPi/6*3+0.01, 6); n != 3 {
		t.Errorf("Revolutions after three turns = %d", n)
	}
}

func TestPositionOnEllipse(t *testing.T) {
	a, b := 2.75, 2.75*0.38
	for i := 0; i < 360; i++ {
		theta := float64(i) * vmath.TwoPi / 360
		p := Position(a, b, theta)
		if n := vmath.EllipseNormSq(p.X(), p.Y(), a, b); math.Abs(n-1) > 1e-9 {
			t.Fatalf("θ=%v: (x/a)²+(y/b)² = %v", theta, n)
		}
		if p.Z() != 0 {
			t.Fatalf("θ=%v: z = %v", theta, p.Z())
		}
	}
}

func TestInstanceUpdateScenario(t *testing.T) {
	o := &Instance{Path: FullEllipse(3, 1.15, 150), Speed: 6}
	if o.Electron.Valid {
		t.Fatal("electron valid before first update")
	}

	o.Update(0, mgl64.Ident4())
	if !o.Electron.Valid {
		t.Fatal("electron not valid after update")
	}
	want := mgl64.Vec3{0, 1.15, 0}
	if !vecNear(o.Electron.World, want, 1e-12) {
		t.Errorf("θ=0 world position = %v, want %v", o.Electron.World, want)
	}

	o.Reset()
	if o.Electron.Valid {
		t.Error("electron valid after reset")
	}
}

func TestInstanceUpdateRotatedPlane(t *testing.T) {
	o := &Instance{
		Path:     FullEllipse(3, 1.15, 150),
		Rotation: vmath.Euler{Z: math.Pi / 2},
		Speed:    1,
	}
	o.Update(0, mgl64.Ident4())

	// Local (0, 1.15) turned a quarter about Z lands on -X
	want := mgl64.Vec3{-1.15, 0, 0}
	if !vecNear(o.Electron.World, want, 1e-12) {
		t.Errorf("world = %v, want %v", o.Electron.World, want)
	}
	if !vecNear(o.Electron.Local, mgl64.Vec3{0, 1.15, 0}, 1e-12) {
		t.Errorf("local = %v, want (0, 1.15, 0)", o.Electron.Local)
	}

	// Parent translation is applied after the plane rotation
	o.Update(0, mgl64.Translate3D(0, 2, 0))
	if !vecNear(o.Electron.World, mgl64.Vec3{-1.15, 2, 0}, 1e-12) {
		t.Errorf("translated world = %v", o.Electron.World)
	}
}

func TestDriftOffset(t *testing.T) {
	d := Drift{Axis: AxisY, Amplitude: 0.2, Frequency: 1}
	if off := d.Offset(0); !off.IsZero() {
		t.Errorf("offset at t=0 = %+v", off)
	}
	off := d.Offset(math.Pi / 2)
	if math.Abs(off.Y-0.2) > 1e-12 || off.X != 0 || off.Z != 0 {
		t.Errorf("offset at quarter period = %+v", off)
	}

	// Stateless: same input gives same output regardless of call history
	for i := 0; i < 10; i++ {
		d.Offset(float64(i))
	}
	if again := d.Offset(math.Pi / 2); again != off {
		t.Errorf("offset changed across calls: %+v vs %+v", again, off)
	}

	if (Drift{}).Offset(5) != (vmath.Euler{}) {
		t.Error("zero drift produced an offset")
	}
}

func TestParseAxis(t *testing.T) {
	tests := map[string]Axis{"x": AxisX, "X": AxisX, "y": AxisY, "z": AxisZ, "": AxisY, "w": AxisY}
	for in, want := range tests {
		if got := ParseAxis(in); got != want {
			t.Errorf("ParseAxis(%q) = %v, want %v", in, got, want)
		}
	}
}
