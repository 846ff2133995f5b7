package polyplay

import (
	"math"
	"testing"
)

func TestZoomInTenSteps(t *testing.T) {
	s, f := mounted()
	for range 10 {
		s.ZoomIn()
	}
	if got := s.Zoom(); math.Abs(got-1.05) > eps {
		t.Errorf("Zoom() after 10 ZoomIn = %v, want 1.05", got)
	}
	if len(f.zooms) != 10 {
		t.Fatalf("%d ZoomToPoint calls, want 10", len(f.zooms))
	}
	for _, c := range f.zooms {
		if c.focal != Pt(400, 300) {
			t.Errorf("zoom focal = %v, want viewport centre (400, 300)", c.focal)
		}
	}
	if got := f.vpt.Scale(); math.Abs(got-1.05) > eps {
		t.Errorf("transform scale = %v, want 1.05", got)
	}
}

func TestZoomInOutIdentity(t *testing.T) {
	tests := []struct {
		name  string
		start int // ZoomIn steps before the round trip
	}{
		{"from one", 0},
		{"zoomed in", 40},
		{"zoomed out", -60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := mounted()
			for range max(tt.start, 0) {
				s.ZoomIn()
			}
			for range max(-tt.start, 0) {
				s.ZoomOut()
			}
			before := s.Zoom()

			s.ZoomIn()
			s.ZoomOut()
			if got := s.Zoom(); math.Abs(got-before) > eps {
				t.Errorf("ZoomIn;ZoomOut: %v -> %v", before, got)
			}
			s.ZoomOut()
			s.ZoomIn()
			if got := s.Zoom(); math.Abs(got-before) > eps {
				t.Errorf("ZoomOut;ZoomIn: %v -> %v", before, got)
			}
		})
	}
}

func TestZoomStaysInBounds(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"linear", nil},
		{"coarse step", []Option{WithZoomStep(0.25)}},
		{"exponential", []Option{WithExponentialZoom(0.999)}},
		{"custom bounds", []Option{WithZoomBounds(0.8, 1.2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := mounted(tt.opts...)
			s.EnableWheelZoom()
			lo, hi := s.ZoomBounds()
			check := func(op string) {
				t.Helper()
				if z := s.Zoom(); z < lo || z > hi {
					t.Fatalf("after %s: zoom %v outside [%v, %v]", op, z, lo, hi)
				}
			}
			for range 5000 {
				s.ZoomIn()
				check("ZoomIn")
			}
			if s.Zoom() != hi {
				t.Errorf("zoom after many ZoomIn = %v, want max %v", s.Zoom(), hi)
			}
			for range 500 {
				s.Wheel(WheelEvent{DeltaY: 500, X: 10, Y: 10})
				check("Wheel")
			}
			for range 5000 {
				s.ZoomOut()
				check("ZoomOut")
			}
			if s.Zoom() != lo {
				t.Errorf("zoom after many ZoomOut = %v, want min %v", s.Zoom(), lo)
			}
		})
	}
}

func TestWheelLinear(t *testing.T) {
	tests := []struct {
		name   string
		deltaY float64
		want   float64
	}{
		{"up zooms in", -120, 1.005},
		{"down zooms out", 120, 0.995},
		{"zero zooms out", 0, 0.995},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, f := mounted()
			s.EnableWheelZoom()
			s.Wheel(WheelEvent{DeltaY: tt.deltaY, X: 10, Y: 20})
			if got := s.Zoom(); math.Abs(got-tt.want) > eps {
				t.Errorf("Zoom() = %v, want %v", got, tt.want)
			}
			if len(f.zooms) != 1 || f.zooms[0].focal != Pt(400, 300) {
				t.Errorf("zoom calls = %v, want one at the centre", f.zooms)
			}
		})
	}
}

func TestWheelExponential(t *testing.T) {
	s, f := mounted(WithExponentialZoom(0.999))
	s.EnableWheelZoom()

	scene := f.SceneFromScreen(Pt(120, 80))
	s.Wheel(WheelEvent{DeltaY: -100, X: 120, Y: 80})

	want := math.Pow(0.999, -100)
	if got := s.Zoom(); math.Abs(got-want) > eps {
		t.Errorf("Zoom() = %v, want %v", got, want)
	}
	if len(f.zooms) != 1 || f.zooms[0].focal != Pt(120, 80) {
		t.Fatalf("zoom calls = %v, want one at the pointer", f.zooms)
	}
	// The scene point under the pointer does not move.
	if got := f.vpt.Apply(scene); !near(got, Pt(120, 80)) {
		t.Errorf("pointer drifted to %v", got)
	}
}

func TestWheelAnchorOverride(t *testing.T) {
	s, f := mounted(WithWheelAnchor(AnchorPointer))
	s.EnableWheelZoom()
	s.Wheel(WheelEvent{DeltaY: -1, X: 5, Y: 6})
	if len(f.zooms) != 1 || f.zooms[0].focal != Pt(5, 6) {
		t.Errorf("zoom calls = %v, want one at (5, 6)", f.zooms)
	}
}

func TestWheelDisabled(t *testing.T) {
	s, f := mounted()
	s.Wheel(WheelEvent{DeltaY: -1})
	s.EnableWheelZoom()
	s.DisableWheelZoom()
	s.Wheel(WheelEvent{DeltaY: -1})
	if len(f.zooms) != 0 || s.Zoom() != 1 {
		t.Errorf("wheel zoomed while disabled: calls=%v zoom=%v", f.zooms, s.Zoom())
	}
}

func TestZoomAtKeepsFocal(t *testing.T) {
	s, f := mounted()
	focal := Pt(100, 50)
	scene := f.SceneFromScreen(focal)
	for range 30 {
		s.ZoomInAt(focal)
	}
	if got := f.vpt.Apply(scene); !near(got, focal) {
		t.Errorf("scene point %v moved to %v, want %v", scene, got, focal)
	}
}

func TestResetView(t *testing.T) {
	s, f := mounted()
	s.EnablePan()
	s.PointerDown(PointerEvent{X: 0, Y: 0})
	s.PointerMove(PointerEvent{X: 30, Y: 40})
	s.ZoomIn()

	s.ResetView()

	if !f.vpt.IsIdentity() {
		t.Errorf("transform after ResetView = %v, want identity", f.vpt)
	}
	if s.Zoom() != 1 {
		t.Errorf("Zoom() = %v, want 1", s.Zoom())
	}
	if s.State() == StatePanning {
		t.Error("ResetView left a drag in progress")
	}
}

func TestZoomBeforeMount(t *testing.T) {
	s := NewSession()
	s.EnableWheelZoom()
	s.ZoomIn()
	s.ZoomOut()
	s.ZoomInAt(Pt(1, 1))
	s.Wheel(WheelEvent{DeltaY: -1})
	s.ResetView()
	if s.Zoom() != 1 {
		t.Errorf("Zoom() = %v before mount, want 1", s.Zoom())
	}
}

func TestInitialZoomClamped(t *testing.T) {
	s, f := mounted(WithZoomBounds(2, 4))
	if s.Zoom() != 2 {
		t.Errorf("Zoom() = %v, want 2", s.Zoom())
	}
	if len(f.zooms) != 1 || f.zooms[0].factor != 2 {
		t.Errorf("mount zoom calls = %v, want one to 2", f.zooms)
	}
}

func TestClampZoom(t *testing.T) {
	o := defaultOptions()
	o.normalize()
	tests := []struct {
		in      float64
		want    float64
		clamped bool
	}{
		{1, 1, false},
		{0.5, 0.5, false},
		{5, 5, false},
		{0.1, 0.5, true},
		{9, 5, true},
		{math.NaN(), 0.5, true},
		{math.Inf(1), 5, true},
	}
	for _, tt := range tests {
		got, clamped := o.clampZoom(tt.in)
		if got != tt.want || clamped != tt.clamped {
			t.Errorf("clampZoom(%v) = %v, %v; want %v, %v", tt.in, got, clamped, tt.want, tt.clamped)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		apply Option
		check func(*options) bool
	}{
		{"precision raised for fine step", WithZoomStep(0.0001), func(o *options) bool { return o.zoomPrecision == 4 }},
		{"precision raised for quarter step", func(o *options) {
			WithZoomPrecision(0)(o)
			WithZoomStep(0.25)(o)
		}, func(o *options) bool { return o.zoomPrecision == 2 }},
		{"precision kept for default step", WithZoomPrecision(3), func(o *options) bool { return o.zoomPrecision == 3 }},
		{"negative step reset", WithZoomStep(-1), func(o *options) bool { return o.zoomStep == DefaultZoomStep }},
		{"bounds swapped", WithZoomBounds(4, 2), func(o *options) bool { return o.zoomMin == 2 && o.zoomMax == 4 }},
		{"bad base reset", WithExponentialZoom(1.5), func(o *options) bool { return o.wheelBase == DefaultWheelBase }},
		{"exponential bounds", WithExponentialZoom(0.999), func(o *options) bool {
			return o.zoomMin == DefaultExponentialZoomMin && o.zoomMax == DefaultExponentialZoomMax
		}},
		{"exponential anchor", WithExponentialZoom(0.999), func(o *options) bool { return o.wheelAnchor == AnchorPointer }},
		{"linear anchor", WithLinearZoom(0.01), func(o *options) bool { return o.wheelAnchor == AnchorCenter }},
		{"radius reset", WithMarkerRadius(0), func(o *options) bool { return o.markerRadius == DefaultMarkerRadius }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.apply(&o)
			o.normalize()
			if !tt.check(&o) {
				t.Errorf("normalized options = %+v", o)
			}
		})
	}
}

func TestZoomEvents(t *testing.T) {
	s, _ := mounted(WithZoomBounds(0.5, 1))
	var zooms []float64
	s.Subscribe(func(ev Event) {
		if ev.Kind == EventZoomChanged {
			zooms = append(zooms, ev.Zoom)
		}
	})

	s.ZoomIn() // clamped at 1: no change
	s.ZoomOut()

	if len(zooms) != 1 || math.Abs(zooms[0]-0.995) > eps {
		t.Errorf("zoom events = %v, want [0.995]", zooms)
	}
}

func TestZoomStepAfterWheel(t *testing.T) {
	tests := []struct {
		name   string
		deltaY float64
	}{
		{"in", -37},
		{"out", 53},
		{"tiny", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := mounted(WithExponentialZoom(0.999))
			s.EnableWheelZoom()
			s.Wheel(WheelEvent{DeltaY: tt.deltaY, X: 10, Y: 10})
			before := s.Zoom()

			s.ZoomIn()
			if got := s.Zoom(); math.Abs(got-(before+DefaultZoomStep)) > eps {
				t.Errorf("ZoomIn from %v = %v, want %v", before, got, before+DefaultZoomStep)
			}
			s.ZoomOut()
			if got := s.Zoom(); math.Abs(got-before) > eps {
				t.Errorf("ZoomIn;ZoomOut: %v -> %v", before, got)
			}
			s.ZoomOut()
			s.ZoomIn()
			if got := s.Zoom(); math.Abs(got-before) > eps {
				t.Errorf("ZoomOut;ZoomIn: %v -> %v", before, got)
			}
		})
	}
}

func TestStepZoomGrid(t *testing.T) {
	o := defaultOptions()
	o.normalize()
	tests := []struct {
		z, dir, want float64
	}{
		{1, 1, 1.005},
		{1.005, -1, 1},
		{0.7000000000000001, 1, 0.705},
		{1.0377122311446758, 1, 1.0427122311446758},
		{1.0427122311446758, -1, 1.0377122311446758},
	}
	for _, tt := range tests {
		if got := o.stepZoom(tt.z, tt.dir); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("stepZoom(%v, %v) = %v, want %v", tt.z, tt.dir, got, tt.want)
		}
	}
}
