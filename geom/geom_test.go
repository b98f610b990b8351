package geom

import "testing"

func TestPositionToLogicalIdentity(t *testing.T) {
	p := PhysicalPosition{X: 120, Y: 48}
	l := p.ToLogical(1.0)
	if l.X != 120 || l.Y != 48 {
		t.Errorf("Scale 1.0 should be identity, got (%v, %v)", l.X, l.Y)
	}
}

func TestPositionToLogicalHiDPI(t *testing.T) {
	p := PhysicalPosition{X: 300, Y: 150}
	l := p.ToLogical(2.0)
	if l.X != 150 || l.Y != 75 {
		t.Errorf("Expected (150, 75), got (%v, %v)", l.X, l.Y)
	}
}

func TestSizeToLogicalFractionalScale(t *testing.T) {
	s := PhysicalSize{Width: 1920, Height: 1080}
	l := s.ToLogical(1.5)
	if l.Width != 1280 || l.Height != 720 {
		t.Errorf("Expected 1280x720, got %vx%v", l.Width, l.Height)
	}
}

func TestRoundTrip(t *testing.T) {
	scales := []float64{0.5, 1.0, 1.25, 2.0}
	for _, scale := range scales {
		p := PhysicalPosition{X: 640, Y: 400}
		back := p.ToLogical(scale).ToPhysical(scale)
		if back != p {
			t.Errorf("Scale %v: round trip changed %v to %v", scale, p, back)
		}

		s := PhysicalSize{Width: 800, Height: 600}
		sback := s.ToLogical(scale).ToPhysical(scale)
		if sback != s {
			t.Errorf("Scale %v: round trip changed %v to %v", scale, s, sback)
		}
	}
}
