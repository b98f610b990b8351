// Package geom provides physical and logical coordinate types and the
// scale-factor conversion between them. Physical values are what the
// windowing binding reports (device pixels, terminal cells); logical values
// are what the application sees.
package geom

// PhysicalPosition is a position in device units.
type PhysicalPosition struct {
	X, Y float64
}

// PhysicalSize is a size in device units.
type PhysicalSize struct {
	Width, Height float64
}

// LogicalPosition is a position in application units.
type LogicalPosition struct {
	X, Y float64
}

// LogicalSize is a size in application units.
type LogicalSize struct {
	Width, Height float64
}

// ToLogical converts using the given scale factor.
// scale must be > 0; a scale of 1 is the identity.
func (p PhysicalPosition) ToLogical(scale float64) LogicalPosition {
	return LogicalPosition{X: p.X / scale, Y: p.Y / scale}
}

// ToLogical converts using the given scale factor.
func (s PhysicalSize) ToLogical(scale float64) LogicalSize {
	return LogicalSize{Width: s.Width / scale, Height: s.Height / scale}
}

// ToPhysical converts back to device units using the given scale factor.
func (p LogicalPosition) ToPhysical(scale float64) PhysicalPosition {
	return PhysicalPosition{X: p.X * scale, Y: p.Y * scale}
}

// ToPhysical converts back to device units using the given scale factor.
func (s LogicalSize) ToPhysical(scale float64) PhysicalSize {
	return PhysicalSize{Width: s.Width * scale, Height: s.Height * scale}
}
