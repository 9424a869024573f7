package simulation

// ResolveWall reflects the velocity component of every axis on which the body
// touches or crosses a boundary while still moving outward. Position is never
// clamped, so a body may briefly overlap the boundary. Returns true if any
// component was reflected.
func ResolveWall(b *Body, arena Arena) bool {
	reflected := false

	// X axis
	if b.position.X+b.radius >= arena.Width && b.velocity.X > 0 {
		b.velocity.X = -b.velocity.X
		reflected = true
	}
	if b.position.X-b.radius <= 0 && b.velocity.X < 0 {
		b.velocity.X = -b.velocity.X
		reflected = true
	}

	// Y axis
	if b.position.Y+b.radius >= arena.Height && b.velocity.Y > 0 {
		b.velocity.Y = -b.velocity.Y
		reflected = true
	}
	if b.position.Y-b.radius <= 0 && b.velocity.Y < 0 {
		b.velocity.Y = -b.velocity.Y
		reflected = true
	}

	return reflected
}
