package viewport

// Affine is a 2D affine transform. It maps (x, y) to
// (A*x + B*y + TX, C*x + D*y + TY).
//
// Translate, Scale and Concat append an operation that runs after the ones
// already in the matrix, the same order ebiten.GeoM uses.
type Affine struct {
	A, B, C, D float64
	TX, TY     float64
}

// Identity is the transform that leaves points unchanged.
var Identity = Affine{A: 1, D: 1}

// Concat returns the transform that applies m and then next.
func (m Affine) Concat(next Affine) Affine {
	return Affine{
		A:  next.A*m.A + next.B*m.C,
		B:  next.A*m.B + next.B*m.D,
		C:  next.C*m.A + next.D*m.C,
		D:  next.C*m.B + next.D*m.D,
		TX: next.A*m.TX + next.B*m.TY + next.TX,
		TY: next.C*m.TX + next.D*m.TY + next.TY,
	}
}

// Translate appends a translation.
func (m Affine) Translate(tx, ty float64) Affine {
	return m.Concat(Affine{A: 1, D: 1, TX: tx, TY: ty})
}

// Scale appends a scale around the origin.
func (m Affine) Scale(sx, sy float64) Affine {
	return m.Concat(Affine{A: sx, D: sy})
}

// Apply maps a point through the transform.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.TX, m.C*x + m.D*y + m.TY
}
