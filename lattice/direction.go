package lattice

// Axis identifies one of the three lattice axes.
type Axis int

// The three lattice axes.
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Unit returns the positive unit vector along axis a.
func (a Axis) Unit() Point {
	switch a {
	case AxisX:
		return Point{X: 1}
	case AxisY:
		return Point{Y: 1}
	default:
		return Point{Z: 1}
	}
}

// PlaneSpan returns the two unit vectors u, v spanning the plane whose
// normal is axis a. The pair is fixed per axis so that door sampling is
// deterministic: X → (Y, Z), Y → (X, Z), Z → (X, Y).
func (a Axis) PlaneSpan() (u, v Point) {
	switch a {
	case AxisX:
		return AxisY.Unit(), AxisZ.Unit()
	case AxisY:
		return AxisX.Unit(), AxisZ.Unit()
	default:
		return AxisX.Unit(), AxisY.Unit()
	}
}

// Direction is one of the six face normals of an axis-aligned box (±X, ±Y, ±Z).
// It classifies wall adjacency and orients door-carving growth.
type Direction int

// The six face normals. The constant order doubles as the index order of
// FaceAmounts.
const (
	PosX Direction = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// AllDirections lists every face normal in index order.
var AllDirections = [6]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}

// Axis returns the axis the direction points along.
func (d Direction) Axis() Axis { return Axis(d / 2) }

// Positive reports whether the direction points toward +∞ on its axis.
func (d Direction) Positive() bool { return d%2 == 0 }

// Negate returns the opposite face normal.
func (d Direction) Negate() Direction {
	if d.Positive() {
		return d + 1
	}

	return d - 1
}

// Unit returns the signed unit vector of the direction.
func (d Direction) Unit() Point {
	u := d.Axis().Unit()
	if !d.Positive() {
		return u.Mul(-1)
	}

	return u
}

// String returns a short human-readable name, e.g. "+X" or "-Z".
func (d Direction) String() string {
	names := [6]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}
	if d < PosX || d > NegZ {
		return "?"
	}

	return names[d]
}

// FaceAmounts holds one signed growth amount per face of an extent,
// indexed by Direction. Positive values grow the face outward, negative
// values shrink it inward.
type FaceAmounts [6]int

// UniformFaces returns a FaceAmounts with the same amount on all six faces.
func UniformFaces(n int) FaceAmounts {
	return FaceAmounts{n, n, n, n, n, n}
}
