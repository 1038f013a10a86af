package lattice

// Point is an integer 3-vector on the lattice. It is an immutable value
// type: every operation returns a new Point.
type Point struct {
	X, Y, Z int
}

// Pt is shorthand for constructing a Point.
func Pt(x, y, z int) Point { return Point{X: x, Y: y, Z: z} }

// Add returns the component-wise sum p + q.
// Complexity: O(1).
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns the component-wise difference p - q.
// Complexity: O(1).
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Mul returns p scaled by s on every axis.
// Complexity: O(1).
func (p Point) Mul(s int) Point { return Point{p.X * s, p.Y * s, p.Z * s} }

// Dot returns the dot product p · q.
// Complexity: O(1).
func (p Point) Dot(q Point) int { return p.X*q.X + p.Y*q.Y + p.Z*q.Z }

// Min returns the component-wise minimum of p and q.
func (p Point) Min(q Point) Point {
	return Point{minInt(p.X, q.X), minInt(p.Y, q.Y), minInt(p.Z, q.Z)}
}

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point {
	return Point{maxInt(p.X, q.X), maxInt(p.Y, q.Y), maxInt(p.Z, q.Z)}
}

// Component returns the coordinate of p along axis a.
func (p Point) Component(a Axis) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// WithComponent returns a copy of p with the coordinate along axis a set to v.
func (p Point) WithComponent(a Axis, v int) Point {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	default:
		p.Z = v
	}

	return p
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
