package lattice

// Extent is an axis-aligned integer box: the minimum corner plus a
// non-negative per-axis size (the "local supremum"). The box covers the
// half-open product [Min, Min+Sup) on each axis, so an extent with any
// zero supremum component is empty.
//
// Extents are value types: cheaply copyable, no shared ownership.
type Extent struct {
	// Min is the minimum (most negative) corner of the box.
	Min Point

	// Sup is the per-axis size. Well-formed extents keep every component ≥ 0.
	Sup Point
}

// NewExtent builds an extent from a minimum corner and a local supremum,
// clamping negative supremum components to zero so the result is well formed.
func NewExtent(min, sup Point) Extent {
	return Extent{Min: min, Sup: sup.Max(Point{})}
}

// Max returns the one-past-the-end corner, Min + Sup.
func (e Extent) Max() Point { return e.Min.Add(e.Sup) }

// IsEmpty reports whether the extent contains no lattice points.
func (e Extent) IsEmpty() bool { return e.Sup.X <= 0 || e.Sup.Y <= 0 || e.Sup.Z <= 0 }

// ContainsPoint reports whether p lies inside the extent.
// Complexity: O(1).
func (e Extent) ContainsPoint(p Point) bool {
	max := e.Max()

	return p.X >= e.Min.X && p.X < max.X &&
		p.Y >= e.Min.Y && p.Y < max.Y &&
		p.Z >= e.Min.Z && p.Z < max.Z
}

// Intersection returns the extent covering exactly the points contained in
// both e and o. The result is empty (zero supremum) where they do not meet.
// Complexity: O(1).
func (e Extent) Intersection(o Extent) Extent {
	min := e.Min.Max(o.Min)

	return NewExtent(min, e.Max().Min(o.Max()).Sub(min))
}

// IsSubset reports whether every point of e is contained in o.
// An empty extent is a subset of everything.
func (e Extent) IsSubset(o Extent) bool {
	if e.IsEmpty() {
		return true
	}
	eMax, oMax := e.Max(), o.Max()

	return e.Min.X >= o.Min.X && eMax.X <= oMax.X &&
		e.Min.Y >= o.Min.Y && eMax.Y <= oMax.Y &&
		e.Min.Z >= o.Min.Z && eMax.Z <= oMax.Z
}

// Translate returns e displaced by v. Size is unchanged.
func (e Extent) Translate(v Point) Extent {
	return Extent{Min: e.Min.Add(v), Sup: e.Sup}
}

// GrowFaces returns e with each face moved outward by its FaceAmounts entry
// (inward for negative amounts). The supremum is clamped at zero per axis,
// so over-shrinking yields an empty extent rather than a malformed one.
// Complexity: O(1).
func (e Extent) GrowFaces(by FaceAmounts) Extent {
	min := e.Min
	sup := e.Sup
	for _, d := range AllDirections {
		n := by[d]
		if d.Positive() {
			sup = sup.WithComponent(d.Axis(), sup.Component(d.Axis())+n)
		} else {
			min = min.WithComponent(d.Axis(), min.Component(d.Axis())-n)
			sup = sup.WithComponent(d.Axis(), sup.Component(d.Axis())+n)
		}
	}

	return NewExtent(min, sup)
}

// RadialGrow returns e grown outward by n on all six faces (shrunk inward
// for negative n).
func (e Extent) RadialGrow(n int) Extent { return e.GrowFaces(UniformFaces(n)) }

// Points returns every lattice point contained in the extent, ordered
// X-major, then Y, then Z. Empty extents yield nil.
// Complexity: O(volume).
func (e Extent) Points() []Point {
	if e.IsEmpty() {
		return nil
	}
	max := e.Max()
	pts := make([]Point, 0, e.Sup.X*e.Sup.Y*e.Sup.Z)
	for x := e.Min.X; x < max.X; x++ {
		for y := e.Min.Y; y < max.Y; y++ {
			for z := e.Min.Z; z < max.Z; z++ {
				pts = append(pts, Point{x, y, z})
			}
		}
	}

	return pts
}

// Penetrations returns the signed per-axis overlap depth between a and b:
// positive where the boxes interpenetrate, zero where they share a face
// exactly, negative where there is a gap.
// Complexity: O(1).
func Penetrations(a, b Extent) Point {
	lo := a.Min.Max(b.Min)
	hi := a.Max().Min(b.Max())

	return hi.Sub(lo)
}
