package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func Elem(sides float64) r2.Vec {
	return r2.Vec{
		X: sides,
		Y: sides,
	}
}

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Mid returns the midpoint between a and b.
func Mid(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Cross returns the z component of the cross product a x b.
func Cross(a, b r2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Translate returns a copy of the set with every vector displaced by v.
func (a Set) Translate(v r2.Vec) Set {
	out := make(Set, len(a))
	for i := range a {
		out[i] = r2.Add(a[i], v)
	}
	return out
}

// Scale returns a copy of the set with every vector scaled by k.
func (a Set) Scale(k float64) Set {
	out := make(Set, len(a))
	for i := range a {
		out[i] = r2.Scale(k, a[i])
	}
	return out
}

// Area returns the signed area of the closed polygon described by the set.
// It is positive for counter-clockwise winding in a y-up frame.
func (a Set) Area() float64 {
	var sum float64
	for i := range a {
		sum += Cross(a[i], a[(i+1)%len(a)])
	}
	return sum / 2
}

type Pol struct {
	R, Theta float64
}

// PolarToCartesian converts a polar to a cartesian coordinate.
func (a Pol) PolarToCartesian() r2.Vec {
	return r2.Vec{X: a.R * math.Cos(a.Theta), Y: a.R * math.Sin(a.Theta)}
}
