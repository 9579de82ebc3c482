package chartkit

type Serie[T, U ScalerConstraint] struct {
	Title string
	Color string

	X      Scaler[T]
	Y      Scaler[U]
	Points []Point[T, U]

	Renderer Renderer[T, U]
}

type Point[T, U ScalerConstraint] struct {
	X T
	Y U
}

func NumberPoint(x, y float64) Point[float64, float64] {
	return Point[float64, float64]{
		X: x,
		Y: y,
	}
}

func CategoryPoint(x string, y float64) Point[string, float64] {
	return Point[string, float64]{
		X: x,
		Y: y,
	}
}

func (p Point[T, U]) Reverse() Point[U, T] {
	return Point[U, T]{
		X: p.Y,
		Y: p.X,
	}
}
