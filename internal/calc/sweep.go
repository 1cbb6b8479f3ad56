package calc

// ChartPoints is the fixed number of samples used when drawing a formula
// as a curve.
const ChartPoints = 40

// Point is one sample of a swept formula.
type Point struct {
	X float64
	Y float64
}

// Sweep samples f at n evenly spaced points across [min, max], inclusive
// of both endpoints. This is a fixed-size generative sweep for charting,
// not a search.
func Sweep(f func(x float64) float64, min, max float64, n int) []Point {
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	step := (max - min) / float64(n-1)
	for i := range pts {
		x := min + float64(i)*step
		pts[i] = Point{X: x, Y: f(x)}
	}
	return pts
}
