package vpath

// Smooth sets the handles of all segments so that the path runs through the anchors as a C2-continuous spline. Per axis the first control points of each curve follow from a tridiagonal system, the second control points from continuity. Closed paths wrap up to four anchors around both ends and cross-fade the overlapping solutions. Paths with fewer than three segments are left untouched.
func (p *Path) Smooth() {
	size := len(p.segments)
	if size <= 2 {
		return
	}

	overlap := 0
	if p.closed {
		overlap = size
		if 4 < overlap {
			overlap = 4
		}
	}

	// knots run over the anchors, padded at both ends by wrapped anchors for closed paths
	knots := make([]Point, size+2*overlap)
	for i, seg := range p.segments {
		knots[i+overlap] = seg.point
	}
	for i := 0; i < overlap; i++ {
		knots[i] = p.segments[size-overlap+i].point
		knots[size+overlap+i] = p.segments[i].point
	}

	n := len(knots) - 1 // number of curves through the knots
	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	for i, k := range knots {
		xs[i], ys[i] = k.X, k.Y
	}
	p1x := smoothFirstControlPoints(xs)
	p1y := smoothFirstControlPoints(ys)
	p1 := make([]Point, n)
	for i := range p1 {
		p1[i] = Point{p1x[i], p1y[i]}
	}

	if p.closed {
		// cross-fade the solution at the end with the wrapped copy solved before the start, and the wrapped solution after the end with the start
		for i := 0; i < overlap; i++ {
			f1 := float64(i) / float64(overlap)
			f2 := 1.0 - f1
			j := size + i
			if j < n {
				p1[j] = p1[i].Mul(f1).Add(p1[j].Mul(f2))
			}
			ie, je := i+overlap, j+overlap
			if je < n {
				p1[je] = p1[ie].Mul(f2).Add(p1[je].Mul(f1))
			}
		}
	}

	// second control point of curve i
	p2 := func(i int) Point {
		if i+1 < n {
			return knots[i+1].Mul(2.0).Sub(p1[i+1])
		}
		return knots[n].Add(p1[n-1]).Div(2.0)
	}

	curves := size - 1
	if p.closed {
		curves = size
	}
	for k := 0; k < curves; k++ {
		i := k + overlap
		seg1 := p.segments[k]
		seg2 := p.segments[(k+1)%size]
		seg1.handleOut = p1[i].Sub(seg1.point)
		seg2.handleIn = p2(i).Sub(seg2.point)
	}
	p.changed(geometryChanged)
}

// smoothFirstControlPoints solves for the first control points of a natural cubic spline through the knots, see https://www.particleincell.com/2012/bezier-splines/
func smoothFirstControlPoints(k []float64) []float64 {
	n := len(k) - 1
	if n == 1 {
		return []float64{(2.0*k[0] + k[1]) / 3.0}
	}

	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)
	d := make([]float64, n)

	b[0] = 2.0
	c[0] = 1.0
	d[0] = k[0] + 2.0*k[1]
	for i := 1; i < n-1; i++ {
		a[i] = 1.0
		b[i] = 4.0
		c[i] = 1.0
		d[i] = 4.0*k[i] + 2.0*k[i+1]
	}
	a[n-1] = 2.0
	b[n-1] = 7.0
	d[n-1] = 8.0*k[n-1] + k[n]
	return solveTridiagonal(a, b, c, d)
}
