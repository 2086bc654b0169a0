package vpath

import (
	"math"
)

// Length returns the total arc length of the curves.
func (p *Path) Length() float64 {
	if !p.lengthValid {
		p.length = 0.0
		for _, c := range p.Curves() {
			p.length += c.Length()
		}
		p.lengthValid = true
	}
	return p.length
}

// LocationAt returns the location at arc length offset from the start of the path. Offsets before the start or beyond the end return nil, where an offset exceeding the length by at most a relative LengthTolerance resolves to the end of the last curve.
func (p *Path) LocationAt(offset float64) *CurveLocation {
	if offset < 0.0 {
		return nil
	}

	curves := p.Curves()
	start := 0.0
	for _, c := range curves {
		length := c.Length()
		if offset <= start+length {
			return &CurveLocation{curve: c, parameter: c.ParameterAt(offset - start)}
		}
		start += length
	}

	if 0 < len(curves) && offset <= start+LengthTolerance*math.Max(1.0, start) {
		return &CurveLocation{curve: curves[len(curves)-1], parameter: 1.0}
	}
	return nil
}

// LocationAtParameter returns the location where the integer part of param selects the curve and the fractional part the curve parameter. A param equal to the number of curves resolves to the end of the last curve.
func (p *Path) LocationAtParameter(param float64) *CurveLocation {
	curves := p.Curves()
	if param < 0.0 || len(curves) == 0 || math.IsNaN(param) {
		return nil
	}
	i := int(math.Floor(param))
	t := param - float64(i)
	if i == len(curves) && t == 0.0 {
		i, t = i-1, 1.0
	} else if len(curves) <= i {
		return nil
	}
	return &CurveLocation{curve: curves[i], parameter: t}
}

// PointAt returns the point at arc length offset, it is false if the offset is outside the path.
func (p *Path) PointAt(offset float64) (Point, bool) {
	loc := p.LocationAt(offset)
	if loc == nil {
		return Point{}, false
	}
	return loc.Point(), true
}

// TangentAt returns the normalized tangent at arc length offset, it is false if the offset is outside the path.
func (p *Path) TangentAt(offset float64) (Point, bool) {
	loc := p.LocationAt(offset)
	if loc == nil {
		return Point{}, false
	}
	return loc.Tangent(), true
}

// NormalAt returns the normalized normal at arc length offset, it is false if the offset is outside the path.
func (p *Path) NormalAt(offset float64) (Point, bool) {
	loc := p.LocationAt(offset)
	if loc == nil {
		return Point{}, false
	}
	return loc.Normal(), true
}
