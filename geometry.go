// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

// hasPoint implements the even-odd point-in-polygon rule over a closed
// Path's scaled vertices (spec.md §4.8). Each edge (i, j=i-1 mod n)
// contributes a toggle when the query's Y lies strictly between the
// edge's endpoints' Y values and the edge's X-intercept at that Y lies
// strictly left of the query's X. Each edge includes its lower endpoint
// and excludes its upper, so an edge shared between two adjacent boxes
// only counts once.
func hasPoint(path *Path, x, y float64) bool {
	if !path.IsClosed {
		return false
	}
	pts := path.Points
	n := len(pts)
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := pts[i], pts[j]
		if (pi.Y < y) != (pj.Y < y) {
			xIntercept := pi.X + (y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if xIntercept < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
