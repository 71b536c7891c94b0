// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package a2svg

// dirBits is a bitset of Directions already attempted from a given grid
// cell, keyed per spec.md §4.3's "per-invocation-chain visit bucket".
type dirBits uint8

const (
	bitRight dirBits = 1 << iota
	bitDown
	bitLeft
	bitUp
)

func bitFor(d Direction) dirBits {
	switch d {
	case DirRight:
		return bitRight
	case DirDown:
		return bitDown
	case DirLeft:
		return bitLeft
	default:
		return bitUp
	}
}

type wallKey struct{ row, col int }

type wallBucket map[wallKey]dirBits

// clone returns a copy of b. The WallFollower passes a clone into every
// recursive call so that sibling subtrees explored from the same corner
// don't contaminate each other's visited sets; only the chain a given
// call actually descends through grows its own bucket (spec.md §4.3,
// "Tie-break and edge-case notes").
func (b wallBucket) clone() wallBucket {
	out := make(wallBucket, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

func neighborInDir(g *grid, row, col int, d Direction) char {
	switch d {
	case DirRight:
		return g.at(row, col+1)
	case DirLeft:
		return g.at(row, col-1)
	case DirDown:
		return g.at(row+1, col)
	default:
		return g.at(row-1, col)
	}
}

func stepInDir(row, col int, d Direction) (int, int) {
	dr, dc := d.delta()
	return row + dr, col + dc
}

// cannotTurnIntoSameEdge implements the ". "'"-top/bottom-edge guard: a
// curved corner cannot turn into another row drawn with the same curve
// character, so that stacked top or bottom rows aren't mistaken for sides.
// The guard only applies to vertical (UP/DOWN) turn candidates.
func cannotTurnIntoSameEdge(d Direction, cur, neighbor char) bool {
	if d != DirUp && d != DirDown {
		return false
	}
	return (cur == '.' && neighbor == '.') || (cur == '\'' && neighbor == '\'')
}

func turnAllowed(b wallBucket, key wallKey, d Direction, cur, neighbor char) bool {
	if b[key]&bitFor(d) != 0 {
		return false
	}
	if !(isEdge(neighbor, d) || neighbor.isCorner()) {
		return false
	}
	return !cannotTurnIntoSameEdge(d, cur, neighbor)
}

// wallFollow implements spec.md §4.3: a recursive, right-turning
// traversal that extends path from (row, col) moving in dir, closing it
// if a clockwise boundary is found. It mutates path in place; callers
// check path.IsClosed after the call returns.
func wallFollow(g *grid, s Scale, path *Path, row, col int, dir Direction, bucket wallBucket, depth int) {
	depth++

	// Step 1: advance while the cell is an edge oriented for dir.
	cur := g.at(row, col)
	for isEdge(cur, dir) {
		row, col = stepInDir(row, col, dir)
		cur = g.at(row, col)
	}

	// Step 2: cycle detection.
	key := wallKey{row, col}
	if _, seen := bucket[key]; seen {
		return
	}

	// Step 3: classify.
	switch {
	case cur.isMarker():
		return
	case !cur.isCorner():
		return
	}

	bucket = bucket.clone()
	bucket[key] = 0

	// Step 4: add the corner.
	flag := FlagPoint
	if cur.isSlantedCorner() {
		flag = FlagControl
	}
	result := path.AddPoint(NewPoint(s, col, row, flag))
	if path.IsClosed || result == Deduped {
		return
	}

	// Step 5: depth-1 double-dot special case.
	if depth == 1 && cur == '.' && g.at(row+1, col) == '.' {
		wallFollow(g, s, path, row, col+1, dir, bucket, 0)
		return
	}

	// Step 6: always try the right turn first.
	rightDir := dir.right()
	rightNeighbor := neighborInDir(g, row, col, rightDir)
	if turnAllowed(bucket, key, rightDir, cur, rightNeighbor) {
		bucket[key] |= bitFor(rightDir)
		nr, nc := stepInDir(row, col, rightDir)
		wallFollow(g, s, path, nr, nc, rightDir, bucket.clone(), depth)
		if path.IsClosed {
			return
		}
	} else if depth == 1 {
		// Polygons must begin with a downward right turn when entered at
		// the top-left; reject the whole candidate.
		return
	}

	// Step 7: try the rest, in order LEFT, RIGHT, UP, DOWN, excluding the
	// direct reverse of the entry direction.
	for _, d := range [...]Direction{DirLeft, DirRight, DirUp, DirDown} {
		if d == dir.opposite() {
			continue
		}
		neighbor := neighborInDir(g, row, col, d)
		if !turnAllowed(bucket, key, d, cur, neighbor) {
			continue
		}
		bucket[key] |= bitFor(d)
		nr, nc := stepInDir(row, col, d)
		wallFollow(g, s, path, nr, nc, d, bucket.clone(), depth)
		if path.IsClosed {
			return
		}
	}

	// Step 8: nothing closed from here; back out.
	path.PopPoint()
}
