package h3

import "math"

// coordIJK is a position on a hexagonal grid in non-negative IJK axial
// coordinates (at most two of the three axes carry a non-zero value once
// normalized).
type coordIJK struct {
	i, j, k int
}

// unitVectors maps each direction to its unit IJK offset.
var unitVectors = [7]coordIJK{
	{0, 0, 0}, // Center
	{0, 0, 1}, // K
	{0, 1, 0}, // J
	{0, 1, 1}, // JK
	{1, 0, 0}, // I
	{1, 0, 1}, // IK
	{1, 1, 0}, // IJ
}

func (c coordIJK) add(o coordIJK) coordIJK {
	return coordIJK{c.i + o.i, c.j + o.j, c.k + o.k}
}

func (c coordIJK) sub(o coordIJK) coordIJK {
	return coordIJK{c.i - o.i, c.j - o.j, c.k - o.k}
}

func (c coordIJK) scale(f int) coordIJK {
	return coordIJK{c.i * f, c.j * f, c.k * f}
}

// normalize removes negative components and the shared minimum so that the
// smallest component is zero.
func (c coordIJK) normalize() coordIJK {
	if c.i < 0 {
		c.j -= c.i
		c.k -= c.i
		c.i = 0
	}
	if c.j < 0 {
		c.i -= c.j
		c.k -= c.j
		c.j = 0
	}
	if c.k < 0 {
		c.i -= c.k
		c.j -= c.k
		c.k = 0
	}
	min := c.i
	if c.j < min {
		min = c.j
	}
	if c.k < min {
		min = c.k
	}
	if min > 0 {
		c.i -= min
		c.j -= min
		c.k -= min
	}
	return c
}

// neighbor moves one cell in the given direction.
func (c coordIJK) neighbor(d Direction) coordIJK {
	if d == DirectionCenter || d >= DirectionInvalid {
		return c
	}
	return c.add(unitVectors[d]).normalize()
}

// unitToDirection converts a normalized unit offset back to a direction.
func (c coordIJK) unitToDirection() Direction {
	c = c.normalize()
	for d := DirectionCenter; d < DirectionInvalid; d++ {
		if c == unitVectors[d] {
			return d
		}
	}
	return DirectionInvalid
}

// distance is the hex grid distance between two IJK positions.
func (c coordIJK) distance(o coordIJK) int {
	d := c.sub(o).normalize()
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}
	max := abs(d.i)
	if abs(d.j) > max {
		max = abs(d.j)
	}
	if abs(d.k) > max {
		max = abs(d.k)
	}
	return max
}

// rotate60ccw rotates the position 60 degrees counterclockwise around the
// grid origin.
func (c coordIJK) rotate60ccw() coordIJK {
	// i -> ij, j -> jk, k -> ik
	iv := coordIJK{1, 1, 0}.scale(c.i)
	jv := coordIJK{0, 1, 1}.scale(c.j)
	kv := coordIJK{1, 0, 1}.scale(c.k)
	return iv.add(jv).add(kv).normalize()
}

// rotate60cw rotates the position 60 degrees clockwise around the grid
// origin.
func (c coordIJK) rotate60cw() coordIJK {
	// i -> ik, j -> ij, k -> jk
	iv := coordIJK{1, 0, 1}.scale(c.i)
	jv := coordIJK{1, 1, 0}.scale(c.j)
	kv := coordIJK{0, 1, 1}.scale(c.k)
	return iv.add(jv).add(kv).normalize()
}

// downAp7 finds the position in the aperture-7 grid one resolution finer,
// counterclockwise orientation.
func (c coordIJK) downAp7() coordIJK {
	iv := coordIJK{3, 0, 1}.scale(c.i)
	jv := coordIJK{1, 3, 0}.scale(c.j)
	kv := coordIJK{0, 1, 3}.scale(c.k)
	return iv.add(jv).add(kv).normalize()
}

// downAp7r is the clockwise-orientation counterpart of downAp7.
func (c coordIJK) downAp7r() coordIJK {
	iv := coordIJK{3, 1, 0}.scale(c.i)
	jv := coordIJK{0, 3, 1}.scale(c.j)
	kv := coordIJK{1, 0, 3}.scale(c.k)
	return iv.add(jv).add(kv).normalize()
}

// upAp7 finds the containing position in the aperture-7 grid one
// resolution coarser, counterclockwise orientation.
func (c coordIJK) upAp7() coordIJK {
	i := float64(c.i - c.k)
	j := float64(c.j - c.k)
	return coordIJK{
		i: int(math.Round((3*i - j) / 7)),
		j: int(math.Round((i + 2*j) / 7)),
		k: 0,
	}.normalize()
}

// upAp7r is the clockwise-orientation counterpart of upAp7.
func (c coordIJK) upAp7r() coordIJK {
	i := float64(c.i - c.k)
	j := float64(c.j - c.k)
	return coordIJK{
		i: int(math.Round((2*i + j) / 7)),
		j: int(math.Round((3*j - i) / 7)),
		k: 0,
	}.normalize()
}

// toIJ drops the redundant k axis, yielding signed axial IJ coordinates.
func (c coordIJK) toIJ() (i, j int) {
	return c.i - c.k, c.j - c.k
}
