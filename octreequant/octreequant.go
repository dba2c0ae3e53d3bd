// Package octreequant reduces an image to a small palette with an octree, so
// that it can be encoded by palette based formats such as sixel.
package octreequant

import (
	"image"
	"image/color"
)

const (
	// depth is the number of bits of each channel the tree looks at
	depth = 8

	// MaxColors is the largest palette an image.Paletted can index
	MaxColors = 256
)

// rgb is a color with 8 bit channels, or a sum of such colors
type rgb struct {
	r int
	g int
	b int
}

// octant returns which of the 8 children a color belongs to at level
func (c rgb) octant(level int) int {
	mask := 0x80 >> level
	i := 0
	if c.r&mask != 0 {
		i |= 4
	}
	if c.g&mask != 0 {
		i |= 2
	}
	if c.b&mask != 0 {
		i |= 1
	}
	return i
}

// toRGB returns the un-premultiplied 8 bit channels of c, and whether c is
// fully transparent
func toRGB(c color.Color) (rgb, bool) {
	r, g, b, a := c.RGBA()
	switch a {
	case 0:
		return rgb{}, true
	case 0xFFFF:
		return rgb{r: int(r >> 8), g: int(g >> 8), b: int(b >> 8)}, false
	}
	return rgb{
		r: int(r) * 0xFF / int(a),
		g: int(g) * 0xFF / int(a),
		b: int(b) * 0xFF / int(a),
	}, false
}

type octNode struct {
	sum      rgb
	pixels   int // non-zero for leaves
	index    int // palette index of a leaf
	children [8]*octNode
}

func (n *octNode) leaf() bool {
	return n.pixels > 0
}

func (n *octNode) leaves(out []*octNode) []*octNode {
	for _, c := range n.children {
		switch {
		case c == nil:
		case c.leaf():
			out = append(out, c)
		default:
			out = c.leaves(out)
		}
	}
	return out
}

// fold merges the children of n into n, turning it into a leaf. It returns
// the number of leaves removed from the tree
func (n *octNode) fold() int {
	if n.leaf() {
		return 0
	}
	merged := 0
	for i, c := range n.children {
		if c == nil {
			continue
		}
		n.sum.r += c.sum.r
		n.sum.g += c.sum.g
		n.sum.b += c.sum.b
		n.pixels += c.pixels
		n.children[i] = nil
		merged += 1
	}
	return merged - 1
}

func (n *octNode) average() color.RGBA {
	return color.RGBA{
		R: uint8(n.sum.r / n.pixels),
		G: uint8(n.sum.g / n.pixels),
		B: uint8(n.sum.b / n.pixels),
		A: 0xFF,
	}
}

// lookup returns the palette index of the leaf c ends up in
func (n *octNode) lookup(c rgb, level int) int {
	for !n.leaf() {
		next := n.children[c.octant(level)]
		if next == nil {
			// c was never inserted, take any branch
			for _, child := range n.children {
				if child != nil {
					next = child
					break
				}
			}
		}
		n = next
		level += 1
	}
	return n.index
}

type octree struct {
	root *octNode
	// inner holds the interior nodes of each level, for reduction
	inner       [depth][]*octNode
	leafCount   int
	transparent bool
}

func newOctree() *octree {
	t := &octree{root: &octNode{}}
	t.inner[0] = append(t.inner[0], t.root)
	return t
}

func (t *octree) insert(c rgb) {
	n := t.root
	for level := 0; level < depth; level += 1 {
		i := c.octant(level)
		if n.children[i] == nil {
			child := &octNode{}
			n.children[i] = child
			if level+1 < depth {
				t.inner[level+1] = append(t.inner[level+1], child)
			} else {
				t.leafCount += 1
			}
		}
		n = n.children[i]
	}
	n.sum.r += c.r
	n.sum.g += c.g
	n.sum.b += c.b
	n.pixels += 1
}

// palette folds the deepest nodes until at most colors leaves remain, and
// returns their average colors. A transparent entry is appended last when
// needed; it counts against colors.
func (t *octree) palette(colors int) color.Palette {
	if t.transparent {
		colors -= 1
	}
	colors = max(colors, 1)
	for level := depth - 1; level >= 0 && t.leafCount > colors; level -= 1 {
		for _, n := range t.inner[level] {
			t.leafCount -= n.fold()
			if t.leafCount <= colors {
				break
			}
		}
	}

	leaves := t.root.leaves(nil)
	if t.root.leaf() {
		leaves = []*octNode{t.root}
	}
	p := make(color.Palette, 0, len(leaves)+1)
	for i, n := range leaves {
		n.index = i
		p = append(p, n.average())
	}
	if t.transparent {
		p = append(p, color.RGBA{})
	}
	return p
}

// Paletted quantizes an image and returns a paletted image with a palette of
// at most colors entries, which is clamped to [1, MaxColors]. Fully
// transparent pixels share one transparent palette entry, which is added to
// a single opaque entry when colors is 1.
func Paletted(img image.Image, colors int) *image.Paletted {
	colors = max(1, min(colors, MaxColors))
	bounds := img.Bounds()

	t := newOctree()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 1 {
		for x := bounds.Min.X; x < bounds.Max.X; x += 1 {
			c, transparent := toRGB(img.At(x, y))
			if transparent {
				t.transparent = true
				continue
			}
			t.insert(c)
		}
	}

	p := t.palette(colors)
	out := image.NewPaletted(bounds, p)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 1 {
		for x := bounds.Min.X; x < bounds.Max.X; x += 1 {
			c, transparent := toRGB(img.At(x, y))
			if transparent {
				out.SetColorIndex(x, y, uint8(len(p)-1))
				continue
			}
			out.SetColorIndex(x, y, uint8(t.root.lookup(c, 0)))
		}
	}
	return out
}
