package geometry

// JoinStrips concatenates triangle strips into a single strip, inserting
// degenerate triangles between them. The last index of a strip and the first
// index of the next one are repeated. When the joined strip so far has an odd
// length the last index is repeated once more so the next strip keeps its
// winding.
func JoinStrips(strips ...[]uint16) []uint16 {
	var out []uint16
	for _, s := range strips {
		if len(s) == 0 {
			continue
		}
		if len(out) > 0 {
			last := out[len(out)-1]
			out = append(out, last)
			if len(out)%2 == 0 {
				out = append(out, last)
			}
			out = append(out, s[0])
		}
		out = append(out, s...)
	}
	return out
}

// Face holds the vertex indices of one triangle
type Face [3]int

func (t Face) degenerate() bool {
	return t[0] == t[1] || t[1] == t[2] || t[0] == t[2]
}

// Faces expands a part to its non degenerate triangles, keeping the
// winding of strips. Point and line parts yield no faces.
func Faces(p Part) []Face {
	v := p.Vertices()
	var out []Face
	add := func(t Face) {
		if !t.degenerate() {
			out = append(out, t)
		}
	}
	switch p.Mode {
	case Triangles:
		for i := 0; i+2 < len(v); i += 3 {
			add(Face{v[i], v[i+1], v[i+2]})
		}
	case TriangleStrip:
		for i := 0; i+2 < len(v); i++ {
			if i%2 == 0 {
				add(Face{v[i], v[i+1], v[i+2]})
			} else {
				add(Face{v[i+1], v[i], v[i+2]})
			}
		}
	case TriangleFan:
		for i := 1; i+1 < len(v); i++ {
			add(Face{v[0], v[i], v[i+1]})
		}
	}
	return out
}
