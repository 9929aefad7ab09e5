package geometry

// Square returns the 2D square with white, red, green and blue corners
func Square() *Mesh {
	return &Mesh{
		Name:         "square",
		PositionSize: 2,
		Positions: []float32{
			-1, 1,
			1, 1,
			-1, -1,
			1, -1,
		},
		Colors: []float32{
			1, 1, 1, 1,
			1, 0, 0, 1,
			0, 1, 0, 1,
			0, 0, 1, 1,
		},
		Parts: []Part{{Mode: TriangleStrip, First: 0, Count: 4}},
	}
}

// Hexagon returns a closed hexagon outline centered on (-0.5, 0.6), drawn
// as a line strip over 7 vertices.
func Hexagon() *Mesh {
	return &Mesh{
		Name:         "hexagon",
		PositionSize: 2,
		Positions: []float32{
			-0.3, 0.6,
			-0.4, 0.8,
			-0.6, 0.8,
			-0.7, 0.6,
			-0.6, 0.4,
			-0.4, 0.4,
			-0.3, 0.6,
		},
		Parts: []Part{{Mode: LineStrip, First: 0, Count: 7}},
	}
}

// Triangle returns a triangle with red, green and blue vertices
func Triangle() *Mesh {
	return &Mesh{
		Name:         "triangle",
		PositionSize: 2,
		Positions: []float32{
			0.3, 0.4,
			0.7, 0.4,
			0.5, 0.8,
		},
		Colors: []float32{
			1, 0, 0, 1,
			0, 1, 0, 1,
			0, 0, 1, 1,
		},
		Parts: []Part{{Mode: Triangles, First: 0, Count: 3}},
	}
}

// ZigZagStrip returns two rows of a zig-zag band, 11 vertices each, drawn
// as one triangle strip joined with degenerate triangles. The second and
// third parts are line strips outlining each row.
func ZigZagStrip() *Mesh {
	m := &Mesh{Name: "strip", PositionSize: 2}
	rows := []struct{ high, low float32 }{{0.2, 0}, {-0.3, -0.5}}
	var strips [][]uint16
	for _, r := range rows {
		var s []uint16
		for i := 0; i < 11; i++ {
			y := r.high
			if i%2 == 1 {
				y = r.low
			}
			s = append(s, uint16(m.VertexCount()))
			m.Positions = append(m.Positions, -0.5+0.1*float32(i), y)
		}
		strips = append(strips, s)
	}
	m.Parts = []Part{
		{Mode: TriangleStrip, Indices: JoinStrips(strips...)},
		{Mode: LineStrip, First: 0, Count: 11},
		{Mode: LineStrip, First: 11, Count: 11},
	}
	return m
}
