package geometry

// Floor returns a square on the y=0 plane spanning [-halfSize, halfSize] on
// x and z, facing up and drawn as a triangle fan.
func Floor(halfSize float32) *Mesh {
	s := halfSize
	return &Mesh{
		Name:         "floor",
		PositionSize: 3,
		Positions: []float32{
			s, 0, s,
			s, 0, -s,
			-s, 0, -s,
			-s, 0, s,
		},
		Normals: []float32{
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
			0, 1, 0,
		},
		Parts: []Part{{Mode: TriangleFan, Indices: []uint16{0, 1, 2, 3}}},
	}
}
