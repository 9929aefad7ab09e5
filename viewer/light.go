package viewer

import "github.com/go-gl/mathgl/mgl32"

// Light is a point light with separate ambient, diffuse and specular colors
type Light struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Material holds how much of each light component a surface reflects
type Material struct {
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Lighting is the light reflected by one material, as uploaded to the
// shaders. Position is in eye coordinates.
type Lighting struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Gray returns a vector with all three components set to v
func Gray(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}

// Reflect returns the lighting of material m lit by l, with the light
// position transformed by view
func (l Light) Reflect(m Material, view mgl32.Mat4) Lighting {
	return Lighting{
		Position: mgl32.TransformCoordinate(l.Position, view),
		Ambient:  mul(l.Ambient, m.Ambient),
		Diffuse:  mul(l.Diffuse, m.Diffuse),
		Specular: mul(l.Specular, m.Specular),
	}
}

func mul(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
