package logging

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type vec3 mgl32.Vec3

func (v vec3) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, c := range v {
		enc.AppendFloat32(c)
	}
	return nil
}

// Vec3 logs a vector as a three element array
func Vec3(key string, v mgl32.Vec3) zap.Field {
	return zap.Array(key, vec3(v))
}
