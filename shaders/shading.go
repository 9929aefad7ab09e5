package shaders

import (
	"fmt"
	"strings"
)

// Shading selects how the lit demos compute light
type Shading int

const (
	None Shading = iota
	GouraudShading
	PhongShading
)

var shadingNames = []string{"none", "gouraud", "phong"}

func (s Shading) String() string {
	if s < 0 || int(s) >= len(shadingNames) {
		return fmt.Sprintf("shading(%d)", int(s))
	}
	return shadingNames[s]
}

// Source returns the program implementing the shading
func (s Shading) Source() Source {
	switch s {
	case GouraudShading:
		return Gouraud
	case PhongShading:
		return Phong
	default:
		return Colored
	}
}

// ParseShading parses the name of a shading, case insensitive
func ParseShading(name string) (Shading, error) {
	for i, n := range shadingNames {
		if strings.EqualFold(n, name) {
			return Shading(i), nil
		}
	}
	return None, fmt.Errorf("unknown shading %q", name)
}

func (s Shading) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Shading) UnmarshalText(text []byte) error {
	v, err := ParseShading(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
