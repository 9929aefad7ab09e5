package opengl

import (
	"fmt"
	"strings"

	"bitbucket.org/kleinnic74/glplayground/shaders"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileError is returned when a shader does not compile
type CompileError struct {
	Program string
	Stage   string
	Log     string
}

func (e CompileError) Error() string {
	return fmt.Sprintf("compiling %s shader of %s: %s", e.Stage, e.Program, strings.TrimSpace(e.Log))
}

// LinkError is returned when shaders compile but do not link
type LinkError struct {
	Program string
	Log     string
}

func (e LinkError) Error() string {
	return fmt.Sprintf("linking %s: %s", e.Program, strings.TrimSpace(e.Log))
}

// program is a linked OpenGL program with its uniform locations
type program struct {
	name     string
	prog     uint32
	uniforms map[string]int32
}

func stageName(shaderType uint32) string {
	if shaderType == gl.VERTEX_SHADER {
		return "vertex"
	}
	return "fragment"
}

func compileShader(name, source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	source = source + "\x00"
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, CompileError{Program: name, Stage: stageName(shaderType), Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

// linkProgram compiles and links both shaders of src
func linkProgram(src shaders.Source) (*program, error) {
	vertex, err := compileShader(src.Name, src.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertex)
	fragment, err := compileShader(src.Name, src.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragment)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vertex)
	gl.AttachShader(prog, fragment)
	gl.LinkProgram(prog)
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength)+1)
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return nil, LinkError{Program: src.Name, Log: strings.TrimRight(log, "\x00")}
	}
	gl.DetachShader(prog, vertex)
	gl.DetachShader(prog, fragment)

	p := &program{name: src.Name, prog: prog, uniforms: make(map[string]int32)}
	for _, name := range shaders.Uniforms {
		p.uniforms[name] = gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
	}
	return p, nil
}

// location returns the location of the uniform, -1 if the program does not
// use it; GL ignores uploads to location -1
func (p *program) location(name string) int32 {
	if l, found := p.uniforms[name]; found {
		return l
	}
	return -1
}

func (p *program) delete() {
	gl.DeleteProgram(p.prog)
}
