package renderer

import _ "embed"

// Basic vertex shader: forwards normalized device coordinates unchanged.
//
//go:embed triangle.vert
var vertexShaderSource string

// Basic fragment shader: colors every covered pixel orange.
//
//go:embed triangle.frag
var fragmentShaderSource string
