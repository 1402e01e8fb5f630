package gfx

import "fmt"

// Compilation failure of a single shader stage. Log carries the full driver
// diagnostic for that stage.
type ShaderCompileError struct {
	Stage Stage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("gfx: %s shader compilation failed: %s", e.Stage, e.Log)
}

// Failure while linking compiled stages into a shader program.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return fmt.Sprintf("gfx: shader program linking failed: %s", e.Log)
}
