package gfx

import "testing"

func TestShaderCompileErrorMessage(t *testing.T) {
	err := &ShaderCompileError{Stage: FragmentStage, Log: "0:1: syntax error"}

	expError := "gfx: fragment shader compilation failed: 0:1: syntax error"
	if err.Error() != expError {
		t.Fatalf("expected error message to be %q; got %q", expError, err.Error())
	}
}

func TestShaderLinkErrorMessage(t *testing.T) {
	err := &ShaderLinkError{Log: "missing entry point"}

	expError := "gfx: shader program linking failed: missing entry point"
	if err.Error() != expError {
		t.Fatalf("expected error message to be %q; got %q", expError, err.Error())
	}
}

func TestStageString(t *testing.T) {
	specs := []struct {
		stage Stage
		exp   string
	}{
		{VertexStage, "vertex"},
		{FragmentStage, "fragment"},
		{Stage(0xff), "unknown"},
	}

	for idx, spec := range specs {
		if got := spec.stage.String(); got != spec.exp {
			t.Fatalf("[spec %d] expected stage name to be %q; got %q", idx, spec.exp, got)
		}
	}
}
