package program_test

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	program "github.com/richinsley/goglprog/program"
)

func TestScalarAndVectorUniforms(t *testing.T) {
	f := newFakeGL()
	for i, name := range []string{"a", "b", "c", "d", "e", "g"} {
		f.uniformLocs[name] = int32(i)
	}
	p := linkedProgram(t, f)

	if err := p.SetUniformi("a", 7); err != nil {
		t.Fatalf("SetUniformi: %v", err)
	}
	if got := f.uniform1i[0]; got.loc != 0 || got.v != 7 {
		t.Errorf("Uniform1i(%d, %d)", got.loc, got.v)
	}

	if err := p.SetUniformf("b", 0.5); err != nil {
		t.Fatalf("SetUniformf: %v", err)
	}
	if got := f.uniform1f[0]; got.loc != 1 || got.v != 0.5 {
		t.Errorf("Uniform1f(%d, %g)", got.loc, got.v)
	}

	if err := p.SetUniform2i("c", [2]int32{3, 4}); err != nil {
		t.Fatalf("SetUniform2i: %v", err)
	}
	if got := f.uniform2i[0]; got != [3]int32{2, 3, 4} {
		t.Errorf("Uniform2i args = %v", got)
	}

	if err := p.SetUniform2f("d", [2]float32{1, 2}); err != nil {
		t.Fatalf("SetUniform2f: %v", err)
	}
	if err := p.SetUniform3f("e", [3]float32{1, 2, 3}); err != nil {
		t.Fatalf("SetUniform3f: %v", err)
	}
	if err := p.SetUniform4f("g", [4]float32{1, 2, 3, 4}); err != nil {
		t.Fatalf("SetUniform4f: %v", err)
	}
	if got := f.uniform4f[0]; got.loc != 5 || got.v[3] != 4 {
		t.Errorf("Uniform4f call = %+v", got)
	}
}

func TestArrayUniforms(t *testing.T) {
	f := newFakeGL()
	f.uniformLocs["ints"] = 1
	f.uniformLocs["floats"] = 2
	f.uniformLocs["points"] = 3
	p := linkedProgram(t, f)

	if err := p.SetUniform1iv("ints", []int32{1, 2, 3}); err != nil {
		t.Fatalf("SetUniform1iv: %v", err)
	}
	if got := f.uniform1iv[0]; got.loc != 1 || len(got.v) != 3 {
		t.Errorf("Uniform1iv call = %+v", got)
	}

	if err := p.SetUniform1fv("floats", []float32{1, 2}); err != nil {
		t.Fatalf("SetUniform1fv: %v", err)
	}

	points := [][3]float32{{1, 2, 3}, {4, 5, 6}}
	if err := p.SetUniform3fv("points", points); err != nil {
		t.Fatalf("SetUniform3fv: %v", err)
	}
	got := f.uniform3fv[0]
	if got.loc != 3 || got.count != 2 {
		t.Fatalf("Uniform3fv(loc=%d, count=%d)", got.loc, got.count)
	}
	want := []float32{1, 2, 3, 4, 5, 6}
	for i := range want {
		if got.v[i] != want[i] {
			t.Fatalf("flattened payload = %v, want %v", got.v, want)
		}
	}
}

func TestMatrixUniformsAreColumnMajor(t *testing.T) {
	f := newFakeGL()
	f.uniformLocs["transform"] = 1
	f.uniformLocs["normalMatrix"] = 2
	p := linkedProgram(t, f)

	m := mgl32.Translate3D(1, 2, 3)
	if err := p.SetUniformMatrix4("transform", m); err != nil {
		t.Fatalf("SetUniformMatrix4: %v", err)
	}
	call := f.uniformM4[0]
	if call.transpose {
		t.Error("matrix was uploaded with transpose set")
	}
	if len(call.v) != 16 {
		t.Fatalf("payload has %d elements, want 16", len(call.v))
	}
	// Column-major: the translation column occupies elements 12..14.
	if call.v[12] != 1 || call.v[13] != 2 || call.v[14] != 3 || call.v[15] != 1 {
		t.Errorf("translation column = %v", call.v[12:])
	}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			if call.v[col*4+row] != m.At(row, col) {
				t.Fatalf("element (%d,%d) misplaced in payload %v", row, col, call.v)
			}
		}
	}

	m3 := mgl32.Rotate3DZ(0.5)
	if err := p.SetUniformMatrix3("normalMatrix", m3); err != nil {
		t.Fatalf("SetUniformMatrix3: %v", err)
	}
	call = f.uniformM3[0]
	if call.transpose || len(call.v) != 9 {
		t.Fatalf("Mat3 payload = %+v", call)
	}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if call.v[col*3+row] != m3.At(row, col) {
				t.Fatalf("element (%d,%d) misplaced in payload %v", row, col, call.v)
			}
		}
	}
}

func TestColorChannelNormalization(t *testing.T) {
	f := newFakeGL()
	f.uniformLocs["tint"] = 1
	f.uniformLocs["rgba"] = 2
	p := linkedProgram(t, f)

	if err := p.SetUniform3uc("tint", [3]uint8{255, 128, 0}); err != nil {
		t.Fatalf("SetUniform3uc: %v", err)
	}
	got := f.uniform3f[0].v
	if got[0] != 1.0 || got[2] != 0.0 {
		t.Errorf("channel extremes = %v, want 1.0 and 0.0", got)
	}
	if got[1] != float32(128)/255.0 {
		t.Errorf("mid channel = %g, want %g", got[1], float32(128)/255.0)
	}

	if err := p.SetUniform4uc("rgba", [4]uint8{0, 0, 0, 255}); err != nil {
		t.Fatalf("SetUniform4uc: %v", err)
	}
	got = f.uniform4f[0].v
	if got[0] != 0.0 || got[3] != 1.0 {
		t.Errorf("rgba = %v, want leading 0.0 and trailing 1.0", got)
	}
}

func TestArrayUniformRejectsEmptySlice(t *testing.T) {
	f := newFakeGL()
	f.uniformLocs["values"] = 1
	p := linkedProgram(t, f)

	if err := p.SetUniform1iv("values", nil); !errors.Is(err, program.ErrEmptyArray) {
		t.Errorf("SetUniform1iv(nil): got %v, want ErrEmptyArray", err)
	}
	if err := p.SetUniform1fv("values", []float32{}); !errors.Is(err, program.ErrEmptyArray) {
		t.Errorf("SetUniform1fv(empty): got %v, want ErrEmptyArray", err)
	}
	if err := p.SetUniform3fv("values", nil); !errors.Is(err, program.ErrEmptyArray) {
		t.Errorf("SetUniform3fv(nil): got %v, want ErrEmptyArray", err)
	}
	if n := len(f.uniform1iv) + len(f.uniform1fv) + len(f.uniform3fv); n != 0 {
		t.Errorf("%d empty uploads reached the driver", n)
	}
	if f.uniformLookups != 0 {
		t.Errorf("location was resolved for an empty upload (%d lookups)", f.uniformLookups)
	}
}

func TestUniformSetterAbortsOnUnknownName(t *testing.T) {
	f := newFakeGL()
	p := linkedProgram(t, f)

	err := p.SetUniformf("missing", 1.0)
	if !errors.Is(err, program.ErrNameNotFound) {
		t.Fatalf("got %v, want ErrNameNotFound", err)
	}
	if len(f.uniform1f) != 0 {
		t.Errorf("upload was issued for an unresolved uniform: %+v", f.uniform1f)
	}
}
