package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/lumen/pkg/shading"
)

func ppmString(t *testing.T, fb *Framebuffer) string {
	t.Helper()
	var sb strings.Builder
	if err := fb.WritePPM(&sb); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}
	return sb.String()
}

// linesOf returns lines first..last (1-based, inclusive) with newlines.
func linesOf(s string, first, last int) string {
	lines := strings.SplitAfter(s, "\n")
	return strings.Join(lines[first-1:last], "")
}

func TestPPMHeader(t *testing.T) {
	got := linesOf(ppmString(t, NewFramebuffer(5, 3)), 1, 3)
	if want := "P3\n5 3\n255\n"; got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestPPMPixelData(t *testing.T) {
	fb := NewFramebuffer(5, 3)
	fb.SetPixel(0, 0, shading.RGB(1.5, 0, 0))
	fb.SetPixel(2, 1, shading.RGB(0, 0.5, 0))
	fb.SetPixel(4, 2, shading.RGB(-0.5, 0, 1))

	got := linesOf(ppmString(t, fb), 4, 6)
	want := "255 0 0 0 0 0 0 0 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0\n" +
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255\n"
	if got != want {
		t.Errorf("pixel data =\n%s\nwant\n%s", got, want)
	}
}

func TestPPMSplitsLongLines(t *testing.T) {
	fb := NewFramebuffer(10, 2)
	fb.Clear(shading.RGB(1, 0.8, 0.6))

	got := linesOf(ppmString(t, fb), 4, 7)
	want := "255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204\n" +
		"153 255 204 153 255 204 153 255 204 153 255 204 153\n" +
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204\n" +
		"153 255 204 153 255 204 153 255 204 153 255 204 153\n"
	if got != want {
		t.Errorf("pixel data =\n%s\nwant\n%s", got, want)
	}

	for i, line := range strings.Split(got, "\n") {
		if len(line) > maxPPMLine {
			t.Errorf("line %d has %d characters", i, len(line))
		}
	}
}

func TestPPMEndsWithNewline(t *testing.T) {
	if got := ppmString(t, NewFramebuffer(5, 3)); !strings.HasSuffix(got, "\n") {
		t.Error("ppm output should end with a newline")
	}
}

func TestSavePPM(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.SetPixel(1, 0, shading.White)

	path := filepath.Join(t.TempDir(), "out.ppm")
	if err := fb.SavePPM(path); err != nil {
		t.Fatalf("SavePPM: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "P3\n2 1\n255\n0 0 0 255 255 255\n"; string(data) != want {
		t.Errorf("file = %q, want %q", data, want)
	}
}
