package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/taigrr/lumen/pkg/shading"
)

// maxPPMLine is the longest line written to a PPM body.
const maxPPMLine = 70

// WritePPM writes the framebuffer as a plain (P3) PPM image.
// Body lines never exceed 70 characters and each pixel row starts on a new
// line.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height)

	for y := 0; y < fb.Height; y++ {
		lineLen := 0
		for x := 0; x < fb.Width; x++ {
			c := fb.Pixels[y*fb.Width+x]
			for _, v := range [3]float64{c.R, c.G, c.B} {
				writePPMValue(bw, shading.Channel8(v), &lineLen)
			}
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}

func writePPMValue(w *bufio.Writer, v uint8, lineLen *int) {
	s := strconv.Itoa(int(v))
	if *lineLen+len(s)+1 > maxPPMLine {
		w.WriteByte('\n')
		*lineLen = 0
	}
	if *lineLen != 0 {
		w.WriteByte(' ')
		*lineLen++
	}
	w.WriteString(s)
	*lineLen += len(s)
}

// SavePPM saves the framebuffer as a PPM file.
func (fb *Framebuffer) SavePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create ppm: %w", err)
	}
	defer f.Close()

	return fb.WritePPM(f)
}
