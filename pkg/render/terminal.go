package render

import uv "github.com/charmbracelet/ultraviolet"

// Draw converts the framebuffer to terminal cells and draws them in area.
// Each terminal row shows two framebuffer rows: ▀ with fg=top color and
// bg=bottom color.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: fb.PixelAt(x, topY).RGBA(),
					Bg: fb.PixelAt(x, botY).RGBA(),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}
