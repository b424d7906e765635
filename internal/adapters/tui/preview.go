package tui

import (
	"image"
	"image/color"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/ui/output"
	xdraw "golang.org/x/image/draw"
)

// halfBlock draws the top pixel in the foreground and the bottom pixel in the background.
const halfBlock = "▀"

type previewKey struct {
	payload *domain.Payload
	width   int
	height  int
}

// previewCache keeps the last rendered preview so View stays cheap between frames.
type previewCache struct {
	key      previewKey
	rendered string
}

func (c *previewCache) get(p *domain.Payload, width, height int) string {
	key := previewKey{payload: p, width: width, height: height}
	if c.key == key && c.rendered != "" {
		return c.rendered
	}
	c.key = key
	c.rendered = RenderPreview(p.Image, width, height, output.ColorProfile())
	return c.rendered
}

// FitSize returns the largest size with the aspect ratio of src that fits in maxW x maxH.
func FitSize(srcW, srcH, maxW, maxH int) (w, h int) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	if srcW <= maxW && srcH <= maxH {
		return srcW, srcH
	}
	w, h = maxW, srcH*maxW/srcW
	if h > maxH {
		w, h = srcW*maxH/srcH, maxH
	}
	return max(w, 1), max(h, 1)
}

// RenderPreview renders img into at most cols x rows terminal cells using half blocks.
// Each cell covers two vertically stacked pixels.
func RenderPreview(img image.Image, cols, rows int, profile termenv.Profile) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), cols, rows*2)
	if w == 0 || h == 0 {
		return ""
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range w {
			top := scaled.RGBAAt(x, y)
			bottom := color.RGBA{}
			if y+1 < h {
				bottom = scaled.RGBAAt(x, y+1)
			}
			cell := profile.String(halfBlock).
				Foreground(profile.FromColor(top)).
				Background(profile.FromColor(bottom))
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}
