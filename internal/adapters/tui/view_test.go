package tui_test

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/glance/internal/adapters/tui"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
)

func loadedFrame() tui.Frame {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	return tui.Frame{
		State:   domain.StateLoaded,
		Current: domain.ResourceDescriptor{Locator: "/p/sunset.jpg", Name: "sunset.jpg", Size: 3 * 1024 * 1024, Format: domain.FormatJPG},
		Payload: &domain.Payload{Image: img, Width: 4032, Height: 3024, Format: domain.FormatJPG, SizeBytes: 128},
		Index:   2,
		Total:   12,
		Stats:   ports.CacheStats{Count: 3, TotalBytes: 48 * 1024 * 1024, Budget: 500 * 1024 * 1024},
	}
}

func TestInfoLine(t *testing.T) {
	tests := []struct {
		name  string
		frame tui.Frame
		want  string
	}{
		{name: "loaded", frame: loadedFrame(), want: "sunset.jpg • 4032x3024 • 3.0 MiB • 3/12"},
		{
			name: "no payload",
			frame: tui.Frame{
				Current: domain.ResourceDescriptor{Name: "a.png", Size: 10},
				Index:   0,
				Total:   1,
			},
			want: "a.png • 10 B • 1/1",
		},
		{
			name:  "outside working set",
			frame: tui.Frame{Current: domain.ResourceDescriptor{Name: "x.png"}, Index: -1, Total: 4},
			want:  "x.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tui.InfoLine(tt.frame))
		})
	}
}

func TestErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  domain.NewDecodeError(domain.DecodeNotFound, "/p/a.png", nil),
			want: "image not found: a.png",
		},
		{
			name: "unknown keeps detail",
			err:  domain.NewDecodeError(domain.DecodeUnknown, "/p/a.png", errors.New("disk on fire")),
			want: "failed to decode image: a.png (disk on fire)",
		},
		{
			name: "navigation",
			err:  domain.NewNavigationError(domain.NavigationNoResourcesFound, "/p", nil),
			want: "no supported images found: /p",
		},
		{name: "plain", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tui.ErrorText(tt.err))
		})
	}
}

func TestModel_View(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name       string
		frame      tui.Frame
		showInfo   bool
		goldenName string
	}{
		{name: "loaded", frame: loadedFrame(), showInfo: true, goldenName: "view_loaded"},
		{name: "info hidden", frame: loadedFrame(), showInfo: false, goldenName: "view_info_hidden"},
		{
			name: "failed",
			frame: tui.Frame{
				State:   domain.StateFailed,
				Current: domain.ResourceDescriptor{Locator: "/p/broken.png", Name: "broken.png"},
				Err:     domain.NewDecodeError(domain.DecodeCorruptedData, "/p/broken.png", nil),
				Index:   0,
				Total:   1,
				Stats:   ports.CacheStats{Budget: 500 * 1024 * 1024},
			},
			showInfo:   true,
			goldenName: "view_failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tui.NewModel(nil)
			m.Update(tt.frame)
			m.ShowInfo = tt.showInfo
			m.Width, m.Height = 40, 6

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, []byte(m.View()))
		})
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, maxW, maxH int
		wantW, wantH           int
	}{
		{name: "fits", srcW: 10, srcH: 5, maxW: 80, maxH: 40, wantW: 10, wantH: 5},
		{name: "wide", srcW: 400, srcH: 100, maxW: 80, maxH: 40, wantW: 80, wantH: 20},
		{name: "tall", srcW: 100, srcH: 400, maxW: 80, maxH: 40, wantW: 10, wantH: 40},
		{name: "never zero", srcW: 10000, srcH: 1, maxW: 10, maxH: 10, wantW: 10, wantH: 1},
		{name: "empty", srcW: 0, srcH: 10, maxW: 10, maxH: 10, wantW: 0, wantH: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tui.FitSize(tt.srcW, tt.srcH, tt.maxW, tt.maxH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestRenderPreview(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	plain := tui.RenderPreview(img, 10, 10, termenv.Ascii)
	assert.Equal(t, "▀▀▀▀\n▀▀▀▀", plain, "two pixel rows per cell")

	colored := tui.RenderPreview(img, 10, 10, termenv.TrueColor)
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, 8, strings.Count(colored, "▀"))

	assert.Empty(t, tui.RenderPreview(nil, 10, 10, termenv.Ascii))
	assert.Empty(t, tui.RenderPreview(img, 0, 10, termenv.Ascii))
}
