// Package decoder implements ports.Decoder on top of disintegration/imaging.
package decoder

import (
	"context"
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
)

var _ ports.Decoder = (*Decoder)(nil)

// SpanName is the name of the span recorded around every decode.
const SpanName = "decode"

// InstrumentationName identifies the decoder's tracer.
const InstrumentationName = "go.trai.ch/glance/decoder"

// Decoder reads images from the host file system and applies EXIF orientation.
type Decoder struct {
	tracer trace.Tracer
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithTracerProvider records decode spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(d *Decoder) {
		d.tracer = tp.Tracer(InstrumentationName)
	}
}

// New creates a Decoder.
func New(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	if d.tracer == nil {
		d.tracer = otel.Tracer(InstrumentationName)
	}
	return d
}

// Decode reads and decodes the image at locator.
func (d *Decoder) Decode(ctx context.Context, locator string) (*domain.Payload, error) {
	_, span := d.tracer.Start(ctx, SpanName, trace.WithAttributes(attribute.String("locator", locator)))
	defer span.End()

	payload, err := d.decode(ctx, locator)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("width", payload.Width),
		attribute.Int("height", payload.Height),
		attribute.Int64("size_bytes", payload.SizeBytes),
	)
	return payload, nil
}

func (d *Decoder) decode(ctx context.Context, locator string) (*domain.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewDecodeError(domain.DecodeUnknown, locator, err)
	}

	info, err := os.Stat(locator)
	if err != nil {
		return nil, classifyFSError(locator, err)
	}
	if !info.Mode().IsRegular() {
		return nil, domain.NewDecodeError(domain.DecodeUnsupportedFormat, locator, nil)
	}

	format, ok := domain.ParseFormat(filepath.Ext(locator))
	if !ok || !Decodable(format) {
		return nil, domain.NewDecodeError(domain.DecodeUnsupportedFormat, locator, nil)
	}

	// #nosec G304 -- locator comes from the navigator or the user
	f, err := os.Open(locator)
	if err != nil {
		return nil, classifyFSError(locator, err)
	}
	defer func() { _ = f.Close() }()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, classifyDecodeError(locator, err)
	}

	bounds := img.Bounds()
	return &domain.Payload{
		Image:     img,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
		Format:    format,
		SizeBytes: PixelBytes(img),
	}, nil
}

// Decodable reports whether a decoder is linked in for format.
// HEIF and HEIC are browsable but need a native codec this build does not carry.
func Decodable(format domain.Format) bool {
	switch format {
	case domain.FormatJPEG, domain.FormatJPG, domain.FormatPNG:
		return true
	default:
		return false
	}
}

func classifyFSError(locator string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return domain.NewDecodeError(domain.DecodeNotFound, locator, err)
	case errors.Is(err, fs.ErrPermission):
		return domain.NewDecodeError(domain.DecodePermissionDenied, locator, err)
	default:
		return domain.NewDecodeError(domain.DecodeUnknown, locator, err)
	}
}

func classifyDecodeError(locator string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return classifyFSError(locator, err)
	}
	// image.ErrFormat, FormatError and truncated streams all mean the bytes are unusable.
	return domain.NewDecodeError(domain.DecodeCorruptedData, locator, err)
}

// PixelBytes returns the size of the pixel buffers backing img.
func PixelBytes(img image.Image) int64 {
	switch m := img.(type) {
	case *image.NRGBA:
		return int64(len(m.Pix))
	case *image.RGBA:
		return int64(len(m.Pix))
	case *image.NRGBA64:
		return int64(len(m.Pix))
	case *image.RGBA64:
		return int64(len(m.Pix))
	case *image.Gray:
		return int64(len(m.Pix))
	case *image.Gray16:
		return int64(len(m.Pix))
	case *image.Paletted:
		return int64(len(m.Pix) + 4*len(m.Palette))
	case *image.YCbCr:
		return int64(len(m.Y) + len(m.Cb) + len(m.Cr))
	case *image.CMYK:
		return int64(len(m.Pix))
	default:
		b := img.Bounds()
		return int64(b.Dx()) * int64(b.Dy()) * 4
	}
}
