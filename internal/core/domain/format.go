package domain

import "strings"

// Format is one of the image formats the viewer can browse.
type Format uint8

const (
	// FormatUnknown is the zero value and never part of a working set.
	FormatUnknown Format = iota
	// FormatJPEG is a .jpeg file.
	FormatJPEG
	// FormatJPG is a .jpg file.
	FormatJPG
	// FormatPNG is a .png file.
	FormatPNG
	// FormatHEIF is a .heif file.
	FormatHEIF
	// FormatHEIC is a .heic file.
	FormatHEIC
)

var formatExtensions = map[Format]string{
	FormatJPEG: "jpeg",
	FormatJPG:  "jpg",
	FormatPNG:  "png",
	FormatHEIF: "heif",
	FormatHEIC: "heic",
}

// ParseFormat resolves a file extension, with or without the leading dot, case-insensitively.
func ParseFormat(ext string) (Format, bool) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for f, e := range formatExtensions {
		if e == ext {
			return f, true
		}
	}
	return FormatUnknown, false
}

// SupportedExtensions returns the lowercase extensions of every supported format.
func SupportedExtensions() []string {
	return []string{"jpeg", "jpg", "png", "heif", "heic"}
}

// String returns the lowercase extension of the format.
func (f Format) String() string {
	if e, ok := formatExtensions[f]; ok {
		return e
	}
	return "unknown"
}

// DisplayName returns the user facing name, folding extension aliases.
func (f Format) DisplayName() string {
	switch f {
	case FormatJPEG, FormatJPG:
		return "JPEG"
	case FormatPNG:
		return "PNG"
	case FormatHEIF, FormatHEIC:
		return "HEIF"
	default:
		return "Unknown"
	}
}
