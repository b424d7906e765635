package domain

import "go.trai.ch/zerr"

var (
	// ErrResourceNotFound is returned when the resource at a locator does not exist.
	ErrResourceNotFound = zerr.New("image not found")

	// ErrPermissionDenied is returned when the resource exists but cannot be read.
	ErrPermissionDenied = zerr.New("permission denied")

	// ErrCorruptedData is returned when the resource is readable but cannot be decoded.
	ErrCorruptedData = zerr.New("image data is corrupted")

	// ErrUnsupportedFormat is returned when the resource is not one of the supported formats.
	ErrUnsupportedFormat = zerr.New("unsupported image format")

	// ErrDecodeFailed is returned for decode failures that fit no other kind.
	ErrDecodeFailed = zerr.New("failed to decode image")

	// ErrFolderInaccessible is returned when the containing folder cannot be listed.
	ErrFolderInaccessible = zerr.New("folder is inaccessible")

	// ErrNoResourcesFound is returned when a folder contains no supported images.
	ErrNoResourcesFound = zerr.New("no supported images found")

	// ErrNoCurrentResource is returned when navigating before anything was opened.
	ErrNoCurrentResource = zerr.New("no image is open")

	// ErrConfigReadFailed is the message wrapped around errors reading the configuration file.
	// The underlying OS error stays matchable.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is the message wrapped around YAML decoding errors.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrInvalidCacheBudget is returned when the configured cache budget cannot be parsed.
	ErrInvalidCacheBudget = zerr.New("invalid cache budget")

	// ErrInvalidLocale is returned when the configured collation locale is not a BCP 47 tag.
	ErrInvalidLocale = zerr.New("invalid locale")

	// ErrInvalidPrefetchWorkers is returned when the prefetch worker count is negative.
	ErrInvalidPrefetchWorkers = zerr.New("prefetch workers must not be negative")

	// ErrWarmFailed is returned when one or more resources failed to decode during warm.
	ErrWarmFailed = zerr.New("some images failed to decode")
)

// DecodeErrorKind classifies why a resource could not be decoded.
type DecodeErrorKind uint8

const (
	// DecodeUnknown covers failures without a more specific kind.
	DecodeUnknown DecodeErrorKind = iota
	// DecodeNotFound means the locator does not resolve to an existing resource.
	DecodeNotFound
	// DecodePermissionDenied means the resource exists but is not readable.
	DecodePermissionDenied
	// DecodeCorruptedData means the bytes could not be decoded as an image.
	DecodeCorruptedData
	// DecodeUnsupportedFormat means no decoder is available for the format.
	DecodeUnsupportedFormat
)

// Sentinel returns the package-level error matched by this kind.
func (k DecodeErrorKind) Sentinel() error {
	switch k {
	case DecodeNotFound:
		return ErrResourceNotFound
	case DecodePermissionDenied:
		return ErrPermissionDenied
	case DecodeCorruptedData:
		return ErrCorruptedData
	case DecodeUnsupportedFormat:
		return ErrUnsupportedFormat
	default:
		return ErrDecodeFailed
	}
}

func (k DecodeErrorKind) String() string {
	switch k {
	case DecodeNotFound:
		return "not_found"
	case DecodePermissionDenied:
		return "permission_denied"
	case DecodeCorruptedData:
		return "corrupted_data"
	case DecodeUnsupportedFormat:
		return "unsupported_format"
	default:
		return "unknown"
	}
}

// DecodeError is the failure returned by a Decoder.
// It matches its kind's sentinel with errors.Is and unwraps to the underlying cause.
type DecodeError struct {
	Kind    DecodeErrorKind
	Locator string
	// Detail is only set for DecodeUnknown.
	Detail string
	Err    error
}

// NewDecodeError creates a DecodeError of the given kind.
func NewDecodeError(kind DecodeErrorKind, locator string, cause error) *DecodeError {
	e := &DecodeError{Kind: kind, Locator: locator, Err: cause}
	if kind == DecodeUnknown && cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

func (e *DecodeError) Error() string {
	msg := e.Message()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Message returns the error text without the cause.
func (e *DecodeError) Message() string {
	msg := e.Kind.Sentinel().Error()
	if e.Locator != "" {
		msg += ": " + e.Locator
	}
	return msg
}

// Is reports whether target is the sentinel for this error's kind.
func (e *DecodeError) Is(target error) bool {
	return target == e.Kind.Sentinel()
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NavigationErrorKind classifies why a working set could not be built.
type NavigationErrorKind uint8

const (
	// NavigationFolderInaccessible means the folder could not be listed.
	NavigationFolderInaccessible NavigationErrorKind = iota
	// NavigationNoResourcesFound means nothing in the folder survived filtering.
	NavigationNoResourcesFound
)

// Sentinel returns the package-level error matched by this kind.
func (k NavigationErrorKind) Sentinel() error {
	if k == NavigationNoResourcesFound {
		return ErrNoResourcesFound
	}
	return ErrFolderInaccessible
}

// NavigationError is the failure returned by the navigator.
type NavigationError struct {
	Kind   NavigationErrorKind
	Folder string
	Err    error
}

// NewNavigationError creates a NavigationError of the given kind.
func NewNavigationError(kind NavigationErrorKind, folder string, cause error) *NavigationError {
	return &NavigationError{Kind: kind, Folder: folder, Err: cause}
}

func (e *NavigationError) Error() string {
	return e.Message()
}

// Message returns the error text without the cause.
func (e *NavigationError) Message() string {
	msg := e.Kind.Sentinel().Error()
	if e.Folder != "" {
		msg += ": " + e.Folder
	}
	return msg
}

// Is reports whether target is the sentinel for this error's kind.
func (e *NavigationError) Is(target error) bool {
	return target == e.Kind.Sentinel()
}

// Unwrap returns the underlying cause.
func (e *NavigationError) Unwrap() error {
	return e.Err
}
