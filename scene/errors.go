package scene

import "github.com/pkg/errors"

var (
	// ErrDecode reports an image file that cannot be opened or parsed.
	ErrDecode = errors.New("image decode failed")
	// ErrUnsupportedFormat reports a decoded image that is neither RGB nor RGBA.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrNotFound          = errors.New("not found")
	ErrCapacityExceeded  = errors.New("registry capacity exceeded")
)
