// Package pixelart defines options, the fallback policy enum, and
// sentinel errors for the renderer.
package pixelart

import "errors"

// DefaultMaxTextLength bounds input size when Options.MaxTextLength is
// unset. The cap protects against unbounded output, not memory safety.
const DefaultMaxTextLength = 100

// Sentinel errors for validation and rendering. Payloads (the offending
// rune, the character count) are attached by wrapping; match with
// errors.Is.
var (
	// ErrEmptyText indicates the input has zero characters.
	ErrEmptyText = errors.New("pixelart: text must not be empty")
	// ErrTextTooLong indicates the input exceeds the configured maximum.
	ErrTextTooLong = errors.New("pixelart: text too long")
	// ErrCharacterNotFound indicates an input character outside the
	// supported set ('A'–'Z', 'a'–'z', space).
	ErrCharacterNotFound = errors.New("pixelart: character not found in font")
)

// Fallback selects how rendering treats characters the font does not
// support.
//
//   - FailOnUnsupported — reject the input with ErrCharacterNotFound,
//     naming the first offending character left to right.
//   - SpaceOnUnsupported — substitute the blank space glyph and keep
//     rendering; nothing is ever rejected for its characters.
type Fallback int

const (
	// FailOnUnsupported rejects unsupported characters (strict mode).
	FailOnUnsupported Fallback = iota

	// SpaceOnUnsupported renders unsupported characters as blank space
	// (lossy mode).
	SpaceOnUnsupported
)

// Options configures validation and rendering.
//
// Fields:
//   - MaxTextLength — maximum character count accepted. Zero or
//     negative means DefaultMaxTextLength.
//   - OnUnsupported — fallback policy for unsupported characters.
//
// Example:
//
//	opts := pixelart.DefaultOptions()
//	opts.MaxTextLength = 32
//
//	rows, err := pixelart.Render("Hello World", opts)
//	if err != nil {
//	  // handle ErrEmptyText, ErrTextTooLong or ErrCharacterNotFound
//	}
type Options struct {
	MaxTextLength int
	OnUnsupported Fallback
}

// DefaultOptions returns the default configuration:
// MaxTextLength=DefaultMaxTextLength, OnUnsupported=FailOnUnsupported.
func DefaultOptions() Options {
	return Options{
		MaxTextLength: DefaultMaxTextLength,
		OnUnsupported: FailOnUnsupported,
	}
}

// maxLength resolves the effective length limit.
func (o Options) maxLength() int {
	if o.MaxTextLength <= 0 {
		return DefaultMaxTextLength
	}

	return o.MaxTextLength
}
