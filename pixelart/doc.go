// Package pixelart validates ASCII text and renders it into a bordered
// '0'/'1' bitmap using the built-in variable-width font.
//
// What:
//
//   - Validate checks length and character support, reporting the first
//     offending rune left to right.
//   - Render composes one glyph per character with a single blank
//     spacing column between neighbors and a one-pixel zero border on
//     all four sides, then serializes each bitmap row to a string over
//     {'0','1'}.
//   - RenderLossy substitutes the space glyph for unsupported
//     characters instead of failing.
//   - Width reports the final bitmap width without rendering.
//
// Why:
//
//   - Terminal banners: print short labels as pixel rows.
//   - Input pipelines: turn labels into fixed-alphabet bit matrices.
//   - Display drivers: feed dot-matrix-style output surfaces.
//
// Complexity:
//
//   - Validate: O(n) time, O(n) memory         (n = character count).
//   - Render:   O(n·W) time, O(n·W) memory     (W = mean glyph width).
//   - Width:    O(n) time, O(n) memory.
//
// Options:
//
//   - Options.MaxTextLength: maximum character count (default 100).
//   - Options.OnUnsupported: FailOnUnsupported or SpaceOnUnsupported.
//
// Errors:
//
//   - ErrEmptyText: input has zero characters.
//   - ErrTextTooLong: input exceeds Options.MaxTextLength.
//   - ErrCharacterNotFound: input contains an unsupported character
//     (strict mode only).
//
// All operations are pure functions of their input: no shared mutable
// state, no I/O, safe for concurrent callers.
package pixelart
