// Package font provides the built-in variable-width bitmap font used
// for pixel-art rendering.
//
// What:
//
//   - A fixed, compiled-in table of 53 glyphs: 'A'–'Z', 'a'–'z' and space.
//   - Every glyph is exactly Height (5) pixel rows tall; widths vary
//     between MinWidth (1) and MaxWidth (5) columns to reduce
//     horizontal waste (narrow letters such as i, l, j, f, r, t, I use
//     1–3 columns; most lowercase use 4; most uppercase and m/w use 5).
//   - Lookup by rune, support queries, and a Space glyph used for
//     inter-character spacing and lossy substitution.
//
// Why:
//
//   - Pixel-art banners: render short labels without any font files.
//   - Lossy pipelines: substitute unsupported input with blank space.
//   - Diagnostics: enumerate the supported set via SupportedRunes.
//
// Complexity:
//
//   - Lookup / Supports: O(1), Memory: O(1).
//   - SupportedRunes: O(n log n) for the sort (n = 53), Memory: O(n).
//
// The table is populated once at package init and is read-only
// thereafter; unsynchronized concurrent reads are safe. No mutation
// API exists.
package font
