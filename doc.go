// Package texttoinput turns short ASCII strings into pixel-art bitmaps
// rendered with a built-in variable-width 5-pixel-high font.
//
// 🚀 What is text-to-input?
//
//	A small library that composes per-character pixel glyphs into a
//	single bordered bitmap and serializes it to rows of '0'/'1'
//	characters:
//	  • font/           — the immutable glyph table: 52 Latin letters + space
//	  • pixelart/       — validation, glyph composition & serialization
//	  • cmd/texttoinput — interactive shell over the renderer
//
// ✨ Why choose text-to-input?
//
//   - Deterministic — identical input yields byte-identical output
//   - Concurrency-safe — the glyph table is write-once at init,
//     rendering shares no mutable state
//   - Strict or lossy — fail on unsupported characters, or substitute
//     blank space and keep going
//
// Quick ASCII example, Render("ill"):
//
//	0000000
//	0101010
//	0001010
//	0101010
//	0101010
//	0101010
//	0000000
//
// See pixelart/example_test.go for runnable examples.
package texttoinput
