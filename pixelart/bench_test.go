package pixelart_test

import (
	"strings"
	"testing"

	"github.com/rrumana/text-to-input/pixelart"
)

// benchmarkRender runs Render on text using opts, failing the benchmark
// on unexpected errors.
func benchmarkRender(b *testing.B, text string, opts pixelart.Options) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pixelart.Render(text, opts); err != nil {
			b.Fatalf("Render failed: %v", err)
		}
	}
}

// BenchmarkRender_Short benchmarks a two-glyph render.
func BenchmarkRender_Short(b *testing.B) {
	benchmarkRender(b, "Hi", pixelart.DefaultOptions())
}

// BenchmarkRender_Sentence benchmarks a typical label.
func BenchmarkRender_Sentence(b *testing.B) {
	benchmarkRender(b, "Hello World", pixelart.DefaultOptions())
}

// BenchmarkRender_MaxLength benchmarks the default length ceiling.
func BenchmarkRender_MaxLength(b *testing.B) {
	benchmarkRender(b, strings.Repeat("HelloWorld", 10), pixelart.DefaultOptions())
}

// BenchmarkRenderLossy_Mixed benchmarks lossy substitution on input
// that is half unsupported punctuation.
func BenchmarkRenderLossy_Mixed(b *testing.B) {
	text := strings.Repeat("Hi!? ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pixelart.RenderLossy(text, pixelart.DefaultOptions()); err != nil {
			b.Fatalf("RenderLossy failed: %v", err)
		}
	}
}

// BenchmarkValidate benchmarks the strict support scan alone.
func BenchmarkValidate(b *testing.B) {
	text := strings.Repeat("HelloWorld", 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := pixelart.Validate(text, pixelart.DefaultOptions()); err != nil {
			b.Fatalf("Validate failed: %v", err)
		}
	}
}
