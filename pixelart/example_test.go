package pixelart_test

import (
	"fmt"

	"github.com/rrumana/text-to-input/pixelart"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRender
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Render "ill" — three narrow glyphs (1 column each) separated by
//	single blank spacing columns, wrapped in a one-pixel border.
//
// ExampleRender demonstrates narrow-glyph composition.
func ExampleRender() {
	rows, err := pixelart.Render("ill", pixelart.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range rows {
		fmt.Println(row)
	}
	// Output:
	// 0000000
	// 0101010
	// 0001010
	// 0101010
	// 0101010
	// 0101010
	// 0000000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleValidate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Strict validation rejects the first character outside the
//	supported set ('A'–'Z', 'a'–'z', space).
//
// ExampleValidate demonstrates the strict-mode error taxonomy.
func ExampleValidate() {
	fmt.Println(pixelart.Validate("Hello World", pixelart.DefaultOptions()))
	fmt.Println(pixelart.Validate("Hello!", pixelart.DefaultOptions()))
	// Output:
	// <nil>
	// pixelart: character not found in font: '!'
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleWidth
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Size an output surface before rendering: Σ glyph widths +
//	inter-glyph spacing + two border columns.
//
// ExampleWidth demonstrates the width formula without rendering.
func ExampleWidth() {
	w, err := pixelart.Width("Hello World", pixelart.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("width:", w)
	// Output:
	// width: 47
}
