// Command texttoinput is an interactive shell over the pixel-art
// renderer: it prompts for one line of text, renders it with the
// built-in font, and prints the resulting '0'/'1' rows.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rrumana/text-to-input/pixelart"
)

func main() {
	fmt.Print("Enter your text input: ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintf(os.Stderr, "Error: could not read input: %v\n", err)

		return
	}

	rows, err := pixelart.Render(strings.TrimSpace(line), pixelart.DefaultOptions())
	if err != nil {
		report(err)

		return
	}

	fmt.Println("\noutput:")
	for _, row := range rows {
		fmt.Println(row)
	}
}

// report maps each error kind to its own message. Errors end the run
// normally; they are reported, never fatal.
func report(err error) {
	switch {
	case errors.Is(err, pixelart.ErrCharacterNotFound):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Supported characters: A-Z, a-z, and space")
	case errors.Is(err, pixelart.ErrTextTooLong):
		fmt.Fprintf(os.Stderr, "Error: %v; shorten the text and try again\n", err)
	case errors.Is(err, pixelart.ErrEmptyText):
		fmt.Fprintln(os.Stderr, "Error: no text entered; nothing to render")
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
