// Package input reads validated values from an interactive prompt.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Integer prompts on w and reads lines from r until one holds an integer in
// [min, max]. An empty line, or end of input before anything is typed,
// selects def. Invalid lines print an explanation and prompt again.
func Integer(r *bufio.Reader, w io.Writer, prompt string, min, max, def int) (int, error) {
	for {
		fmt.Fprint(w, prompt)
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read input: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(w)
			}
			return def, nil
		}

		num, convErr := strconv.Atoi(line)
		switch {
		case convErr != nil:
			fmt.Fprintln(w, "Error. Non-numeric character(s) entered. Please enter numeric characters only.")
		case num < min || num > max:
			fmt.Fprintf(w, "Error. Please enter a value between %d and %d.\n", min, max)
		default:
			return num, nil
		}
		if errors.Is(err, io.EOF) {
			return def, nil
		}
	}
}
