// Package opponent acquires the player's move from the terminal.
package opponent

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/game"
)

// StdinPrompter reads the player's move from an input stream, re-prompting
// until the input parses. The returned move is always valid.
type StdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewStdinPrompter creates a prompter over the given streams.
func NewStdinPrompter(in io.Reader, out io.Writer) *StdinPrompter {
	return &StdinPrompter{in: bufio.NewReader(in), out: out}
}

// PromptMove asks for the player's move until a valid one is entered.
func (p *StdinPrompter) PromptMove(ctx context.Context) (game.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fmt.Fprint(p.out, "What did you play (rock, paper, scissors): ")
		line, err := p.in.ReadString('\n')
		if err != nil {
			if err == io.EOF && line == "" {
				return "", fmt.Errorf("input closed: %w", err)
			}
			if err != io.EOF {
				return "", fmt.Errorf("read move: %w", err)
			}
		}

		move, parseErr := game.ParseMove(line)
		if parseErr != nil {
			fmt.Fprintf(p.out, "Error: %v\n", parseErr)
			if err == io.EOF {
				return "", fmt.Errorf("input closed: %w", err)
			}
			continue
		}
		return move, nil
	}
}
