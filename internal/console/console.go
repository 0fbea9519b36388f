// Package console adapts stdin/stdout to the simulator's input and output.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter asks a question on w and reads one line from r. A single
// goroutine owns r, so a cancelled Ask leaves the next line for the next Ask.
type Prompter struct {
	r *bufio.Reader
	w io.Writer

	once  sync.Once
	lines chan lineResult
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

type lineResult struct {
	line string
	err  error
}

// readLines feeds p.lines until the reader fails, then closes it.
func (p *Prompter) readLines() {
	defer close(p.lines)
	for {
		line, err := p.r.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		p.lines <- lineResult{line: strings.TrimRight(line, "\r\n"), err: err}
		if err != nil {
			return
		}
	}
}

// Ask writes prompt and waits for one line. The trailing newline is dropped.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if _, err := fmt.Fprintln(p.w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	p.once.Do(func() {
		p.lines = make(chan lineResult)
		go p.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", fmt.Errorf("read input: %w", io.EOF)
		}
		if res.err != nil {
			return "", fmt.Errorf("read input: %w", res.err)
		}
		return res.line, nil
	}
}

// Printer writes one line per report.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Report(msg string) {
	fmt.Fprintln(p.w, msg)
}
