package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestAskReadsOneLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("pobi,crong\r\nnext\n"), &out)

	line, err := p.Ask(context.Background(), "이름?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if line != "pobi,crong" {
		t.Fatalf("line = %q", line)
	}
	if out.String() != "이름?\n" {
		t.Fatalf("prompt output = %q", out.String())
	}
}

func TestAskWithoutTrailingNewline(t *testing.T) {
	p := NewPrompter(strings.NewReader("pobi"), io.Discard)
	line, err := p.Ask(context.Background(), "?")
	if err != nil || line != "pobi" {
		t.Fatalf("line=%q err=%v", line, err)
	}
}

func TestAskAtEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), io.Discard)
	if _, err := p.Ask(context.Background(), "?"); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, expected io.EOF", err)
	}
}

func TestAskCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewPrompter(r, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := p.Ask(ctx, "?"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, expected deadline exceeded", err)
	}
}

func TestPrinterReport(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)
	p.Report("pobi : --")
	p.Report("")
	if out.String() != "pobi : --\n\n" {
		t.Fatalf("output = %q", out.String())
	}
}

func TestAskAfterCancelGetsNextLine(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	p := NewPrompter(r, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := p.Ask(ctx, "?"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("first ask err = %v, expected deadline exceeded", err)
	}

	go func() {
		w.Write([]byte("pobi\n"))
	}()
	line, err := p.Ask(context.Background(), "?")
	if err != nil {
		t.Fatalf("second ask: %v", err)
	}
	if line != "pobi" {
		t.Fatalf("line = %q, expected pobi", line)
	}
}

func TestAskAfterEOFKeepsFailing(t *testing.T) {
	p := NewPrompter(strings.NewReader("pobi"), io.Discard)
	if line, err := p.Ask(context.Background(), "?"); err != nil || line != "pobi" {
		t.Fatalf("line=%q err=%v", line, err)
	}
	for i := 0; i < 2; i++ {
		if _, err := p.Ask(context.Background(), "?"); !errors.Is(err, io.EOF) {
			t.Fatalf("ask %d err = %v, expected io.EOF", i, err)
		}
	}
}
