// Package demo walks a list through every positional operation and prints
// what each step produced, including the range errors it provokes.
package demo

import (
	"errors"
	"fmt"
	"io"

	"github.com/Avik32223/linked-list/internal/resp"
	"github.com/Avik32223/linked-list/pkg/lists"
)

type Format string

const (
	Text Format = "text"
	RESP Format = "resp"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, RESP:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q, want %q or %q", s, Text, RESP)
}

var DefaultValues = []int{5, 8, 1, 2, 9, 23, 10}

type printer struct {
	w      io.Writer
	format Format
}

func (p printer) print(v any) error {
	if p.format == RESP {
		s, err := resp.Serialize(v)
		if err != nil {
			return err
		}
		_, err = io.WriteString(p.w, s)
		return err
	}
	if err, ok := v.(error); ok {
		_, werr := fmt.Fprintf(p.w, "error handled: %s\n", err)
		return werr
	}
	_, err := fmt.Fprintln(p.w, v)
	return err
}

// result prints v, or err when it is a range error. Any other error is
// returned so the walk stops.
func (p printer) result(v any, err error) error {
	if err != nil {
		if !errors.Is(err, lists.ErrIndexOutOfRange) {
			return err
		}
		return p.print(err)
	}
	return p.print(v)
}

// Run builds a list from values and exercises it, writing one entry per
// step to w.
func Run(w io.Writer, values []int, format Format) error {
	p := printer{w: w, format: format}
	l, err := lists.New(values...)
	if err != nil {
		return err
	}

	for v := range l.All() {
		if err := p.print(v); err != nil {
			return err
		}
	}
	if err := p.print(l.Len()); err != nil {
		return err
	}

	steps := []func() (any, error){
		func() (any, error) { return l.Get(100) },
		func() (any, error) {
			l.AddAtHead(3)
			v, _ := l.Front()
			return v, nil
		},
		func() (any, error) { return l, l.AddAtIndex(20, 0) },
		func() (any, error) { return l, nil },
		func() (any, error) { return l, l.DeleteAtIndex(6) },
		func() (any, error) { return l, nil },
		func() (any, error) { return l, l.Set(0, 1) },
		func() (any, error) { return l, l.Set(20, 1) },
	}
	for _, step := range steps {
		if err := p.result(step()); err != nil {
			return err
		}
	}
	return nil
}
