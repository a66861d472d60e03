package main

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/marcodamonte/concurrency/generic-list/list"
)

// sink is the line-oriented text output every section writes to. Numbers
// are formatted for the configured language.
type sink struct {
	w io.Writer
	p *message.Printer
}

func newSink(w io.Writer, tag language.Tag) *sink {
	return &sink{w: w, p: message.NewPrinter(tag)}
}

func (s *sink) Printf(format string, a ...any) {
	s.p.Fprintf(s.w, format, a...)
}

func (s *sink) Println(a ...any) {
	s.p.Fprintln(s.w, a...)
}

func (s *sink) section(title string) {
	s.Printf("\n━━━ %s ━━━\n", title)
}

// formatList renders l as [a b c] with each element formatted by the sink's
// printer. List.String uses plain fmt and would skip localization.
func formatList[T any](s *sink, l *list.List[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.p.Sprint(v))
	}
	sb.WriteByte(']')
	return sb.String()
}
