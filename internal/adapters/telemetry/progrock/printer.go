package progrock

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/gom/internal/ui/output"
	"go.trai.ch/gom/internal/ui/style"
)

var _ progrock.Writer = (*Printer)(nil)

// Printer renders a progrock status stream as plain lines: one line per log
// line of a vertex, prefixed with the vertex name, and one line when a vertex
// completes.
type Printer struct {
	mu    sync.Mutex
	out   *termenv.Output
	names map[string]string
	done  map[string]bool
}

// NewPrinter creates a Printer writing to w, or to os.Stderr when w is nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	return &Printer{
		out:   output.New(w),
		names: make(map[string]string),
		done:  make(map[string]bool),
	}
}

// WriteStatus prints the logs and completions carried by status.
func (p *Printer) WriteStatus(status *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var b bytes.Buffer
	for _, v := range status.Vertexes {
		if v.Internal {
			continue
		}
		p.names[v.Id] = v.Name
		if v.Completed == nil || p.done[v.Id] {
			continue
		}
		p.done[v.Id] = true
		p.writeCompletion(&b, v)
	}

	for _, l := range status.Logs {
		name, ok := p.names[l.Vertex]
		if !ok {
			continue
		}
		for _, line := range bytes.SplitAfter(l.Data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			b.WriteString(p.faint(name + " |"))
			b.WriteByte(' ')
			b.Write(bytes.TrimRight(line, "\n"))
			b.WriteByte('\n')
		}
	}

	if b.Len() == 0 {
		return nil
	}
	_, err := p.out.Write(b.Bytes())
	return err
}

// Close does not close the destination.
func (p *Printer) Close() error {
	return nil
}

func (p *Printer) writeCompletion(b *bytes.Buffer, v *progrock.Vertex) {
	switch {
	case v.Error != nil:
		b.WriteString(p.color(style.Cross, style.Red) + " " + v.Name + ": " + *v.Error + "\n")
	case v.Canceled:
		b.WriteString(p.color(style.Cross, style.Red) + " " + v.Name + " canceled\n")
	default:
		b.WriteString(p.color(style.Check, style.Green) + " " + v.Name + "\n")
	}
}

func (p *Printer) color(s string, c lipgloss.Color) string {
	return p.out.String(s).Foreground(termenv.RGBColor(string(c))).String()
}

func (p *Printer) faint(s string) string {
	return p.color(s, style.Slate)
}
