// Package progrock records package copies as progrock vertices.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/gom/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock.Writer.
type Recorder struct {
	rec *progrock.Recorder
}

// New creates a Recorder that discards every status update.
func New() *Recorder {
	return NewRecorder(progrock.Discard{})
}

// NewRecorder creates a Recorder writing status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{rec: progrock.NewRecorder(w)}
}

// Record starts a vertex named after the unit of work.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Close completes the recording and closes the underlying writer.
func (r *Recorder) Close() error {
	r.rec.Complete()
	return r.rec.Close()
}
