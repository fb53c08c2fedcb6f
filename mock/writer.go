package mock

import (
	"context"

	"github.com/emontes/prodex"
)

var _ prodex.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of prodex.RecordWriter.
type RecordWriter struct {
	WriteRecordFn func(ctx context.Context, rec *prodex.Record, filename string) (string, error)
}

func (w *RecordWriter) WriteRecord(ctx context.Context, rec *prodex.Record, filename string) (string, error) {
	return w.WriteRecordFn(ctx, rec, filename)
}
