// Package diag wires the kernel's Diagnostics interface to structured
// logging, the way the teacher's command-line entrypoint wires its own
// internal events to slog.
package diag

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/df07/meshxsect/pkg/kernel"
)

// SlogDiagnostics reports kernel.Diagnostics events to a *slog.Logger.
type SlogDiagnostics struct {
	Logger *slog.Logger
}

// NewSlogDiagnostics returns a SlogDiagnostics writing to the given
// logger, or to slog.Default() if logger is nil.
func NewSlogDiagnostics(logger *slog.Logger) SlogDiagnostics {
	if logger == nil {
		logger = slog.Default()
	}
	return SlogDiagnostics{Logger: logger}
}

func (d SlogDiagnostics) InvalidFaceID(queryID uuid.UUID, meshLabel string, faceID int, polygonCount int) {
	d.Logger.Warn("invalid face id dropped",
		"query_id", queryID.String(),
		"mesh", meshLabel,
		"face_id", faceID,
		"polygon_count", polygonCount,
	)
}

var _ kernel.Diagnostics = SlogDiagnostics{}
