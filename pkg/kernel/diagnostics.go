package kernel

import "github.com/google/uuid"

// Diagnostics receives internal anomalies (spec.md §7's InvalidFaceId) that
// never abort a query but are worth surfacing to the host application's
// logging channel. Generalizes the teacher's Printf-only core.Logger into
// a small structured sink, since the kernel needs to report
// (query id, mesh label, face id, polygon count) tuples rather than
// formatted text.
type Diagnostics interface {
	InvalidFaceID(queryID uuid.UUID, meshLabel string, faceID int, polygonCount int)
}

// NopDiagnostics discards every diagnostic. It is the default when a
// caller does not supply one, mirroring the teacher's pattern of a silent
// default logger.
type NopDiagnostics struct{}

func (NopDiagnostics) InvalidFaceID(uuid.UUID, string, int, int) {}
