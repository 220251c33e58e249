// Package pipeline orchestrates the compile stages: ingest the sparse
// base mapping, expand its prefix closure, resolve placeholders to
// their nearest ancestor, and compile the sorted table. The stages run
// strictly in sequence; each consumes an immutable view of its
// predecessor's output, so the whole transform is deterministic and
// idempotent.
package pipeline

import (
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rate-table/core/closure"
	"rate-table/core/ingest"
	"rate-table/core/table"
	"rate-table/internal/logging"
)

// Stats aggregates per-stage counters for one compile run.
type Stats struct {
	// RowsAccepted counts valid input rows.
	RowsAccepted int

	// RowsDropped counts malformed input rows.
	RowsDropped int

	// BasePrefixes counts distinct prefixes after last-write-wins.
	BasePrefixes int

	// ClosureNodes counts nodes after closure expansion.
	ClosureNodes int

	// Unresolved counts placeholders with no defined ancestor at any
	// length. These are dropped from the compiled table.
	Unresolved int
}

// Result is the outcome of one compile run.
type Result struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID

	// Table is the compiled artifact.
	Table *table.Table

	// Stats holds the per-stage counters.
	Stats Stats
}

// Compile runs the full pipeline over a CSV rate sheet.
func Compile(r io.Reader, cols ingest.Columns) (*Result, error) {
	runID := uuid.New()
	log := logging.With(zap.String("run_id", runID.String()))

	base, istats, err := ingest.Read(r, cols)
	if err != nil {
		return nil, err
	}
	log.Info("ingested rate sheet",
		zap.Int("rows_accepted", istats.RowsAccepted),
		zap.Int("rows_dropped", istats.RowsDropped),
		zap.Int("base_prefixes", base.Len()))

	c := closure.Expand(base)
	log.Debug("expanded prefix closure", zap.Int("nodes", c.Len()))

	unresolved := c.Resolve(base)
	if unresolved > 0 {
		log.Warn("dropping prefixes with no resolvable ancestor",
			zap.Int("unresolved", unresolved))
	}

	t := table.Compile(c)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	log.Info("compiled rate table", zap.Int("prefixes", t.Len()))

	return &Result{
		RunID: runID,
		Table: t,
		Stats: Stats{
			RowsAccepted: istats.RowsAccepted,
			RowsDropped:  istats.RowsDropped,
			BasePrefixes: base.Len(),
			ClosureNodes: c.Len(),
			Unresolved:   unresolved,
		},
	}, nil
}
