package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fiscaladmin/reconcile/internal/consolidate"
	"github.com/fiscaladmin/reconcile/internal/importer"
	"github.com/fiscaladmin/reconcile/internal/recognize"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

// Actor recorded on every status transition the pipeline performs.
const Actor = "pipeline"

//go:generate mockgen -source=pipeline.go -destination=pipeline_mock.go -package=pipeline

// Statements is the slice of the statement service the pipeline drives.
// Satisfied by *statement.Service.
type Statements interface {
	Get(ctx context.Context, id string) (*statement.Statement, error)
	Transition(ctx context.Context, id string, to statement.Status, actor, note string) error
	RecordFailure(ctx context.Context, id, actor string, cause error) error
	UpdateImportResults(ctx context.Context, id string, rowCount, duplicateCount int) error
	UpdateConsolidationResults(ctx context.Context, id string, totalCount int) error
}

// ImportStage is satisfied by *importer.Service.
type ImportStage interface {
	Run(ctx context.Context, st *statement.Statement) (*importer.Result, error)
}

// ConsolidateStage is satisfied by *consolidate.Service.
type ConsolidateStage interface {
	Run(ctx context.Context, st *statement.Statement) (*consolidate.Result, error)
}

// RecognizeStage is satisfied by *recognize.Service.
type RecognizeStage interface {
	Run(ctx context.Context, st *statement.Statement) (*recognize.Result, error)
}

type Orchestrator struct {
	statements  Statements
	importStage ImportStage
	consolidate ConsolidateStage
	recognize   RecognizeStage
	logger      *slog.Logger
}

func NewOrchestrator(
	statements Statements,
	importStage ImportStage,
	consolidateStage ConsolidateStage,
	recognizeStage RecognizeStage,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		statements:  statements,
		importStage: importStage,
		consolidate: consolidateStage,
		recognize:   recognizeStage,
		logger:      logger,
	}
}

// Summary collects the results of one full pipeline run.
type Summary struct {
	StatementID   string              `json:"statement_id"`
	Import        *importer.Result    `json:"import"`
	Consolidation *consolidate.Result `json:"consolidation"`
	Recognition   *recognize.Result   `json:"recognition"`
}

// Process runs the statement through the full pipeline: import, consolidate,
// recognize. Any stage failure moves the statement to the error status with
// the failure message and returns the original cause. A denied entry
// transition means another run holds the statement; it is returned as-is
// without touching the statement's status.
func (o *Orchestrator) Process(ctx context.Context, statementID string) (*Summary, error) {
	st, err := o.statements.Get(ctx, statementID)
	if err != nil {
		return nil, fmt.Errorf("loading statement %s: %w", statementID, err)
	}

	if err := o.statements.Transition(ctx, st.ID, statement.StatusImporting, Actor, ""); err != nil {
		return nil, err
	}

	summary := &Summary{StatementID: st.ID}

	summary.Import, err = o.importStage.Run(ctx, st)
	if err != nil {
		return nil, o.statements.RecordFailure(ctx, st.ID, Actor, err)
	}

	// The statement records the full parsed row count; the duplicate count
	// says how many of those were suppressed.
	if err := o.statements.UpdateImportResults(ctx, st.ID, summary.Import.TotalCount, summary.Import.DuplicateCount); err != nil {
		return nil, o.statements.RecordFailure(ctx, st.ID, Actor, err)
	}

	if err := o.statements.Transition(ctx, st.ID, statement.StatusImported, Actor, ""); err != nil {
		return nil, o.statements.RecordFailure(ctx, st.ID, Actor, err)
	}

	if err := o.statements.Transition(ctx, st.ID, statement.StatusConsolidating, Actor, ""); err != nil {
		return nil, o.statements.RecordFailure(ctx, st.ID, Actor, err)
	}

	summary.Consolidation, err = o.consolidate.Run(ctx, st)
	if err != nil {
		return nil, o.statements.RecordFailure(ctx, st.ID, Actor, err)
	}

	if err := o.statements.UpdateConsolidationResults(ctx, st.ID, summary.Consolidation.TotalCount); err != nil {
		return nil, o.statements.RecordFailure(ctx, st.ID, Actor, err)
	}

	summary.Recognition, err = o.recognize.Run(ctx, st)
	if err != nil {
		return nil, o.statements.RecordFailure(ctx, st.ID, Actor, err)
	}

	if err := o.statements.Transition(ctx, st.ID, statement.StatusConsolidated, Actor, ""); err != nil {
		return nil, o.statements.RecordFailure(ctx, st.ID, Actor, err)
	}

	o.logger.Info("statement processed",
		"statement_id", st.ID,
		"rows", summary.Import.RowCount,
		"duplicates", summary.Import.DuplicateCount,
		"totals", summary.Consolidation.TotalCount,
		"posted", summary.Recognition.Posted,
		"unmatched", summary.Recognition.Unmatched,
	)

	return summary, nil
}
