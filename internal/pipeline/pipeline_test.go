package pipeline_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fiscaladmin/reconcile/internal/consolidate"
	"github.com/fiscaladmin/reconcile/internal/importer"
	"github.com/fiscaladmin/reconcile/internal/pipeline"
	"github.com/fiscaladmin/reconcile/internal/recognize"
	"github.com/fiscaladmin/reconcile/internal/statement"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mocks struct {
	statements  *pipeline.MockStatements
	importStage *pipeline.MockImportStage
	consolidate *pipeline.MockConsolidateStage
	recognize   *pipeline.MockRecognizeStage
}

func newOrchestrator(t *testing.T) (*pipeline.Orchestrator, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := mocks{
		statements:  pipeline.NewMockStatements(ctrl),
		importStage: pipeline.NewMockImportStage(ctrl),
		consolidate: pipeline.NewMockConsolidateStage(ctrl),
		recognize:   pipeline.NewMockRecognizeStage(ctrl),
	}

	o := pipeline.NewOrchestrator(m.statements, m.importStage, m.consolidate, m.recognize, testLogger())

	return o, m
}

func TestOrchestrator_Process(t *testing.T) {
	o, m := newOrchestrator(t)

	st := &statement.Statement{ID: "st-1", AccountType: statement.AccountTypeBank}
	ctx := context.Background()

	m.statements.EXPECT().Get(gomock.Any(), "st-1").Return(st, nil)

	gomock.InOrder(
		m.statements.EXPECT().
			Transition(gomock.Any(), "st-1", statement.StatusImporting, pipeline.Actor, "").
			Return(nil),
		m.importStage.EXPECT().Run(gomock.Any(), st).
			Return(&importer.Result{RowCount: 10, DuplicateCount: 2, TotalCount: 12}, nil),
		m.statements.EXPECT().UpdateImportResults(gomock.Any(), "st-1", 12, 2).Return(nil),
		m.statements.EXPECT().
			Transition(gomock.Any(), "st-1", statement.StatusImported, pipeline.Actor, "").
			Return(nil),
		m.statements.EXPECT().
			Transition(gomock.Any(), "st-1", statement.StatusConsolidating, pipeline.Actor, "").
			Return(nil),
		m.consolidate.EXPECT().Run(gomock.Any(), st).
			Return(&consolidate.Result{TotalCount: 7}, nil),
		m.statements.EXPECT().UpdateConsolidationResults(gomock.Any(), "st-1", 7).Return(nil),
		m.recognize.EXPECT().Run(gomock.Any(), st).
			Return(&recognize.Result{Posted: 5, Unmatched: 2}, nil),
		m.statements.EXPECT().
			Transition(gomock.Any(), "st-1", statement.StatusConsolidated, pipeline.Actor, "").
			Return(nil),
	)

	summary, err := o.Process(ctx, "st-1")
	require.NoError(t, err)
	assert.Equal(t, "st-1", summary.StatementID)
	assert.Equal(t, 10, summary.Import.RowCount)
	assert.Equal(t, 7, summary.Consolidation.TotalCount)
	assert.Equal(t, 5, summary.Recognition.Posted)
}

func TestOrchestrator_Process_EntryTransitionDenied(t *testing.T) {
	o, m := newOrchestrator(t)

	st := &statement.Statement{ID: "st-1"}

	m.statements.EXPECT().Get(gomock.Any(), "st-1").Return(st, nil)
	m.statements.EXPECT().
		Transition(gomock.Any(), "st-1", statement.StatusImporting, pipeline.Actor, "").
		Return(statement.ErrTransitionDenied)

	// The statement belongs to another run; its status must stay untouched.
	_, err := o.Process(context.Background(), "st-1")
	require.ErrorIs(t, err, statement.ErrTransitionDenied)
}

func TestOrchestrator_Process_ImportFailure(t *testing.T) {
	o, m := newOrchestrator(t)

	st := &statement.Statement{ID: "st-1"}
	cause := errors.New("unrecognized file format")

	m.statements.EXPECT().Get(gomock.Any(), "st-1").Return(st, nil)
	m.statements.EXPECT().
		Transition(gomock.Any(), "st-1", statement.StatusImporting, pipeline.Actor, "").
		Return(nil)
	m.importStage.EXPECT().Run(gomock.Any(), st).Return(nil, cause)
	m.statements.EXPECT().
		RecordFailure(gomock.Any(), "st-1", pipeline.Actor, cause).
		Return(cause)

	_, err := o.Process(context.Background(), "st-1")
	assert.Same(t, cause, err)
}

func TestOrchestrator_Process_RecognitionFailure(t *testing.T) {
	o, m := newOrchestrator(t)

	st := &statement.Statement{ID: "st-1"}
	cause := errors.New("transaction type not configured")

	m.statements.EXPECT().Get(gomock.Any(), "st-1").Return(st, nil)
	m.statements.EXPECT().
		Transition(gomock.Any(), "st-1", statement.StatusImporting, pipeline.Actor, "").
		Return(nil)
	m.importStage.EXPECT().Run(gomock.Any(), st).
		Return(&importer.Result{RowCount: 3, TotalCount: 3}, nil)
	m.statements.EXPECT().UpdateImportResults(gomock.Any(), "st-1", 3, 0).Return(nil)
	m.statements.EXPECT().
		Transition(gomock.Any(), "st-1", statement.StatusImported, pipeline.Actor, "").
		Return(nil)
	m.statements.EXPECT().
		Transition(gomock.Any(), "st-1", statement.StatusConsolidating, pipeline.Actor, "").
		Return(nil)
	m.consolidate.EXPECT().Run(gomock.Any(), st).
		Return(&consolidate.Result{TotalCount: 2}, nil)
	m.statements.EXPECT().UpdateConsolidationResults(gomock.Any(), "st-1", 2).Return(nil)
	m.recognize.EXPECT().Run(gomock.Any(), st).Return(nil, cause)
	m.statements.EXPECT().
		RecordFailure(gomock.Any(), "st-1", pipeline.Actor, cause).
		Return(cause)

	_, err := o.Process(context.Background(), "st-1")
	assert.Same(t, cause, err)
}

func TestOrchestrator_Process_GetFailure(t *testing.T) {
	o, m := newOrchestrator(t)

	m.statements.EXPECT().Get(gomock.Any(), "st-1").Return(nil, errors.New("not found"))

	_, err := o.Process(context.Background(), "st-1")
	require.Error(t, err)
}
