package statement_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fiscaladmin/reconcile/internal/statement"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from statement.Status
		to   statement.Status
		want bool
	}{
		{"new to importing", statement.StatusNew, statement.StatusImporting, true},
		{"error to importing", statement.StatusError, statement.StatusImporting, true},
		{"importing to imported", statement.StatusImporting, statement.StatusImported, true},
		{"imported to consolidating", statement.StatusImported, statement.StatusConsolidating, true},
		{"consolidated to consolidating", statement.StatusConsolidated, statement.StatusConsolidating, true},
		{"consolidating to consolidated", statement.StatusConsolidating, statement.StatusConsolidated, true},
		{"any to error", statement.StatusConsolidated, statement.StatusError, true},
		{"new to error", statement.StatusNew, statement.StatusError, true},
		{"imported back to importing for a re-run", statement.StatusImported, statement.StatusImporting, true},
		{"consolidated back to importing for a re-run", statement.StatusConsolidated, statement.StatusImporting, true},
		{"new to imported skips importing", statement.StatusNew, statement.StatusImported, false},
		{"consolidating to importing", statement.StatusConsolidating, statement.StatusImporting, false},
		{"error to error", statement.StatusError, statement.StatusError, false},
		{"no transition into new", statement.StatusImported, statement.StatusNew, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statement.CanTransition(tt.from, tt.to))
		})
	}
}

func TestTruncateErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty becomes unknown", "", "unknown error"},
		{"short passes through", "boom", "boom"},
		{"exactly max", strings.Repeat("a", 1000), strings.Repeat("a", 1000)},
		{"over max truncated", strings.Repeat("a", 1500), strings.Repeat("a", 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statement.TruncateErrorMessage(tt.in))
		})
	}
}

func TestService_Transition(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := statement.NewMockRepository(ctrl)
	repo.EXPECT().
		Transition(gomock.Any(), statement.EntityTypeStatement, "st-1",
			[]statement.Status{statement.StatusImporting}, statement.StatusImported,
			"pipeline", "").
		Return(nil)

	svc := statement.NewService(repo)

	err := svc.Transition(context.Background(), "st-1", statement.StatusImported, "pipeline", "")
	require.NoError(t, err)
}

func TestService_Transition_ReimportAfterConsolidation(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := statement.NewMockRepository(ctrl)
	repo.EXPECT().
		Transition(gomock.Any(), statement.EntityTypeStatement, "st-1",
			[]statement.Status{
				statement.StatusNew, statement.StatusError,
				statement.StatusImported, statement.StatusConsolidated,
			},
			statement.StatusImporting, "pipeline", "").
		Return(nil)

	svc := statement.NewService(repo)

	err := svc.Transition(context.Background(), "st-1", statement.StatusImporting, "pipeline", "")
	require.NoError(t, err)
}

func TestService_Transition_UnknownTarget(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := statement.NewService(statement.NewMockRepository(ctrl))

	err := svc.Transition(context.Background(), "st-1", statement.Status("bogus"), "pipeline", "")
	require.ErrorIs(t, err, statement.ErrTransitionDenied)
}

func TestService_RecordFailure(t *testing.T) {
	cause := errors.New("parse failed")

	tests := []struct {
		name      string
		setupMock func(m *statement.MockRepository)
	}{
		{
			name: "normal error transition",
			setupMock: func(m *statement.MockRepository) {
				m.EXPECT().
					Transition(gomock.Any(), statement.EntityTypeStatement, "st-1",
						gomock.Any(), statement.StatusError, "pipeline", "parse failed").
					Return(nil)
				m.EXPECT().SetErrorMessage(gomock.Any(), "st-1", "parse failed").Return(nil)
			},
		},
		{
			name: "transition denied falls back to direct write",
			setupMock: func(m *statement.MockRepository) {
				m.EXPECT().
					Transition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						statement.StatusError, gomock.Any(), gomock.Any()).
					Return(statement.ErrTransitionDenied)
				m.EXPECT().
					SetStatusDirect(gomock.Any(), "st-1", statement.StatusError, "parse failed").
					Return(nil)
			},
		},
		{
			name: "direct write failure still reports the cause",
			setupMock: func(m *statement.MockRepository) {
				m.EXPECT().
					Transition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						statement.StatusError, gomock.Any(), gomock.Any()).
					Return(errors.New("db down"))
				m.EXPECT().
					SetStatusDirect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db still down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := statement.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := statement.NewService(repo)

			err := svc.RecordFailure(context.Background(), "st-1", "pipeline", cause)
			assert.Same(t, cause, err)
		})
	}
}

func TestService_RecordFailure_NilCauseMessage(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := statement.NewMockRepository(ctrl)
	repo.EXPECT().
		Transition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			statement.StatusError, gomock.Any(), "unknown error").
		Return(nil)
	repo.EXPECT().SetErrorMessage(gomock.Any(), "st-1", "unknown error").Return(nil)

	svc := statement.NewService(repo)

	err := svc.RecordFailure(context.Background(), "st-1", "pipeline", nil)
	assert.NoError(t, err)
}

func TestRefPrefix(t *testing.T) {
	prefix := statement.RefPrefix(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "STMT2024", prefix)
}

func TestFormatSequenceID(t *testing.T) {
	assert.Equal(t, "001", statement.FormatSequenceID(1))
	assert.Equal(t, "042", statement.FormatSequenceID(42))
	assert.Equal(t, "1000", statement.FormatSequenceID(1000))
}
