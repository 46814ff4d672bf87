package statement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=statement
type Repository interface {
	GetStatement(ctx context.Context, id string) (*Statement, error)

	// Transition atomically moves the statement to the target status,
	// provided its current status is one of allowedFrom, and records the
	// transition with actor and note. Returns ErrTransitionDenied when the
	// current status is not in allowedFrom.
	Transition(ctx context.Context, entityType EntityType, id string, allowedFrom []Status, to Status, actor, note string) error

	// SetStatusDirect writes status and error message unconditionally,
	// bypassing the transition guard. Error-capture fallback only.
	SetStatusDirect(ctx context.Context, id string, status Status, errorMessage string) error

	SetErrorMessage(ctx context.Context, id string, message string) error
	UpdateImportResults(ctx context.Context, id string, rowCount, duplicateCount int) error
	UpdateConsolidationResults(ctx context.Context, id string, totalCount int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id string) (*Statement, error) {
	return s.repo.GetStatement(ctx, id)
}

// Transition moves the statement to the target status through the state
// machine. A transition attempted from a state the machine disallows fails
// loudly with ErrTransitionDenied; this is the only guard against a
// concurrent run of the same statement.
func (s *Service) Transition(ctx context.Context, id string, to Status, actor, note string) error {
	allowedFrom, err := AllowedFrom(to)
	if err != nil {
		return err
	}

	return s.repo.Transition(ctx, EntityTypeStatement, id, allowedFrom, to, actor, note)
}

// RecordFailure captures a stage failure on the statement: it transitions to
// StatusError through the normal mechanism, falls back to a direct status
// write when the transition is denied, and records the truncated message.
// The returned error is always the original cause.
func (s *Service) RecordFailure(ctx context.Context, id, actor string, cause error) error {
	msg := TruncateErrorMessage(errMessage(cause))

	if err := s.Transition(ctx, id, StatusError, actor, msg); err != nil {
		if !errors.Is(err, ErrTransitionDenied) {
			slog.Error("error-status transition failed", "statement_id", id, "error", err)
		}

		if err := s.repo.SetStatusDirect(ctx, id, StatusError, msg); err != nil {
			slog.Error("direct error-status write failed", "statement_id", id, "error", err)
			return cause
		}

		return cause
	}

	if err := s.repo.SetErrorMessage(ctx, id, msg); err != nil {
		slog.Error("recording error message failed", "statement_id", id, "error", err)
	}

	return cause
}

func (s *Service) UpdateImportResults(ctx context.Context, id string, rowCount, duplicateCount int) error {
	if err := s.repo.UpdateImportResults(ctx, id, rowCount, duplicateCount); err != nil {
		return fmt.Errorf("updating import results: %w", err)
	}

	return nil
}

func (s *Service) UpdateConsolidationResults(ctx context.Context, id string, totalCount int) error {
	if err := s.repo.UpdateConsolidationResults(ctx, id, totalCount); err != nil {
		return fmt.Errorf("updating consolidation results: %w", err)
	}

	return nil
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
