// Package usecase defines business logic interfaces for system reporting.
package usecase

import (
	"context"

	reportDomain "github.com/allisson/clubhouse/internal/report/domain"
)

// ReportUseCase defines business logic operations for system reporting.
type ReportUseCase interface {
	// Stats summarizes identities, tokens, and relationships at the current
	// clock reading. Token counts classify overdue-active tokens as expired
	// without mutating them.
	Stats(ctx context.Context) (*reportDomain.Report, error)
}
