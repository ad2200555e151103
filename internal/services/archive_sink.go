package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/repositories"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

// ArchiveSink stores every quote request in the quote_requests table.
type ArchiveSink struct {
	repo repositories.QuoteRequestRepository
}

func NewArchiveSink(repo repositories.QuoteRequestRepository) *ArchiveSink {
	return &ArchiveSink{repo: repo}
}

func (s *ArchiveSink) Submit(ctx context.Context, rec *models.SubmissionRecord) error {
	id := uuid.New()
	if err := s.repo.Create(ctx, id, rec); err != nil {
		return fmt.Errorf("%w: archive quote request: %v", utils.ErrExternalServiceFailure, err)
	}
	utils.Logger.WithField("quoteID", id).Debug("Quote request archived")
	return nil
}

func (s *ArchiveSink) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
