package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

// SubmissionSink accepts a finalized quote request. A returned error means
// the request was not delivered and the user should retry.
type SubmissionSink interface {
	Submit(ctx context.Context, rec *models.SubmissionRecord) error
	Ping(ctx context.Context) error
}

// SinkFunc adapts a plain function into a SubmissionSink.
type SinkFunc func(ctx context.Context, rec *models.SubmissionRecord) error

func (f SinkFunc) Submit(ctx context.Context, rec *models.SubmissionRecord) error {
	return f(ctx, rec)
}

func (f SinkFunc) Ping(context.Context) error { return nil }

// NamedSink tags a sink for logging.
type NamedSink struct {
	Name string
	Sink SubmissionSink
}

// CompositeSink delivers to every required sink in order and stops at the
// first failure. Best-effort sinks only run once all required ones
// succeeded; their failures are logged and swallowed.
type CompositeSink struct {
	Required   []NamedSink
	BestEffort []NamedSink
}

func (c *CompositeSink) Empty() bool {
	return len(c.Required) == 0 && len(c.BestEffort) == 0
}

func (c *CompositeSink) Submit(ctx context.Context, rec *models.SubmissionRecord) error {
	for _, s := range c.Required {
		if err := s.Sink.Submit(ctx, rec); err != nil {
			utils.Logger.WithError(err).WithField("sink", s.Name).Error("Required quote sink failed")
			return fmt.Errorf("%s: %w", s.Name, err)
		}
		utils.Logger.WithField("sink", s.Name).Debug("Quote delivered")
	}

	for _, s := range c.BestEffort {
		if err := s.Sink.Submit(ctx, rec); err != nil {
			utils.Logger.WithError(err).WithField("sink", s.Name).Warn("Best-effort quote sink failed")
		}
	}
	return nil
}

func (c *CompositeSink) Ping(ctx context.Context) error {
	var errs []error
	for _, s := range append(append([]NamedSink{}, c.Required...), c.BestEffort...) {
		if err := s.Sink.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
		}
	}
	return errors.Join(errs...)
}
