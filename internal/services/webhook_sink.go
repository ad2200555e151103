package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

// WebhookSink posts each SubmissionRecord as JSON to a CRM intake endpoint.
type WebhookSink struct {
	client *resty.Client
	url    string
}

func NewWebhookSink(url, bearerToken string, timeout time.Duration) *WebhookSink {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Quote-Source", constants.SubmissionSource)
	if bearerToken != "" {
		client.SetAuthToken(bearerToken)
	}
	return &WebhookSink{client: client, url: url}
}

func (s *WebhookSink) Submit(ctx context.Context, rec *models.SubmissionRecord) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(rec).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("%w: crm webhook: %v", utils.ErrExternalServiceFailure, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: crm webhook returned %d: %s",
			utils.ErrExternalServiceFailure, resp.StatusCode(), resp.String())
	}
	return nil
}

func (s *WebhookSink) Ping(_ context.Context) error {
	if s.url == "" {
		return fmt.Errorf("crm webhook url is empty")
	}
	return nil
}
