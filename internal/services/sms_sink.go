package services

import (
	"context"
	"fmt"

	twilio "github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

// smsSender is the part of the Twilio API service the sink uses.
type smsSender interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSAlertSink texts the sales phone whenever a quote request arrives.
type SMSAlertSink struct {
	sender    smsSender
	fromPhone string
	toPhone   string
}

func NewSMSAlertSink(accountSID, authToken, fromPhone, toPhone string) *SMSAlertSink {
	tClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSAlertSink{
		sender:    tClient.Api,
		fromPhone: fromPhone,
		toPhone:   toPhone,
	}
}

func (s *SMSAlertSink) Submit(_ context.Context, rec *models.SubmissionRecord) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(s.toPhone)
	params.SetFrom(s.fromPhone)
	params.SetBody(smsAlertBody(rec))

	if _, err := s.sender.CreateMessage(params); err != nil {
		return fmt.Errorf("%w: failed to send sms via twilio: %v", utils.ErrExternalServiceFailure, err)
	}
	return nil
}

func (s *SMSAlertSink) Ping(_ context.Context) error {
	if !utils.IsE164(s.fromPhone) || !utils.IsE164(s.toPhone) {
		return fmt.Errorf("%w: twilio alert phones must be E.164", utils.ErrInvalidPhone)
	}
	return nil
}

func smsAlertBody(rec *models.SubmissionRecord) string {
	logo := ""
	if rec.LogoFile != nil {
		logo = " +logo"
	}
	return fmt.Sprintf(
		"New quote: %s (%s) - %s %s %s %s in %s%s",
		rec.Name, rec.Phone, rec.VehicleYear, rec.VehicleMake, rec.VehicleModel, rec.VehicleType, rec.Location, logo,
	)
}
