package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/catalog"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

// HTML template for the internal quote notification.
const internalQuoteEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: monospace; line-height: 1.5; }
  .container { border: 1px solid #ccc; padding: 15px; max-width: 640px; }
  h2 { margin-top: 0; }
  ul { list-style: none; padding: 0; }
  li { margin-bottom: 5px; }
  strong { color: #000; }
</style>
</head>
<body>
  <div class="container">
    <h2>New Vehicle Wrap Quote Request</h2>
    <ul>
      <li><strong>Name:</strong> %s</li>
      <li><strong>Email:</strong> %s</li>
      <li><strong>Phone:</strong> %s</li>
      <li><strong>Vehicle:</strong> %s %s %s (%s)</li>
      <li><strong>Service Area:</strong> %s</li>
      <li><strong>Preferred Install:</strong> %s</li>
      <li><strong>Industry:</strong> %s</li>
      <li><strong>Logo:</strong> %s</li>
      <li><strong>Message:</strong> %s</li>
      <li><strong>Submitted (UTC):</strong> %s</li>
      <li><strong>Source:</strong> %s / %s</li>
    </ul>
  </div>
</body>
</html>`

// HTML template for the acknowledgement sent to the prospect.
const quoteAckEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>We received your quote request</title>
<style>
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; line-height: 1.6; color: #333; background-color: #f8f9fa; margin: 0; padding: 20px; }
  .container { max-width: 500px; margin: auto; background: #ffffff; border: 1px solid #e9ecef; border-radius: 8px; overflow: hidden; }
  .header { background-color: #b3121f; color: white; padding: 20px; text-align: center; }
  .header h1 { margin: 0; font-size: 24px; }
  .content { padding: 30px; text-align: left; }
  .footer { background-color: #f8f9fa; padding: 20px; text-align: center; font-size: 12px; color: #6c757d; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Thanks, %s!</h1>
    </div>
    <div class="content">
      <p>We've received your quote request for your %s %s %s.</p>
      <p>A member of our team will reach out within one business day with pricing and next steps.</p>
    </div>
    <div class="footer">
      © %d %s. All rights reserved.
    </div>
  </div>
</body>
</html>`

type EmailSinkConfig struct {
	OrganizationName string
	FromEmail        string
	RoutingEmail     string
	SandboxMode      bool
	SendAck          bool
}

// sendgridSender is the part of *sendgrid.Client the sink uses.
type sendgridSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// EmailSink routes quote requests to the sales mailbox through SendGrid and
// acknowledges them to the prospect.
type EmailSink struct {
	cfg     EmailSinkConfig
	apiKey  string
	client  sendgridSender
	catalog *catalog.Catalog
	clock   utils.Clock
}

func NewEmailSink(apiKey string, cfg EmailSinkConfig, cat *catalog.Catalog) *EmailSink {
	return &EmailSink{
		cfg:     cfg,
		apiKey:  apiKey,
		client:  sendgrid.NewSendClient(apiKey),
		catalog: cat,
		clock:   utils.SystemClock,
	}
}

func (s *EmailSink) Submit(_ context.Context, rec *models.SubmissionRecord) error {
	if err := s.send(s.internalMessage(rec)); err != nil {
		return fmt.Errorf("%w: internal quote email: %v", utils.ErrExternalServiceFailure, err)
	}

	// ack failures are logged only
	if s.cfg.SendAck {
		if err := s.send(s.ackMessage(rec)); err != nil {
			utils.Logger.WithError(err).Warnf("Failed to send quote acknowledgement to %s", rec.Email)
		}
	}
	return nil
}

func (s *EmailSink) Ping(_ context.Context) error {
	// nothing external to check; just ensure the SendGrid key looks sane
	if len(s.apiKey) < 10 {
		return fmt.Errorf("sendgrid key too short")
	}
	if !IsQuoteEmail(s.cfg.RoutingEmail) {
		return fmt.Errorf("%w: quote routing address %q", utils.ErrInvalidEmail, s.cfg.RoutingEmail)
	}
	return nil
}

func (s *EmailSink) send(msg *mail.SGMailV3) error {
	if s.cfg.SandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		msg.MailSettings = ms
	}
	resp, err := s.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func (s *EmailSink) internalMessage(rec *models.SubmissionRecord) *mail.SGMailV3 {
	from := mail.NewEmail(s.cfg.OrganizationName+" Quote-Bot", s.cfg.FromEmail)
	to := mail.NewEmail(s.cfg.OrganizationName+" Sales", s.cfg.RoutingEmail)

	vehicle := strings.Join([]string{rec.VehicleYear, rec.VehicleMake, rec.VehicleModel}, " ")
	subject := fmt.Sprintf(constants.EmailSubjectInternalQuote, rec.Location, rec.Name, vehicle, rec.VehicleType)

	install := s.installLabel(rec.PreferredInstallLocation)
	logo := "none"
	if rec.LogoFile != nil {
		logo = fmt.Sprintf("%s (%s, %d bytes)", rec.LogoFile.Name, rec.LogoFile.Type, rec.LogoFile.Size)
	}
	message := utils.Val(rec.Message)

	plainTextContent := fmt.Sprintf(
		"New quote request from %s <%s>, %s\n\nVehicle: %s (%s)\nService area: %s\nPreferred install: %s\nIndustry: %s\nLogo: %s\n\n%s",
		rec.Name, rec.Email, rec.Phone, vehicle, rec.VehicleType, rec.Location, install, rec.Industry, logo, message,
	)
	esc := html.EscapeString
	htmlContent := fmt.Sprintf(
		internalQuoteEmailHTML,
		esc(rec.Name),
		esc(rec.Email),
		esc(rec.Phone),
		esc(rec.VehicleYear), esc(rec.VehicleMake), esc(rec.VehicleModel), esc(rec.VehicleType),
		esc(rec.Location),
		esc(install),
		esc(rec.Industry),
		esc(logo),
		esc(message),
		esc(rec.Timestamp),
		esc(rec.Source), esc(rec.RouteTo),
	)

	msg := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	msg.SetReplyTo(mail.NewEmail(rec.Name, rec.Email))

	if rec.LogoFile != nil {
		a := mail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(rec.LogoFile.File))
		a.SetType(rec.LogoFile.Type)
		a.SetFilename(rec.LogoFile.Name)
		a.SetDisposition("attachment")
		msg.AddAttachment(a)
	}
	return msg
}

func (s *EmailSink) ackMessage(rec *models.SubmissionRecord) *mail.SGMailV3 {
	from := mail.NewEmail(s.cfg.OrganizationName, s.cfg.FromEmail)
	to := mail.NewEmail(rec.Name, rec.Email)

	plainTextContent := fmt.Sprintf(
		"Hi %s,\n\nWe received your quote request for your %s %s %s and will be in touch soon.\n\n- %s",
		rec.Name, rec.VehicleYear, rec.VehicleMake, rec.VehicleModel, s.cfg.OrganizationName,
	)
	esc := html.EscapeString
	htmlContent := fmt.Sprintf(
		quoteAckEmailHTML,
		esc(rec.Name),
		esc(rec.VehicleYear), esc(rec.VehicleMake), esc(rec.VehicleModel),
		s.clock.Now().Year(),
		esc(s.cfg.OrganizationName),
	)
	return mail.NewSingleEmail(from, constants.EmailSubjectQuoteAck, to, plainTextContent, htmlContent)
}

func (s *EmailSink) installLabel(day string) string {
	if day == "" {
		return "no preference"
	}
	if s.catalog != nil {
		if loc, ok := s.catalog.InstallLocation(day); ok {
			return fmt.Sprintf("%s, %s (%s)", loc.Day, loc.City, loc.FullAddress)
		}
	}
	return day
}
