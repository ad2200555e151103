package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// QuoteForm owns the state of one quote request form: field values, the
// optional logo, validation errors and the submission status.
type QuoteForm struct {
	mu sync.Mutex

	sink           SubmissionSink
	clock          utils.Clock
	simulatedDelay time.Duration

	fields    models.FormFields
	file      *models.FileAttachment
	fileErr   *FileError
	errors    models.ErrorMap
	status    models.SubmissionStatus
	submitErr error
}

type FormOption func(*QuoteForm)

func WithClock(c utils.Clock) FormOption {
	return func(f *QuoteForm) { f.clock = c }
}

// WithSimulatedDelay sets how long a sink-less form pretends to submit.
func WithSimulatedDelay(d time.Duration) FormOption {
	return func(f *QuoteForm) { f.simulatedDelay = d }
}

// NewQuoteForm returns a form in its initial state. A nil sink makes Submit
// wait out a short delay and then succeed.
func NewQuoteForm(sink SubmissionSink, opts ...FormOption) *QuoteForm {
	f := &QuoteForm{
		sink:           sink,
		clock:          utils.SystemClock,
		simulatedDelay: constants.SimulatedSubmitDelay,
		fields:         models.DefaultFormFields(),
		errors:         models.ErrorMap{},
		status:         models.SubmissionStatusIdle,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// SubmitOutcome describes where a Submit call left the form.
type SubmitOutcome struct {
	Status models.SubmissionStatus
	Errors models.ErrorMap
	Record *models.SubmissionRecord
	Err    error
}

// -----------------------------------------------------------------------------
// Field setters
// -----------------------------------------------------------------------------

func (f *QuoteForm) SetName(v string) {
	f.set(models.FieldFullName, func(ff *models.FormFields) { ff.Name = v })
}

func (f *QuoteForm) SetEmail(v string) {
	f.set(models.FieldEmail, func(ff *models.FormFields) { ff.Email = v })
}

func (f *QuoteForm) SetPhone(v string) {
	f.set(models.FieldPhone, func(ff *models.FormFields) { ff.Phone = v })
}

func (f *QuoteForm) SetVehicleYear(v string) {
	f.set(models.FieldVehicleYear, func(ff *models.FormFields) { ff.VehicleYear = v })
}

func (f *QuoteForm) SetVehicleMake(v string) {
	f.set(models.FieldVehicleMake, func(ff *models.FormFields) { ff.VehicleMake = v })
}

func (f *QuoteForm) SetVehicleModel(v string) {
	f.set(models.FieldVehicleModel, func(ff *models.FormFields) { ff.VehicleModel = v })
}

func (f *QuoteForm) SetVehicleType(v string) {
	f.set(models.FieldVehicleType, func(ff *models.FormFields) { ff.VehicleType = v })
}

func (f *QuoteForm) SetLocation(v string) {
	f.set(models.FieldLocation, func(ff *models.FormFields) { ff.Location = v })
}

func (f *QuoteForm) SetPreferredInstallLocation(v string) {
	f.set(models.FieldPreferredInstallLocation, func(ff *models.FormFields) { ff.PreferredInstallLocation = v })
}

func (f *QuoteForm) SetIndustry(v string) {
	f.set(models.FieldIndustry, func(ff *models.FormFields) { ff.Industry = v })
}

func (f *QuoteForm) SetMessage(v string) {
	f.set(models.FieldMessage, func(ff *models.FormFields) { ff.Message = v })
}

func (f *QuoteForm) SetTermsAccepted(checked bool) {
	f.set(models.FieldTermsAccepted, func(ff *models.FormFields) { ff.TermsAccepted = checked })
}

// Load copies every field from in through the setters.
func (f *QuoteForm) Load(in models.FormFields) {
	f.SetName(in.Name)
	f.SetEmail(in.Email)
	f.SetPhone(in.Phone)
	f.SetVehicleYear(in.VehicleYear)
	f.SetVehicleMake(in.VehicleMake)
	f.SetVehicleModel(in.VehicleModel)
	f.SetVehicleType(in.VehicleType)
	f.SetLocation(in.Location)
	f.SetPreferredInstallLocation(in.PreferredInstallLocation)
	f.SetIndustry(in.Industry)
	f.SetMessage(in.Message)
	f.SetTermsAccepted(in.TermsAccepted)
}

func (f *QuoteForm) set(field models.FieldName, apply func(*models.FormFields)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// The form is not interactable while a submission is in flight.
	if f.status == models.SubmissionStatusSubmitting {
		utils.Logger.WithField("field", field).Debug("Ignoring field update during submission")
		return
	}
	apply(&f.fields)
	delete(f.errors, field)
}

// -----------------------------------------------------------------------------
// Logo attachment
// -----------------------------------------------------------------------------

// AttachFile runs the candidate through the file guard. On success it
// replaces any current attachment; on failure the current attachment stays
// and the guard's error is kept for display.
func (f *QuoteForm) AttachFile(c models.FileCandidate) *FileError {
	att, fileErr := AcceptFile(c)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == models.SubmissionStatusSubmitting {
		return nil
	}
	if fileErr != nil {
		f.fileErr = fileErr
		return fileErr
	}
	f.file = &att
	f.fileErr = nil
	return nil
}

func (f *QuoteForm) RemoveFile() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == models.SubmissionStatusSubmitting {
		return
	}
	f.file = nil
	f.fileErr = nil
}

// -----------------------------------------------------------------------------
// Submission
// -----------------------------------------------------------------------------

// Submit validates the form and, when it is clean, hands a SubmissionRecord to
// the sink. Sink failures are reported through the outcome, never as the
// returned error; the only error is ErrSubmissionInFlight.
func (f *QuoteForm) Submit(ctx context.Context) (SubmitOutcome, error) {
	f.mu.Lock()
	if f.status == models.SubmissionStatusSubmitting {
		f.mu.Unlock()
		return SubmitOutcome{Status: models.SubmissionStatusSubmitting}, utils.ErrSubmissionInFlight
	}

	f.errors = ValidateQuoteForm(f.fields)
	if len(f.errors) > 0 {
		// a retry from error that fails validation is back to editing
		if f.status == models.SubmissionStatusError {
			f.status = models.SubmissionStatusIdle
			f.submitErr = nil
		}
		out := SubmitOutcome{Status: f.status, Errors: f.errors.Clone()}
		f.mu.Unlock()
		return out, nil
	}

	f.status = models.SubmissionStatusSubmitting
	f.submitErr = nil
	rec := f.buildRecord()
	f.mu.Unlock()

	logger := utils.QuoteLogger(rec.Location, rec.VehicleType, rec.LogoFile != nil)
	logger.Info("Submitting quote request")

	err := f.deliver(ctx, rec)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		logger.WithError(err).Warn("Quote request submission failed")
		f.status = models.SubmissionStatusError
		f.submitErr = err
		return SubmitOutcome{Status: f.status, Errors: models.ErrorMap{}, Record: rec, Err: err}, nil
	}

	logger.Info("Quote request submitted")
	f.status = models.SubmissionStatusSuccess
	f.resetLocked()
	return SubmitOutcome{Status: f.status, Errors: models.ErrorMap{}, Record: rec}, nil
}

// SubmitAnother takes a successful form back to idle with every field at its
// default. It does nothing in any other state.
func (f *QuoteForm) SubmitAnother() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status != models.SubmissionStatusSuccess {
		return
	}
	f.resetLocked()
	f.status = models.SubmissionStatusIdle
}

func (f *QuoteForm) deliver(ctx context.Context, rec *models.SubmissionRecord) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: sink panic: %v", utils.ErrExternalServiceFailure, r)
		}
	}()

	if f.sink != nil {
		return f.sink.Submit(ctx, rec)
	}

	utils.Logger.WithField("email", rec.Email).Info("No submission sink configured; simulating delivery")
	timer := time.NewTimer(f.simulatedDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *QuoteForm) resetLocked() {
	f.fields = models.DefaultFormFields()
	f.file = nil
	f.fileErr = nil
	f.errors = models.ErrorMap{}
	f.submitErr = nil
}

func (f *QuoteForm) buildRecord() *models.SubmissionRecord {
	ff := f.fields

	rec := &models.SubmissionRecord{
		Name:                     strings.TrimSpace(ff.Name),
		Email:                    strings.ToLower(strings.TrimSpace(ff.Email)),
		Phone:                    strings.TrimSpace(ff.Phone),
		VehicleYear:              strings.TrimSpace(ff.VehicleYear),
		VehicleMake:              strings.TrimSpace(ff.VehicleMake),
		VehicleModel:             strings.TrimSpace(ff.VehicleModel),
		VehicleType:              strings.TrimSpace(ff.VehicleType),
		Location:                 strings.TrimSpace(ff.Location),
		PreferredInstallLocation: strings.TrimSpace(ff.PreferredInstallLocation),
		Industry:                 strings.TrimSpace(ff.Industry),
		Message:                  utils.TrimmedOrNil(ff.Message),
		TermsAccepted:            ff.TermsAccepted,
		Timestamp:                f.clock.Now().UTC().Format(isoMillis),
		Source:                   constants.SubmissionSource,
		RouteTo:                  constants.SubmissionRouteTo,
	}
	if f.file != nil {
		rec.LogoFile = &models.LogoFileDescriptor{
			Name: f.file.Name,
			Size: f.file.Size,
			Type: f.file.Type,
			File: bytes.Clone(f.file.Data),
		}
	}
	return rec
}

// -----------------------------------------------------------------------------
// Accessors
// -----------------------------------------------------------------------------

func (f *QuoteForm) Status() models.SubmissionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *QuoteForm) Fields() models.FormFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// File returns a copy of the current attachment, or nil.
func (f *QuoteForm) File() *models.FileAttachment {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.file == nil {
		return nil
	}
	cp := *f.file
	cp.Data = bytes.Clone(f.file.Data)
	return &cp
}

func (f *QuoteForm) FileError() *FileError {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fileErr
}

func (f *QuoteForm) Errors() models.ErrorMap {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errors.Clone()
}

// SubmitError is the sink failure behind the error status, if any.
func (f *QuoteForm) SubmitError() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}
