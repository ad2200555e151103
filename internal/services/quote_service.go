package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/catalog"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/dtos"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

// ------------------------------------------------------------------
// Service
// ------------------------------------------------------------------

type QuoteService interface {
	Options() dtos.QuoteOptionsResponse
	SubmitQuote(ctx context.Context, fields models.FormFields, logo *models.FileCandidate) (*models.SubmissionRecord, error)
	Ping(ctx context.Context) error
}

type quoteService struct {
	sink    SubmissionSink
	catalog *catalog.Catalog
	opts    []FormOption
}

// NewQuoteService builds the service around sink, which may be nil.
func NewQuoteService(sink SubmissionSink, cat *catalog.Catalog, opts ...FormOption) QuoteService {
	return &quoteService{sink: sink, catalog: cat, opts: opts}
}

// ------------------------------------------------------------------
// Public API
// ------------------------------------------------------------------

func (s *quoteService) Options() dtos.QuoteOptionsResponse {
	return dtos.QuoteOptionsResponse{
		VehicleTypes:      s.catalog.VehicleTypes,
		Locations:         s.catalog.Locations,
		Industries:        s.catalog.Industries,
		VehicleYears:      s.catalog.VehicleYears(),
		InstallLocations:  s.catalog.InstallLocations,
		DefaultIndustry:   constants.DefaultIndustry,
		AcceptedLogoTypes: constants.AcceptedLogoTypes,
		MaxLogoFileBytes:  constants.MaxLogoFileBytes,
	}
}

// SubmitQuote drives a fresh form through one submission. Field, catalog
// and logo problems come back together as a validation AppError; a sink
// failure comes back as an external-service AppError.
func (s *quoteService) SubmitQuote(
	ctx context.Context,
	fields models.FormFields,
	logo *models.FileCandidate,
) (*models.SubmissionRecord, error) {
	form := NewQuoteForm(s.sink, s.opts...)
	form.Load(fields)

	//-----------------------------------------------------------------
	// 1) Collect every problem before touching the sink
	//-----------------------------------------------------------------
	errs := ValidateQuoteForm(form.Fields())
	for field, msg := range s.catalog.Check(form.Fields()) {
		if !errs.Has(field) {
			errs[field] = msg
		}
	}
	var fileErr *FileError
	if logo != nil {
		fileErr = form.AttachFile(*logo)
	}
	if len(errs) > 0 || fileErr != nil {
		return nil, validationAppError(errs, fileErr)
	}

	//-----------------------------------------------------------------
	// 2) Submit
	//-----------------------------------------------------------------
	outcome, err := form.Submit(ctx)
	if errors.Is(err, utils.ErrSubmissionInFlight) {
		return nil, &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "A submission is already in progress",
			Err:        err,
		}
	}
	switch outcome.Status {
	case models.SubmissionStatusSuccess:
		return outcome.Record, nil
	case models.SubmissionStatusError:
		return nil, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "We couldn't send your quote request. Please try again.",
			Err:        outcome.Err,
		}
	default:
		return nil, validationAppError(outcome.Errors, nil)
	}
}

func (s *quoteService) Ping(ctx context.Context) error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Ping(ctx)
}

// ------------------------------------------------------------------
// internals
// ------------------------------------------------------------------

func validationAppError(errs models.ErrorMap, fileErr *FileError) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusBadRequest,
		Code:       utils.ErrCodeValidation,
		Message:    "Please correct the highlighted fields",
		Details:    ValidationDetails(errs, fileErr),
	}
}

// ValidationDetails flattens an ErrorMap and an optional file error into
// response details, in form order.
func ValidationDetails(errs models.ErrorMap, fileErr *FileError) []dtos.ValidationErrorDetail {
	details := make([]dtos.ValidationErrorDetail, 0, len(errs)+1)
	for _, field := range models.FormFieldOrder {
		msg := errs[field]
		if msg == "" {
			continue
		}
		details = append(details, dtos.ValidationErrorDetail{
			Field:   string(field),
			Message: msg,
			Code:    detailCode(msg),
		})
	}
	if fileErr != nil {
		details = append(details, dtos.ValidationErrorDetail{
			Field:   string(models.FieldLogoFile),
			Message: fileErr.Message,
			Code:    string(fileErr.Kind),
		})
	}
	return details
}

func detailCode(msg string) string {
	switch msg {
	case constants.MsgEmailInvalid, constants.MsgPhoneInvalid:
		return "invalid_format"
	case constants.MsgUnknownOption:
		return "unknown_option"
	case constants.MsgTermsRequired:
		return "terms_not_accepted"
	default:
		return "required"
	}
}
