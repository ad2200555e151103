package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/dtos"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/services"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

type QuoteController struct {
	svc services.QuoteService
}

func NewQuoteController(s services.QuoteService) *QuoteController {
	return &QuoteController{svc: s}
}

// -----------------------------------------------------------------------------
// GET /api/v1/quotes/options
// -----------------------------------------------------------------------------
func (c *QuoteController) GetOptions(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, c.svc.Options())
}

// -----------------------------------------------------------------------------
// POST /api/v1/quotes
// -----------------------------------------------------------------------------
func (c *QuoteController) SubmitQuote(w http.ResponseWriter, r *http.Request) {
	logger := utils.Logger.WithField("handler", "SubmitQuote")
	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBodyBytes)

	fields, logo, err := decodeQuoteRequest(r)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid quote request payload", nil, err,
		)
		return
	}

	rec, err := c.svc.SubmitQuote(r.Context(), fields, logo)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	logger.WithField("email", rec.Email).Info("Quote request accepted")
	utils.RespondWithJSON(w, http.StatusCreated, dtos.QuoteResponse{
		Status:    string(models.SubmissionStatusSuccess),
		Message:   "Thanks! Your quote request is on its way to our team.",
		Timestamp: rec.Timestamp,
	})
}

// -----------------------------------------------------------------------------
// decoding helpers
// -----------------------------------------------------------------------------

func decodeQuoteRequest(r *http.Request) (models.FormFields, *models.FileCandidate, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return models.FormFields{}, nil, fmt.Errorf("content type: %w", err)
	}

	switch mediaType {
	case "application/json":
		// keys left out of the body keep their form defaults
		req := dtos.NewQuoteRequest()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return models.FormFields{}, nil, err
		}
		return req.ToFormFields(), nil, nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(constants.MaxMultipartMemory); err != nil {
			return models.FormFields{}, nil, err
		}
		defer r.MultipartForm.RemoveAll()

		fields := multipartFields(r)
		logo, err := multipartLogo(r)
		if err != nil {
			return models.FormFields{}, nil, err
		}
		return fields, logo, nil

	default:
		return models.FormFields{}, nil, fmt.Errorf("unsupported content type %q", mediaType)
	}
}

func multipartFields(r *http.Request) models.FormFields {
	v := func(name models.FieldName) string { return r.FormValue(string(name)) }

	f := models.DefaultFormFields()
	f.Name = v(models.FieldFullName)
	f.Email = v(models.FieldEmail)
	f.Phone = v(models.FieldPhone)
	f.VehicleYear = v(models.FieldVehicleYear)
	f.VehicleMake = v(models.FieldVehicleMake)
	f.VehicleModel = v(models.FieldVehicleModel)
	f.VehicleType = v(models.FieldVehicleType)
	f.Location = v(models.FieldLocation)
	f.PreferredInstallLocation = v(models.FieldPreferredInstallLocation)
	if _, ok := r.MultipartForm.Value[string(models.FieldIndustry)]; ok {
		f.Industry = v(models.FieldIndustry)
	}
	f.Message = v(models.FieldMessage)
	f.TermsAccepted = checked(v(models.FieldTermsAccepted))
	return f
}

// checked reads an HTML checkbox value.
func checked(v string) bool {
	if strings.EqualFold(v, "on") {
		return true
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// multipartLogo returns the logoFile part as a guard candidate, or nil when
// none was sent. The candidate's type is sniffed from the content; the
// client's Content-Type header is not trusted. Oversized parts are only
// read far enough to sniff.
func multipartLogo(r *http.Request) (*models.FileCandidate, error) {
	file, header, err := r.FormFile(string(models.FieldLogoFile))
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if header.Size > constants.MaxLogoFileBytes {
		head, err := readHead(file)
		if err != nil {
			return nil, err
		}
		return &models.FileCandidate{
			Name: header.Filename,
			Size: header.Size,
			Type: sniffType(head),
		}, nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &models.FileCandidate{
		Name: header.Filename,
		Size: int64(len(data)),
		Type: sniffType(data),
		Data: data,
	}, nil
}

func readHead(f multipart.File) ([]byte, error) {
	buf := make([]byte, constants.LogoSniffWindow)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

// sniffType returns the detected MIME type without parameters.
func sniffType(data []byte) string {
	mt := mimetype.Detect(data).String()
	base, _, _ := strings.Cut(mt, ";")
	return strings.TrimSpace(base)
}
