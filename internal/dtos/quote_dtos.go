package dtos

import "github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"

// QuoteRequest is the JSON body accepted by POST /api/v1/quotes. Multipart
// submissions use the same keys as form values.
type QuoteRequest struct {
	Name                     string `json:"name"`
	Email                    string `json:"email"`
	Phone                    string `json:"phone"`
	VehicleYear              string `json:"vehicleYear"`
	VehicleMake              string `json:"vehicleMake"`
	VehicleModel             string `json:"vehicleModel"`
	VehicleType              string `json:"vehicleType"`
	Location                 string `json:"location"`
	PreferredInstallLocation string `json:"preferredInstallLocation"`
	Industry                 string `json:"industry"`
	Message                  string `json:"message"`
	TermsAccepted            bool   `json:"termsAccepted"`
}

// NewQuoteRequest returns a request pre-filled with the form defaults, for
// decoding bodies that omit optional keys.
func NewQuoteRequest() QuoteRequest {
	d := models.DefaultFormFields()
	return QuoteRequest{Industry: d.Industry, TermsAccepted: d.TermsAccepted}
}

func (r QuoteRequest) ToFormFields() models.FormFields {
	return models.FormFields{
		Name:                     r.Name,
		Email:                    r.Email,
		Phone:                    r.Phone,
		VehicleYear:              r.VehicleYear,
		VehicleMake:              r.VehicleMake,
		VehicleModel:             r.VehicleModel,
		VehicleType:              r.VehicleType,
		Location:                 r.Location,
		PreferredInstallLocation: r.PreferredInstallLocation,
		Industry:                 r.Industry,
		Message:                  r.Message,
		TermsAccepted:            r.TermsAccepted,
	}
}

type QuoteResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type QuoteOptionsResponse struct {
	VehicleTypes      []models.Option          `json:"vehicleTypes"`
	Locations         []models.Option          `json:"locations"`
	Industries        []models.Option          `json:"industries"`
	VehicleYears      []int                    `json:"vehicleYears"`
	InstallLocations  []models.InstallLocation `json:"installLocations"`
	DefaultIndustry   string                   `json:"defaultIndustry"`
	AcceptedLogoTypes []string                 `json:"acceptedLogoTypes"`
	MaxLogoFileBytes  int64                    `json:"maxLogoFileBytes"`
}
