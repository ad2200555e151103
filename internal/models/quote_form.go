package models

import "github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"

// FieldName identifies one input of the quote form. Values match the JSON keys
// used by the public site and the SubmissionRecord.
type FieldName string

const (
	FieldFullName                 FieldName = "name"
	FieldEmail                    FieldName = "email"
	FieldPhone                    FieldName = "phone"
	FieldVehicleYear              FieldName = "vehicleYear"
	FieldVehicleMake              FieldName = "vehicleMake"
	FieldVehicleModel             FieldName = "vehicleModel"
	FieldVehicleType              FieldName = "vehicleType"
	FieldLocation                 FieldName = "location"
	FieldPreferredInstallLocation FieldName = "preferredInstallLocation"
	FieldIndustry                 FieldName = "industry"
	FieldMessage                  FieldName = "message"
	FieldTermsAccepted            FieldName = "termsAccepted"
	FieldLogoFile                 FieldName = "logoFile"
)

// FormFields is the live state of every quote form input.
type FormFields struct {
	Name                     string `json:"name"                     validate:"notblank"`
	Email                    string `json:"email"                    validate:"required,quote_email"`
	Phone                    string `json:"phone"                    validate:"required,quote_phone"`
	VehicleYear              string `json:"vehicleYear"              validate:"notblank"`
	VehicleMake              string `json:"vehicleMake"              validate:"notblank"`
	VehicleModel             string `json:"vehicleModel"             validate:"notblank"`
	VehicleType              string `json:"vehicleType"              validate:"notblank"`
	Location                 string `json:"location"                 validate:"notblank"`
	PreferredInstallLocation string `json:"preferredInstallLocation"`
	Industry                 string `json:"industry"                 validate:"notblank"`
	Message                  string `json:"message"`
	TermsAccepted            bool   `json:"termsAccepted"            validate:"accepted"`
}

// DefaultFormFields is the state of a freshly mounted form.
func DefaultFormFields() FormFields {
	return FormFields{Industry: constants.DefaultIndustry}
}

// ErrorMap holds one message per field currently failing validation.
// A missing key or an empty message means the field is fine.
type ErrorMap map[FieldName]string

func (m ErrorMap) Has(field FieldName) bool {
	return m[field] != ""
}

func (m ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type SubmissionStatus string

const (
	SubmissionStatusIdle       SubmissionStatus = "idle"
	SubmissionStatusSubmitting SubmissionStatus = "submitting"
	SubmissionStatusSuccess    SubmissionStatus = "success"
	SubmissionStatusError      SubmissionStatus = "error"
)

// FileAttachment is an uploaded logo that already passed the file guard.
type FileAttachment struct {
	Name string
	Size int64
	Type string
	Data []byte
}

// FileCandidate is a file the user picked, before the guard has looked at it.
type FileCandidate struct {
	Name string
	Size int64
	Type string
	Data []byte
}

// FormFieldOrder is the order fields appear on the form.
var FormFieldOrder = []FieldName{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldVehicleYear,
	FieldVehicleMake,
	FieldVehicleModel,
	FieldVehicleType,
	FieldLocation,
	FieldPreferredInstallLocation,
	FieldIndustry,
	FieldMessage,
	FieldTermsAccepted,
}
