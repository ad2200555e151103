package constants

import "time"

const (
	OrganizationName = "San Gabriel Signs"

	// Literal tags stamped on every SubmissionRecord. Downstream sinks key
	// their routing on these exact strings.
	SubmissionSource  = "website-quote-form"
	SubmissionRouteTo = "quotes-team"

	DefaultIndustry = "real-estate"

	// VehicleYearSpan is how many model years the year picker offers,
	// counting the current one.
	VehicleYearSpan = 25

	SimulatedSubmitDelay = 1500 * time.Millisecond
)

// Logo upload limits
const (
	MaxLogoFileBytes    int64 = 5 * 1024 * 1024
	LogoSniffWindow           = 3072
	MaxMultipartMemory  int64 = 8 << 20
	MaxRequestBodyBytes int64 = 12 << 20
)

var AcceptedLogoTypes = []string{
	"image/jpeg",
	"image/png",
	"image/svg+xml",
	"image/webp",
}

// Field error messages
const (
	MsgNameRequired         = "Name is required"
	MsgEmailRequired        = "Email is required"
	MsgEmailInvalid         = "Please enter a valid email address"
	MsgPhoneRequired        = "Phone number is required"
	MsgPhoneInvalid         = "Please enter a valid phone number"
	MsgVehicleYearRequired  = "Vehicle year is required"
	MsgVehicleMakeRequired  = "Vehicle make is required"
	MsgVehicleModelRequired = "Vehicle model is required"
	MsgVehicleTypeRequired  = "Vehicle type is required"
	MsgLocationRequired     = "Location is required"
	MsgIndustryRequired     = "Industry is required"
	MsgTermsRequired        = "You must accept the terms and conditions"

	MsgLogoUnsupportedType = "Please upload a JPG, PNG, SVG, or WebP image"
	MsgLogoTooLarge        = "File size must be less than 5MB"

	MsgUnknownOption = "Please choose one of the listed options"
)

// Email subjects
const (
	EmailSubjectInternalQuote = "[Quote][%s] %s %s %s"
	EmailSubjectQuoteAck      = "We received your quote request"
)
