package services

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

var (
	// \s here follows the browser definition: Unicode separators and BOM included.
	quoteEmailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	quotePhoneRegex = regexp.MustCompile(`^[+]?[\d\-()]{10,}$`)
)

// requiredMessages maps each required field to the message shown when it is
// empty. Format failures have their own messages below.
var requiredMessages = map[models.FieldName]string{
	models.FieldFullName:      constants.MsgNameRequired,
	models.FieldEmail:         constants.MsgEmailRequired,
	models.FieldPhone:         constants.MsgPhoneRequired,
	models.FieldVehicleYear:   constants.MsgVehicleYearRequired,
	models.FieldVehicleMake:   constants.MsgVehicleMakeRequired,
	models.FieldVehicleModel:  constants.MsgVehicleModelRequired,
	models.FieldVehicleType:   constants.MsgVehicleTypeRequired,
	models.FieldLocation:      constants.MsgLocationRequired,
	models.FieldIndustry:      constants.MsgIndustryRequired,
	models.FieldTermsAccepted: constants.MsgTermsRequired,
}

var formValidate = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()

	// Report errors under the JSON key so they line up with FieldName.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "quote_email", func(fl validator.FieldLevel) bool {
		return IsQuoteEmail(fl.Field().String())
	})
	mustRegister(v, "quote_phone", func(fl validator.FieldLevel) bool {
		return IsQuotePhone(fl.Field().String())
	})
	mustRegister(v, "accepted", func(fl validator.FieldLevel) bool {
		return fl.Field().Bool()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// IsQuoteEmail reports whether s has the local@domain.tld shape.
func IsQuoteEmail(s string) bool {
	return quoteEmailRegex.MatchString(s)
}

// IsQuotePhone reports whether s, once all whitespace is removed, is at least
// ten characters of digits, dashes and parentheses with an optional leading +.
func IsQuotePhone(s string) bool {
	return quotePhoneRegex.MatchString(stripSpaces(s))
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, s)
}

// ValidateQuoteForm checks every field independently and returns the ones in
// violation. An empty map means the form may be submitted.
func ValidateQuoteForm(fields models.FormFields) models.ErrorMap {
	errs := models.ErrorMap{}

	err := formValidate.Struct(fields)
	if err == nil {
		return errs
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		// Only reachable if the struct itself is unusable; treat as a bug.
		utils.Logger.WithError(err).Error("quote form validator misconfigured")
		return errs
	}

	for _, fe := range vErrs {
		field := models.FieldName(fe.Field())
		switch fe.Tag() {
		case "quote_email":
			errs[field] = constants.MsgEmailInvalid
		case "quote_phone":
			errs[field] = constants.MsgPhoneInvalid
		default:
			errs[field] = requiredMessages[field]
		}
	}
	return errs
}
