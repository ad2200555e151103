package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
)

func validFields() models.FormFields {
	return models.FormFields{
		Name:          "Jane Doe",
		Email:         "JANE@EXAMPLE.COM",
		Phone:         "416-555-0100",
		VehicleYear:   "2022",
		VehicleMake:   "Toyota",
		VehicleModel:  "Corolla",
		VehicleType:   "sedan",
		Location:      "toronto",
		Industry:      "real-estate",
		TermsAccepted: true,
	}
}

func TestValidateQuoteForm_ValidFormHasNoErrors(t *testing.T) {
	assert.Empty(t, ValidateQuoteForm(validFields()))
}

func TestValidateQuoteForm_IsIdempotent(t *testing.T) {
	for _, fields := range []models.FormFields{validFields(), models.DefaultFormFields(), {Email: "abc", Phone: "123"}} {
		first := ValidateQuoteForm(fields)
		second := ValidateQuoteForm(fields)
		assert.Equal(t, first, second)
	}
}

func TestValidateQuoteForm_DefaultFormReportsEveryRequiredField(t *testing.T) {
	errs := ValidateQuoteForm(models.DefaultFormFields())

	expected := models.ErrorMap{
		models.FieldFullName:      constants.MsgNameRequired,
		models.FieldEmail:         constants.MsgEmailRequired,
		models.FieldPhone:         constants.MsgPhoneRequired,
		models.FieldVehicleYear:   constants.MsgVehicleYearRequired,
		models.FieldVehicleMake:   constants.MsgVehicleMakeRequired,
		models.FieldVehicleModel:  constants.MsgVehicleModelRequired,
		models.FieldVehicleType:   constants.MsgVehicleTypeRequired,
		models.FieldLocation:      constants.MsgLocationRequired,
		models.FieldTermsAccepted: constants.MsgTermsRequired,
	}
	// industry defaults to real-estate, so it is not missing
	assert.Equal(t, expected, errs)
}

func TestValidateQuoteForm_EachRequiredFieldIsDetected(t *testing.T) {
	cases := []struct {
		field models.FieldName
		clear func(*models.FormFields)
	}{
		{models.FieldFullName, func(f *models.FormFields) { f.Name = "   " }},
		{models.FieldEmail, func(f *models.FormFields) { f.Email = "" }},
		{models.FieldPhone, func(f *models.FormFields) { f.Phone = "" }},
		{models.FieldVehicleYear, func(f *models.FormFields) { f.VehicleYear = "" }},
		{models.FieldVehicleMake, func(f *models.FormFields) { f.VehicleMake = " \t" }},
		{models.FieldVehicleModel, func(f *models.FormFields) { f.VehicleModel = "" }},
		{models.FieldVehicleType, func(f *models.FormFields) { f.VehicleType = "" }},
		{models.FieldLocation, func(f *models.FormFields) { f.Location = "" }},
		{models.FieldIndustry, func(f *models.FormFields) { f.Industry = "" }},
		{models.FieldTermsAccepted, func(f *models.FormFields) { f.TermsAccepted = false }},
	}

	for _, tc := range cases {
		t.Run(string(tc.field), func(t *testing.T) {
			fields := validFields()
			tc.clear(&fields)

			errs := ValidateQuoteForm(fields)
			require.Len(t, errs, 1)
			assert.True(t, errs.Has(tc.field))
		})
	}
}

func TestValidateQuoteForm_OptionalFieldsNeverError(t *testing.T) {
	fields := validFields()
	fields.PreferredInstallLocation = ""
	fields.Message = ""
	assert.Empty(t, ValidateQuoteForm(fields))

	fields.PreferredInstallLocation = "anything at all"
	fields.Message = "   "
	assert.Empty(t, ValidateQuoteForm(fields))
}

func TestValidateQuoteForm_Email(t *testing.T) {
	invalid := []string{"abc", "a@b", "@example.com", "user@", "user @example.com", "user@@example.com", "   "}
	for _, email := range invalid {
		t.Run(email, func(t *testing.T) {
			fields := validFields()
			fields.Email = email
			assert.Equal(t, constants.MsgEmailInvalid, ValidateQuoteForm(fields)[models.FieldEmail])
		})
	}

	fields := validFields()
	fields.Email = ""
	assert.Equal(t, constants.MsgEmailRequired, ValidateQuoteForm(fields)[models.FieldEmail])

	fields.Email = "user@example.com"
	assert.False(t, ValidateQuoteForm(fields).Has(models.FieldEmail))
}

func TestIsQuoteEmail_UnicodeWhitespace(t *testing.T) {
	for _, email := range []string{
		"a\u00a0b@c.io",
		"ab@c\u2003d.io",
		"ab@c.i\u3000o",
		"a\vb@c.io",
		"\ufeffab@c.io",
		"ab@c.io\u2028",
		" ab@c.io",
	} {
		assert.False(t, IsQuoteEmail(email), "%q", email)
	}
	assert.True(t, IsQuoteEmail("j\u00e9r\u00f4me@caf\u00e9.ca"), "non-space unicode is allowed")
}

func TestIsQuotePhone_StripsUnicodeWhitespace(t *testing.T) {
	assert.True(t, IsQuotePhone("416\u00a0555\u20030199"))
	assert.True(t, IsQuotePhone("\ufeff416-555-0199"))
	assert.True(t, IsQuotePhone("416\v555\t0199"))
}

func TestValidateQuoteForm_Phone(t *testing.T) {
	valid := []string{"416-555-0199", "(416) 555-0199", "+1 416 555 0199", "4165550199", " 416 555 0199 "}
	for _, phone := range valid {
		t.Run("valid "+phone, func(t *testing.T) {
			fields := validFields()
			fields.Phone = phone
			assert.False(t, ValidateQuoteForm(fields).Has(models.FieldPhone))
		})
	}

	invalid := []string{"123", "416-555-0", "416.555.0199", "phone: 4165550199", "41655501a9"}
	for _, phone := range invalid {
		t.Run("invalid "+phone, func(t *testing.T) {
			fields := validFields()
			fields.Phone = phone
			assert.Equal(t, constants.MsgPhoneInvalid, ValidateQuoteForm(fields)[models.FieldPhone])
		})
	}

	fields := validFields()
	fields.Phone = ""
	assert.Equal(t, constants.MsgPhoneRequired, ValidateQuoteForm(fields)[models.FieldPhone])
}
