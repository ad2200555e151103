//go:build dev && integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/dtos"
)

// -----------------------------------------------------------------------------
// Globals
// -----------------------------------------------------------------------------

var (
	baseURL string
)

// -----------------------------------------------------------------------------
// Suite bootstrap
// -----------------------------------------------------------------------------

func TestMain(m *testing.M) {
	baseURL = os.Getenv("APP_URL_FROM_COMPOSE_NETWORK")
	if baseURL == "" {
		fmt.Println("APP_URL_FROM_COMPOSE_NETWORK env var is missing")
		os.Exit(1)
	}

	baseURL = strings.TrimRight(baseURL, "/")

	os.Exit(m.Run())
}

// -----------------------------------------------------------------------------
// Options
// -----------------------------------------------------------------------------

func TestQuoteOptions(t *testing.T) {
	resp, err := http.Get(baseURL + "/api/v1/quotes/options")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var opts dtos.QuoteOptionsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&opts))
	require.Equal(t, "real-estate", opts.DefaultIndustry)
	require.NotEmpty(t, opts.VehicleTypes)
	require.Equal(t, time.Now().UTC().Year(), opts.VehicleYears[0])
}

// -----------------------------------------------------------------------------
// Happy path
// -----------------------------------------------------------------------------

func TestSubmitQuoteHappyPath(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		submitJSONExpect(t, validQuote(), http.StatusCreated)
	})

	t.Run("MultipartWithLogo", func(t *testing.T) {
		png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
		submitMultipartExpect(t, validQuote(), "logo.png", png, http.StatusCreated)
	})
}

// -----------------------------------------------------------------------------
// Negative path
// -----------------------------------------------------------------------------

func TestSubmitQuoteInvalidFields(t *testing.T) {
	cases := map[string]func(q *dtos.QuoteRequest){
		"missing name":       func(q *dtos.QuoteRequest) { q.Name = "  " },
		"bad email":          func(q *dtos.QuoteRequest) { q.Email = "user@invalid." },
		"short phone":        func(q *dtos.QuoteRequest) { q.Phone = "555-0100" },
		"terms not accepted": func(q *dtos.QuoteRequest) { q.TermsAccepted = false },
		"unknown location":   func(q *dtos.QuoteRequest) { q.Location = "atlantis" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			q := validQuote()
			mutate(&q)
			submitJSONExpect(t, q, http.StatusBadRequest)
		})
	}
}

func TestSubmitQuoteRejectsPDFLogo(t *testing.T) {
	submitMultipartExpect(t, validQuote(), "brief.pdf", []byte("%PDF-1.7\n"), http.StatusBadRequest)
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

func validQuote() dtos.QuoteRequest {
	return dtos.QuoteRequest{
		Name:          "Integration Tester",
		Email:         "integration@example.com",
		Phone:         "+14165550100",
		VehicleYear:   fmt.Sprint(time.Now().UTC().Year()),
		VehicleMake:   "Ford",
		VehicleModel:  "Transit",
		VehicleType:   "van",
		Location:      "toronto",
		Industry:      "real-estate",
		TermsAccepted: true,
	}
}

func submitJSONExpect(t *testing.T, q dtos.QuoteRequest, wantStatus int) {
	t.Helper()

	b, err := json.Marshal(q)
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/api/v1/quotes", "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode,
		fmt.Sprintf("expected %d for %+v, got %d", wantStatus, q, resp.StatusCode),
	)
}

func submitMultipartExpect(t *testing.T, q dtos.QuoteRequest, filename string, file []byte, wantStatus int) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{
		"name":          q.Name,
		"email":         q.Email,
		"phone":         q.Phone,
		"vehicleYear":   q.VehicleYear,
		"vehicleMake":   q.VehicleMake,
		"vehicleModel":  q.VehicleModel,
		"vehicleType":   q.VehicleType,
		"location":      q.Location,
		"industry":      q.Industry,
		"termsAccepted": fmt.Sprint(q.TermsAccepted),
	} {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("logoFile", filename)
	require.NoError(t, err)
	_, err = fw.Write(file)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(baseURL+"/api/v1/quotes", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, wantStatus, resp.StatusCode,
		fmt.Sprintf("expected %d for logo %q, got %d", wantStatus, filename, resp.StatusCode),
	)
}
