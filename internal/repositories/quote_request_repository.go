package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

const quoteRequestsSchema = `
CREATE TABLE IF NOT EXISTS quote_requests (
    id                         UUID PRIMARY KEY,
    name                       TEXT NOT NULL,
    email                      TEXT NOT NULL,
    phone                      TEXT NOT NULL,
    vehicle_year               TEXT NOT NULL,
    vehicle_make               TEXT NOT NULL,
    vehicle_model              TEXT NOT NULL,
    vehicle_type               TEXT NOT NULL,
    location                   TEXT NOT NULL,
    preferred_install_location TEXT NOT NULL DEFAULT '',
    industry                   TEXT NOT NULL,
    message                    TEXT,
    logo_name                  TEXT,
    logo_type                  TEXT,
    logo_size                  BIGINT,
    logo_data                  BYTEA,
    source                     TEXT NOT NULL,
    route_to                   TEXT NOT NULL,
    submitted_at               TIMESTAMPTZ NOT NULL,
    created_at                 TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS quote_requests_email_idx ON quote_requests (email);
`

type QuoteRequestRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, id uuid.UUID, rec *models.SubmissionRecord) error
	Ping(ctx context.Context) error
}

type quoteRequestRepo struct {
	db DB
}

func NewQuoteRequestRepository(db DB) QuoteRequestRepository {
	return &quoteRequestRepo{db: db}
}

func (r *quoteRequestRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, quoteRequestsSchema)
	return err
}

func (r *quoteRequestRepo) Create(ctx context.Context, id uuid.UUID, rec *models.SubmissionRecord) error {
	submittedAt, err := time.Parse(time.RFC3339Nano, rec.Timestamp)
	if err != nil {
		return fmt.Errorf("parse submission timestamp %q: %w", rec.Timestamp, err)
	}

	var (
		logoName, logoType *string
		logoSize           *int64
		logoData           []byte
	)
	if rec.LogoFile != nil {
		logoName = utils.Ptr(rec.LogoFile.Name)
		logoType = utils.Ptr(rec.LogoFile.Type)
		logoSize = utils.Ptr(rec.LogoFile.Size)
		logoData = rec.LogoFile.File
	}

	q := `
        INSERT INTO quote_requests (
            id, name, email, phone,
            vehicle_year, vehicle_make, vehicle_model, vehicle_type,
            location, preferred_install_location, industry, message,
            logo_name, logo_type, logo_size, logo_data,
            source, route_to, submitted_at, created_at
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6, $7, $8,
            $9, $10, $11, $12,
            $13, $14, $15, $16,
            $17, $18, $19, NOW()
        )
    `
	_, err = r.db.Exec(ctx, q,
		id,
		rec.Name,
		rec.Email,
		rec.Phone,
		rec.VehicleYear,
		rec.VehicleMake,
		rec.VehicleModel,
		rec.VehicleType,
		rec.Location,
		rec.PreferredInstallLocation,
		rec.Industry,
		rec.Message,
		logoName,
		logoType,
		logoSize,
		logoData,
		rec.Source,
		rec.RouteTo,
		submittedAt,
	)
	return err
}

func (r *quoteRequestRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
