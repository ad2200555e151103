package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

type mockQuoteRequestRepo struct {
	mock.Mock
}

func (m *mockQuoteRequestRepo) EnsureSchema(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockQuoteRequestRepo) Create(ctx context.Context, id uuid.UUID, rec *models.SubmissionRecord) error {
	return m.Called(ctx, id, rec).Error(0)
}

func (m *mockQuoteRequestRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestArchiveSink_Submit(t *testing.T) {
	repo := new(mockQuoteRequestRepo)
	rec := sampleRecord()
	repo.On("Create", mock.Anything, mock.AnythingOfType("uuid.UUID"), rec).
		Run(func(args mock.Arguments) {
			assert.NotEqual(t, uuid.Nil, args.Get(1).(uuid.UUID))
		}).
		Return(nil).Once()

	require.NoError(t, NewArchiveSink(repo).Submit(context.Background(), rec))
	repo.AssertExpectations(t)
}

func TestArchiveSink_SubmitFailure(t *testing.T) {
	repo := new(mockQuoteRequestRepo)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("conn refused"))

	err := NewArchiveSink(repo).Submit(context.Background(), sampleRecord())
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrExternalServiceFailure)
}

func TestArchiveSink_PingDelegates(t *testing.T) {
	repo := new(mockQuoteRequestRepo)
	pingErr := errors.New("db down")
	repo.On("Ping", mock.Anything).Return(pingErr).Once()

	assert.ErrorIs(t, NewArchiveSink(repo).Ping(context.Background()), pingErr)
	repo.AssertExpectations(t)
}
