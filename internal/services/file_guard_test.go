package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
)

func TestAcceptFile_SizeBoundary(t *testing.T) {
	att, fileErr := AcceptFile(models.FileCandidate{Name: "logo.png", Size: 5_242_880, Type: "image/png"})
	require.Nil(t, fileErr)
	assert.Equal(t, "logo.png", att.Name)
	assert.Equal(t, int64(5_242_880), att.Size)
	assert.Equal(t, "image/png", att.Type)

	_, fileErr = AcceptFile(models.FileCandidate{Name: "logo.png", Size: 5_242_881, Type: "image/png"})
	require.NotNil(t, fileErr)
	assert.Equal(t, FileErrorTooLarge, fileErr.Kind)
	assert.Equal(t, constants.MsgLogoTooLarge, fileErr.Message)
}

func TestAcceptFile_UnsupportedType(t *testing.T) {
	for _, size := range []int64{0, 1024, 5_242_880, 50_000_000} {
		_, fileErr := AcceptFile(models.FileCandidate{Name: "brochure.pdf", Size: size, Type: "application/pdf"})
		require.NotNil(t, fileErr)
		assert.Equal(t, FileErrorUnsupportedType, fileErr.Kind)
		assert.Equal(t, constants.MsgLogoUnsupportedType, fileErr.Message)
	}
}

func TestAcceptFile_TypeIsCheckedBeforeSize(t *testing.T) {
	_, fileErr := AcceptFile(models.FileCandidate{Name: "huge.gif", Size: 10_000_000, Type: "image/gif"})
	require.NotNil(t, fileErr)
	assert.Equal(t, FileErrorUnsupportedType, fileErr.Kind)
}

func TestAcceptFile_AcceptedTypes(t *testing.T) {
	for _, mt := range []string{"image/jpeg", "image/png", "image/svg+xml", "image/webp"} {
		t.Run(mt, func(t *testing.T) {
			_, fileErr := AcceptFile(models.FileCandidate{Name: "logo", Size: 10, Type: mt})
			assert.Nil(t, fileErr)
		})
	}
}
