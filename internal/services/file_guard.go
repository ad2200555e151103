package services

import (
	"fmt"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
)

type FileErrorKind string

const (
	FileErrorUnsupportedType FileErrorKind = "unsupported_type"
	FileErrorTooLarge        FileErrorKind = "too_large"
)

// FileError explains why a logo candidate was refused.
type FileError struct {
	Kind    FileErrorKind
	Message string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AcceptFile checks a logo candidate's type, then its size. The returned
// attachment is a copy the caller can store in place of any previous one.
func AcceptFile(c models.FileCandidate) (models.FileAttachment, *FileError) {
	if !IsAcceptedLogoType(c.Type) {
		return models.FileAttachment{}, &FileError{
			Kind:    FileErrorUnsupportedType,
			Message: constants.MsgLogoUnsupportedType,
		}
	}
	if c.Size > constants.MaxLogoFileBytes {
		return models.FileAttachment{}, &FileError{
			Kind:    FileErrorTooLarge,
			Message: constants.MsgLogoTooLarge,
		}
	}
	return models.FileAttachment{
		Name: c.Name,
		Size: c.Size,
		Type: c.Type,
		Data: c.Data,
	}, nil
}

func IsAcceptedLogoType(mimeType string) bool {
	for _, t := range constants.AcceptedLogoTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}
