package handlers

import (
	"mime/multipart"

	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"
)

func openUpload(fh *multipart.FileHeader) (*dto.FileUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, apperrors.NewBadRequestError("Failed to open uploaded file")
	}
	return &dto.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Reader:      f,
	}, func() { _ = f.Close() }, nil
}
