package dto

import (
	"encoding/base64"
	"io"
)

// FileUpload - загруженный файл, уже открытый хендлером
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// EncodeImage переводит бинарное изображение в base64 для JSON
func EncodeImage(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(b)
}
