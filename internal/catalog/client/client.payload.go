package client

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"

	"github.com/pkg/errors"
)

// Payload là union đóng cho body của các thao tác ghi: hoặc record có
// cấu trúc serialize thành JSON, hoặc multipart blob khi cần gửi kèm
// binary media. Hai dạng loại trừ lẫn nhau trong một call.
type Payload interface {
	// encode trả về body và content type của request.
	// Content type rỗng = không đặt header.
	encode() (io.Reader, string, error)
}

// StructuredPayload là payload JSON: Data được serialize và gửi với
// Content-Type application/json.
type StructuredPayload struct {
	Data any
}

func (p StructuredPayload) encode() (io.Reader, string, error) {
	data, err := json.Marshal(p.Data)
	if err != nil {
		return nil, "", errors.Wrap(err, "không serialize được payload JSON")
	}
	return bytes.NewReader(data), "application/json", nil
}

// FilePart là một file trong multipart payload
type FilePart struct {
	Field    string // Tên field trong form
	Filename string // Tên file gửi kèm
	Content  []byte // Nội dung file
}

// MultipartPayload là payload multipart/form-data: các field văn bản
// cộng với file binary (ảnh, video). Không đính JSON content type;
// content type multipart với boundary được sinh lúc encode.
type MultipartPayload struct {
	Fields map[string]string
	Files  []FilePart
}

func (p MultipartPayload) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for field, value := range p.Fields {
		if err := w.WriteField(field, value); err != nil {
			return nil, "", errors.Wrapf(err, "không ghi được field %q", field)
		}
	}

	for _, f := range p.Files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, "", errors.Wrapf(err, "không tạo được form file %q", f.Field)
		}
		if _, err := part.Write(f.Content); err != nil {
			return nil, "", errors.Wrapf(err, "không ghi được nội dung file %q", f.Filename)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "không đóng được multipart writer")
	}

	return &buf, w.FormDataContentType(), nil
}
