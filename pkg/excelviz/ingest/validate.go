package ingest

import (
	"mime"
	"strings"
)

// MaxFileSize is the largest accepted upload, 50 MiB.
const MaxFileSize int64 = 50 * 1024 * 1024

const (
	// MIMETypeXLS is the legacy binary workbook type.
	MIMETypeXLS = "application/vnd.ms-excel"
	// MIMETypeXLSX is the OOXML workbook type.
	MIMETypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SupportedTypes lists the accepted media types.
var SupportedTypes = []string{MIMETypeXLSX, MIMETypeXLS}

// Validate checks size then media type. It has no side effects.
func Validate(src Source) error {
	if src.Size() > MaxFileSize {
		return ErrFileTooLarge
	}
	if !IsSupportedType(src.MIMEType()) {
		return ErrUnsupportedType
	}
	return nil
}

// IsSupportedType reports whether mimeType, ignoring parameters, is a spreadsheet type.
func IsSupportedType(mimeType string) bool {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(mimeType))
	}
	for _, t := range SupportedTypes {
		if mediaType == t {
			return true
		}
	}
	return false
}
