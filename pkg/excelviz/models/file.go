package models

import "strconv"

// FileInfo describes an uploaded spreadsheet file.
type FileInfo struct {
	// Name is the file name (no path).
	Name string `json:"name"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// MIMEType is the declared or detected media type.
	MIMEType string `json:"mime_type"`
	// SizeLabel is Size formatted for display (e.g. "1.5 MB").
	SizeLabel string `json:"size_label"`
}

// NewFileInfo creates a FileInfo with its size label filled in.
func NewFileInfo(name string, size int64, mimeType string) FileInfo {
	return FileInfo{
		Name:      name,
		Size:      size,
		MIMEType:  mimeType,
		SizeLabel: FormatFileSize(size),
	}
}

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize formats a byte count using 1024-based units and one decimal,
// dropping a trailing ".0" (e.g. 1536 -> "1.5 KB", 2048 -> "2 KB").
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 B"
	}
	v := float64(bytes)
	i := 0
	for v >= 1024 && i < len(sizeUnits)-1 {
		v /= 1024
		i++
	}
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[i]
}
