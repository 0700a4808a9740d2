package ingest

import "errors"

// ErrFileTooLarge indicates the file exceeds MaxFileSize.
var ErrFileTooLarge = errors.New("file size exceeds 50MB limit")

// ErrUnsupportedType indicates the declared media type is not a spreadsheet type.
var ErrUnsupportedType = errors.New("only .xls and .xlsx files are supported")

// ErrRead indicates the file bytes could not be read.
var ErrRead = errors.New("failed to read file")

// ErrDecode indicates the bytes are not a readable spreadsheet container.
var ErrDecode = errors.New("failed to parse Excel file")

// ErrEmptyWorkbook indicates the first sheet has no rows at all.
var ErrEmptyWorkbook = errors.New("no data found in the Excel file")
