package chart

import "errors"

// ErrUnknownColumn indicates an axis is unset or not one of the dataset's columns.
var ErrUnknownColumn = errors.New("unknown column")

// ErrUnsupportedKind indicates a chart kind outside line, bar, pie, scatter and doughnut.
var ErrUnsupportedKind = errors.New("unsupported chart kind")
