package models

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates a required sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrIndexColumnMissing indicates the sheet header has no entity index column.
var ErrIndexColumnMissing = errors.New("index column missing")

// ErrInvalidCell indicates a value cell that is neither empty nor numeric.
var ErrInvalidCell = errors.New("invalid numeric cell")

// ErrDuplicateEntity indicates an entity code listed twice in one sheet.
var ErrDuplicateEntity = errors.New("duplicate entity code")

// ErrIndexMismatch indicates metric tables that do not share row and column indexes.
var ErrIndexMismatch = errors.New("table indexes differ")

// ErrUnknownPeriod indicates a period bound that is not a column label.
var ErrUnknownPeriod = errors.New("unknown period")

// ErrInvertedRange indicates a period window whose start comes after its end.
var ErrInvertedRange = errors.New("start period after end period")

// ErrShapeMismatch indicates two series that cannot be combined elementwise.
var ErrShapeMismatch = errors.New("series shapes differ")

// ErrEmptyFrame indicates chart input with no rows or columns.
var ErrEmptyFrame = errors.New("empty chart input")

// LoadError represents a failure reading a metric sheet.
type LoadError struct {
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load sheet %q: %v", e.Sheet, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheet string, err error) *LoadError {
	return &LoadError{Sheet: sheet, Err: err}
}

// RangeError represents an invalid period window on a table.
type RangeError struct {
	Table string
	Start string
	End   string
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("period range %q-%q on %q: %v", e.Start, e.End, e.Table, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// NewRangeError creates a new RangeError.
func NewRangeError(table, start, end string, err error) *RangeError {
	return &RangeError{Table: table, Start: start, End: end, Err: err}
}

// NotFoundError represents an entity code absent from a table index.
type NotFoundError struct {
	Table  string
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity %q not found in %q", e.Entity, e.Table)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(table, entity string) *NotFoundError {
	return &NotFoundError{Table: table, Entity: entity}
}

// RenderError represents a chart that could not be drawn or saved.
type RenderError struct {
	Chart string // "grouped" or "stacked"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s chart: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(chart string, err error) *RenderError {
	return &RenderError{Chart: chart, Err: err}
}
