package domain

import (
	"context"
	"errors"
)

// DraftView pairs the draft with the aggregate totals the views display.
type DraftView struct {
	Draft      ReceiptDraft `json:"draft"`
	SubTotal   float64      `json:"subTotal"`
	TotalTax   float64      `json:"totalTax"`
	GrandTotal float64      `json:"grandTotal"`
}

// ExportResult is a finished PDF artifact. Data is complete or absent; the
// renderer never yields a partial document.
type ExportResult struct {
	Filename string
	Data     []byte
}

type Service interface {
	Get(ctx context.Context) DraftView
	Apply(ctx context.Context, update Update) (DraftView, error)
	Reset(ctx context.Context) DraftView
	Export(ctx context.Context) (ExportResult, error)
}

var (
	ErrInvalidUpdate      = errors.New("invalid_update")
	ErrCompanyNameMissing = errors.New("invalid_company_name")
	ErrGSTINMissing       = errors.New("missing_gstin")
	ErrGSTINInvalid       = errors.New("invalid_gstin")
	ErrLineItemInvalid    = errors.New("invalid_line_item")
	ErrExportFailed       = errors.New("export_failed")
)
