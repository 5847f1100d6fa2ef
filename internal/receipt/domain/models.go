package domain

import (
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Address identifies one party on the receipt, tagged by role (seller or
// buyer) at the draft level.
type Address struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	GSTIN         string `json:"gstin"`
}

type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	HSNSAC      string  `json:"hsnSac"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	IGSTPercent float64 `json:"igstPercent"`
	Cess        float64 `json:"cess"`
}

// ReceiptDraft is the single source of truth for the session. Views and the
// PDF renderer read it; they never hold copies that could drift.
type ReceiptDraft struct {
	ReceiptNumber string     `json:"receiptNumber"`
	ReceiptDate   string     `json:"receiptDate"`
	Seller        Address    `json:"seller"`
	Buyer         Address    `json:"buyer"`
	PlaceOfSupply string     `json:"placeOfSupply"`
	Items         []LineItem `json:"items"`
	Notes         string     `json:"notes"`
	Terms         string     `json:"terms"`
}

// Defaults seeds fresh drafts and line items. Values come from the optional
// rasid.yml config file, falling back to these constants.
type Defaults struct {
	IGSTPercent float64
	Country     string
}

const (
	DefaultIGSTPercent = 18
	DefaultCountry     = "India"
)

func (d Defaults) orFallback() Defaults {
	if d.IGSTPercent <= 0 || d.IGSTPercent > 100 {
		d.IGSTPercent = DefaultIGSTPercent
	}
	if d.Country == "" {
		d.Country = DefaultCountry
	}
	return d
}

// NewLineItem returns an empty line item with quantity 1 and the default
// tax percentage.
func NewLineItem(genID *snowflake.Node, defaults Defaults) LineItem {
	defaults = defaults.orFallback()
	return LineItem{
		ID:          genID.Generate().String(),
		Quantity:    1,
		Rate:        0,
		IGSTPercent: defaults.IGSTPercent,
	}
}

// NewDraft returns a fresh draft: generated receipt number, today's date and
// exactly one empty line item.
func NewDraft(genID *snowflake.Node, now time.Time, defaults Defaults) ReceiptDraft {
	defaults = defaults.orFallback()
	return ReceiptDraft{
		ReceiptNumber: newReceiptNumber(now),
		ReceiptDate:   now.Format("2006-01-02"),
		Seller:        Address{Country: defaults.Country},
		Buyer:         Address{Country: defaults.Country},
		Items:         []LineItem{NewLineItem(genID, defaults)},
	}
}

// newReceiptNumber derives a short human-friendly number from the current
// Unix millisecond timestamp (last six digits).
func newReceiptNumber(now time.Time) string {
	ms := now.UnixMilli()
	return fmt.Sprintf("REC-%06d", ms%1_000_000)
}
