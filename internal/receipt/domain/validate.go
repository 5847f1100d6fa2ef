package domain

import "strings"

// ValidateForExport gates PDF generation. It returns the first failing
// sentinel; stored state is never altered by validation.
func ValidateForExport(d ReceiptDraft) error {
	if strings.TrimSpace(d.Seller.CompanyName) == "" || strings.TrimSpace(d.Buyer.CompanyName) == "" {
		return ErrCompanyNameMissing
	}
	if strings.TrimSpace(d.Seller.GSTIN) == "" || strings.TrimSpace(d.Buyer.GSTIN) == "" {
		return ErrGSTINMissing
	}
	if !ValidGSTIN(d.Seller.GSTIN) || !ValidGSTIN(d.Buyer.GSTIN) {
		return ErrGSTINInvalid
	}
	for _, item := range d.Items {
		if strings.TrimSpace(item.Description) == "" || item.Rate <= 0 {
			return ErrLineItemInvalid
		}
	}
	return nil
}
