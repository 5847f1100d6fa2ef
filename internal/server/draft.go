package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	receiptdomain "github.com/rasidhq/rasid/internal/receipt/domain"
)

var topFields = map[string]receiptdomain.TopField{
	"receiptNumber": receiptdomain.FieldReceiptNumber,
	"receiptDate":   receiptdomain.FieldReceiptDate,
	"placeOfSupply": receiptdomain.FieldPlaceOfSupply,
	"notes":         receiptdomain.FieldNotes,
	"terms":         receiptdomain.FieldTerms,
}

var addressFields = map[string]receiptdomain.AddressField{
	"companyName":   receiptdomain.AddressCompanyName,
	"contactPerson": receiptdomain.AddressContactPerson,
	"address":       receiptdomain.AddressStreet,
	"city":          receiptdomain.AddressCity,
	"state":         receiptdomain.AddressState,
	"country":       receiptdomain.AddressCountry,
	"gstin":         receiptdomain.AddressGSTIN,
}

var itemTextFields = map[string]receiptdomain.ItemTextField{
	"description": receiptdomain.ItemDescription,
	"hsnSac":      receiptdomain.ItemHSNSAC,
}

var itemNumberFields = map[string]receiptdomain.ItemNumberField{
	"quantity":    receiptdomain.ItemQuantity,
	"rate":        receiptdomain.ItemRate,
	"igstPercent": receiptdomain.ItemIGSTPercent,
	"cess":        receiptdomain.ItemCess,
}

type setFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (s *Server) GetDraft(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.receiptSvc.Get(c.Request.Context())})
}

func (s *Server) SetDraftField(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	field, ok := topFields[req.Field]
	if !ok {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	s.applyUpdate(c, receiptdomain.SetField{Field: field, Value: req.Value})
}

func (s *Server) SetSellerField(c *gin.Context) {
	s.setAddressField(c, receiptdomain.PartySeller)
}

func (s *Server) SetBuyerField(c *gin.Context) {
	s.setAddressField(c, receiptdomain.PartyBuyer)
}

func (s *Server) setAddressField(c *gin.Context, party receiptdomain.Party) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	field, ok := addressFields[req.Field]
	if !ok {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	s.applyUpdate(c, receiptdomain.SetAddressField{Party: party, Field: field, Value: req.Value})
}

func (s *Server) SetLineItemField(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	var req struct {
		Field string          `json:"field"`
		Value json.RawMessage `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if field, ok := itemTextFields[req.Field]; ok {
		var value string
		if err := json.Unmarshal(req.Value, &value); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		s.applyUpdate(c, receiptdomain.SetItemText{ID: id, Field: field, Value: value})
		return
	}

	if field, ok := itemNumberFields[req.Field]; ok {
		var value float64
		if err := json.Unmarshal(req.Value, &value); err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		s.applyUpdate(c, receiptdomain.SetItemNumber{ID: id, Field: field, Value: value})
		return
	}

	AbortWithError(c, ErrInvalidRequest)
}

func (s *Server) AddLineItem(c *gin.Context) {
	defaults := s.defaults.Receipt()
	item := receiptdomain.NewLineItem(s.genID, receiptdomain.Defaults{
		IGSTPercent: defaults.IGSTPercent,
		Country:     defaults.Country,
	})
	s.applyUpdate(c, receiptdomain.AddItem{Item: item})
}

func (s *Server) RemoveLineItem(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	s.applyUpdate(c, receiptdomain.RemoveItem{ID: id})
}

func (s *Server) ResetDraft(c *gin.Context) {
	view := s.receiptSvc.Reset(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"data": view})
}

func (s *Server) applyUpdate(c *gin.Context, update receiptdomain.Update) {
	view, err := s.receiptSvc.Apply(c.Request.Context(), update)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": view})
}
