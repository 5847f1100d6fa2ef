package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rasidhq/rasid/internal/receipt/render"
)

func (s *Server) ExportReceipt(c *gin.Context) {
	exportAttempts.Inc()

	result, err := s.receiptSvc.Export(c.Request.Context())
	if err != nil {
		exportFailures.WithLabelValues(failureReason(err)).Inc()
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, result.Filename))
	c.Data(http.StatusOK, "application/pdf", result.Data)
}

func (s *Server) Preview(c *gin.Context) {
	view := s.receiptSvc.Get(c.Request.Context())
	html, err := render.HTML(view)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (s *Server) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func failureReason(err error) string {
	status, payload := mapError(err)
	if status == http.StatusBadRequest && len(payload.Errors) > 0 {
		return payload.Errors[0].Code
	}
	return payload.Type
}
