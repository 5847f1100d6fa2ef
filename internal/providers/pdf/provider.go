package pdf

import (
	"context"

	"github.com/rasidhq/rasid/internal/receipt/domain"
	"go.uber.org/fx"
)

// Renderer turns a draft into a finished PDF document. Rendering is atomic:
// on error no bytes are returned, so a failed export never leaves a partial
// artifact behind.
type Renderer interface {
	RenderReceipt(ctx context.Context, draft domain.ReceiptDraft) ([]byte, error)
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
