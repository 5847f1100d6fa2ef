package pdf

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/rasidhq/rasid/internal/receipt/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderableDraft(t *testing.T) domain.ReceiptDraft {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	draft := domain.NewDraft(node, time.Now(), domain.Defaults{})
	draft.Seller = domain.Address{
		CompanyName:   "Acme Traders",
		ContactPerson: "A. Kumar",
		Address:       "12 MG Road",
		City:          "Pune",
		State:         "Maharashtra",
		Country:       "India",
		GSTIN:         "22AAAAA0000A1Z5",
	}
	draft.Buyer = domain.Address{
		CompanyName: "Bharat Supplies LLP",
		Address:     "4 Park Street",
		City:        "Mumbai",
		State:       "Maharashtra",
		Country:     "India",
		GSTIN:       "29BBBBB1111B2Z6",
	}
	draft.PlaceOfSupply = "Maharashtra"
	draft.Items[0].Description = "Consulting services"
	draft.Items[0].Quantity = 2
	draft.Items[0].Rate = 100
	draft.Notes = "Payment received with thanks."
	draft.Terms = "Goods once sold will not be taken back."
	return draft
}

func TestRenderReceiptProducesPDF(t *testing.T) {
	data, err := New().RenderReceipt(context.Background(), renderableDraft(t))
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderReceiptManyItemsSpansPages(t *testing.T) {
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	draft := renderableDraft(t)
	for i := 0; i < 80; i++ {
		item := domain.NewLineItem(node, domain.Defaults{})
		item.Description = fmt.Sprintf("Item %d", i+1)
		item.Quantity = 1
		item.Rate = 10
		draft.Items = append(draft.Items, item)
	}

	data, err := New().RenderReceipt(context.Background(), draft)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderReceiptEmptyOptionalBlocks(t *testing.T) {
	draft := renderableDraft(t)
	draft.Notes = ""
	draft.Terms = ""
	draft.Seller.ContactPerson = ""

	data, err := New().RenderReceipt(context.Background(), draft)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
