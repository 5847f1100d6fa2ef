package pdf

import (
	"context"
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rasidhq/rasid/internal/receipt/compute"
	"github.com/rasidhq/rasid/internal/receipt/domain"
)

var (
	colorAccent      = &props.Color{Red: 41, Green: 98, Blue: 168}
	colorTableHeader = &props.Color{Red: 40, Green: 55, Blue: 71}
	colorStripe      = &props.Color{Red: 245, Green: 247, Blue: 250}
	colorWhite       = &props.Color{Red: 255, Green: 255, Blue: 255}
)

type Provider struct{}

func New() Renderer {
	return &Provider{}
}

// RenderReceipt lays out the A4 receipt: header, seller block, Bill To
// block, date and place of supply, the item table, the right-aligned totals
// block and the optional notes/terms blocks. Row order and spacing are
// fixed; long item lists flow onto further pages.
func (p *Provider) RenderReceipt(_ context.Context, draft domain.ReceiptDraft) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(20).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(draft))
	m.AddRows(partyRows(draft.Seller, false)...)
	m.AddRows(billToRows(draft.Buyer)...)
	m.AddRows(metaRows(draft)...)
	m.AddRows(itemTableRows(draft.Items)...)
	m.AddRows(totalsRows(draft.Items)...)
	m.AddRows(textBlockRows("Notes", draft.Notes)...)
	m.AddRows(textBlockRows("Terms & Conditions", draft.Terms)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow puts the seller company name top-left and the accented document
// title with the receipt number top-right.
func headerRow(draft domain.ReceiptDraft) core.Row {
	company := draft.Seller.CompanyName
	if company == "" {
		company = "Company Name"
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New(company, props.Text{Style: fontstyle.Bold, Size: 14}),
		),
		col.New(5).Add(
			text.New("RECEIPT", props.Text{
				Size: 20, Style: fontstyle.Bold, Align: align.Right, Color: colorAccent,
			}),
			text.New(draft.ReceiptNumber, props.Text{Size: 9, Align: align.Right, Top: 9}),
		),
	)
}

// partyRows writes one address as a top-to-bottom block with fixed line
// spacing. The company name is included only for the buyer; the seller's
// already sits in the header.
func partyRows(addr domain.Address, withCompany bool) []core.Row {
	var lines []string
	if withCompany {
		lines = append(lines, addr.CompanyName)
	}
	if addr.ContactPerson != "" {
		lines = append(lines, addr.ContactPerson)
	}
	lines = append(lines, addr.Address, addr.City, addr.State, addr.Country)
	if addr.GSTIN != "" {
		lines = append(lines, "GSTIN "+addr.GSTIN)
	}

	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, row.New(4.5).Add(
			col.New(12).Add(text.New(l, props.Text{Size: 9})),
		))
	}
	return rows
}

func billToRows(buyer domain.Address) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("Bill To:", props.Text{Style: fontstyle.Bold, Size: 11, Top: 2}),
		)),
	}
	return append(rows, partyRows(buyer, true)...)
}

func metaRows(draft domain.ReceiptDraft) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Receipt Date: "+draft.ReceiptDate, props.Text{Size: 9, Top: 2}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New("Place of Supply: "+draft.PlaceOfSupply, props.Text{Size: 9}),
		)),
	}
}

// itemTableRows renders the styled grid: dark header, one row per item in
// original order, alternating background, numeric columns right-aligned,
// index starting at 1.
func itemTableRows(items []domain.LineItem) []core.Row {
	head := func(size int, label string, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	rows := []core.Row{
		row.New(8).WithStyle(&props.Cell{BackgroundColor: colorTableHeader}).Add(
			head(1, "#", align.Center),
			head(3, "Item Description", align.Left),
			head(2, "HSN/SAC", align.Left),
			head(1, "Qty", align.Right),
			head(1, "Rate", align.Right),
			head(1, "IGST", align.Right),
			head(1, "Cess", align.Right),
			head(2, "Amount", align.Right),
		),
	}

	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: a, Top: 1.5, Left: 1, Right: 1,
		}))
	}
	for i, item := range items {
		r := row.New(7).Add(
			cell(1, strconv.Itoa(i+1), align.Center),
			cell(3, item.Description, align.Left),
			cell(2, item.HSNSAC, align.Left),
			cell(1, formatQuantity(item.Quantity), align.Right),
			cell(1, fmt.Sprintf("%.0f", item.Rate), align.Right),
			cell(1, fmt.Sprintf("%.2f", compute.LineTax(item)), align.Right),
			cell(1, fmt.Sprintf("%.2f", item.Cess), align.Right),
			cell(2, fmt.Sprintf("%.2f", compute.LineAmount(item)), align.Right),
		)
		if i%2 == 1 {
			r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		rows = append(rows, r)
	}
	return rows
}

// totalsRows writes the right-aligned aggregate block: subtotal, tax, a
// separating rule, then the bold grand total in currency form.
func totalsRows(items []domain.LineItem) []core.Row {
	return []core.Row{
		row.New(7).Add(
			col.New(7),
			text.NewCol(3, "Sub Total", props.Text{Size: 9, Top: 3}),
			text.NewCol(2, fmt.Sprintf("%.2f", compute.SubTotal(items)), props.Text{
				Size: 9, Align: align.Right, Top: 3,
			}),
		),
		row.New(5).Add(
			col.New(7),
			text.NewCol(3, "IGST (18%)", props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%.2f", compute.TotalTax(items)), props.Text{
				Size: 9, Align: align.Right,
			}),
		),
		row.New(2).Add(
			col.New(7),
			line.NewCol(5, props.Line{Thickness: 0.3}),
		),
		row.New(8).Add(
			col.New(7),
			text.NewCol(3, "TOTAL", props.Text{Style: fontstyle.Bold, Size: 10}),
			text.NewCol(2, compute.Currency(compute.GrandTotal(items)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
			}),
		),
	}
}

// textBlockRows writes a bold label and wrapped body constrained to the
// content width. Empty bodies produce nothing.
func textBlockRows(label, body string) []core.Row {
	if body == "" {
		return nil
	}
	return []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Top: 3}),
		)),
		row.New(bodyHeight(body)).Add(col.New(12).Add(
			text.New(body, props.Text{Size: 9}),
		)),
	}
}

// bodyHeight estimates the row height needed for wrapped body text at the
// content width; roughly 95 characters fit on one 4mm line.
func bodyHeight(body string) float64 {
	lines := len(body)/95 + 1
	return float64(lines)*4 + 2
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
