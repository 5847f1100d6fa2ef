package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/rasidhq/rasid/internal/receipt/compute"
	"github.com/rasidhq/rasid/internal/receipt/domain"
)

const receiptHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Receipt {{.Draft.ReceiptNumber}}</title>
  <style>
    body {
      margin: 0;
      padding: 40px;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      color: #1a1f36;
      background: #f7f9fc;
      font-size: 14px;
    }
    .receipt-card {
      background: #ffffff;
      max-width: 720px;
      margin: 0 auto;
      padding: 48px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.04);
      border-radius: 4px;
    }
    .header { display: flex; justify-content: space-between; margin-bottom: 24px; }
    .header h2 { margin: 0; font-size: 18px; }
    .header .title { text-align: right; }
    .header .title h1 {
      margin: 0;
      font-size: 26px;
      letter-spacing: 1px;
      color: #2962a8;
    }
    .muted { color: #697386; }
    .block { margin-bottom: 16px; }
    .block .label { font-weight: 600; margin-bottom: 4px; }
    .meta { display: flex; gap: 32px; margin-bottom: 16px; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 16px; }
    th {
      background: #283747;
      color: #ffffff;
      font-weight: 600;
      font-size: 12px;
      padding: 8px 10px;
    }
    td { padding: 8px 10px; font-size: 13px; }
    tr:nth-child(even) td { background: #f5f7fa; }
    th.num, td.num { text-align: right; }
    .totals { display: flex; justify-content: flex-end; }
    .totals table { width: 280px; }
    .totals td { padding: 4px 0; background: none; }
    .totals .grand td {
      border-top: 1px solid #d8dee9;
      font-weight: 700;
      font-size: 16px;
      padding-top: 8px;
    }
  </style>
</head>
<body>
  <div class="receipt-card">
    <div class="header">
      <div>
        <h2>{{orDash .Draft.Seller.CompanyName}}</h2>
        {{if .Draft.Seller.ContactPerson}}<div class="muted">{{.Draft.Seller.ContactPerson}}</div>{{end}}
        <div class="muted">{{.Draft.Seller.Address}}</div>
        <div class="muted">{{joinParts .Draft.Seller.City .Draft.Seller.State .Draft.Seller.Country}}</div>
        {{if .Draft.Seller.GSTIN}}<div class="muted">GSTIN {{.Draft.Seller.GSTIN}}</div>{{end}}
      </div>
      <div class="title">
        <h1>RECEIPT</h1>
        <div class="muted">{{.Draft.ReceiptNumber}}</div>
      </div>
    </div>

    <div class="block">
      <div class="label">Bill To:</div>
      <div>{{orDash .Draft.Buyer.CompanyName}}</div>
      <div class="muted">{{.Draft.Buyer.Address}}</div>
      <div class="muted">{{joinParts .Draft.Buyer.City .Draft.Buyer.State .Draft.Buyer.Country}}</div>
      {{if .Draft.Buyer.GSTIN}}<div class="muted">GSTIN {{.Draft.Buyer.GSTIN}}</div>{{end}}
    </div>

    <div class="meta muted">
      <div>Receipt Date: <span>{{orDash .Draft.ReceiptDate}}</span></div>
      <div>Place of Supply: <span>{{orDash .Draft.PlaceOfSupply}}</span></div>
    </div>

    <table>
      <thead>
        <tr>
          <th>#</th>
          <th style="text-align:left">Item Description</th>
          <th style="text-align:left">HSN/SAC</th>
          <th class="num">Qty</th>
          <th class="num">Rate</th>
          <th class="num">IGST</th>
          <th class="num">Cess</th>
          <th class="num">Amount</th>
        </tr>
      </thead>
      <tbody>
        {{range $i, $item := .Draft.Items}}
        <tr>
          <td class="muted">{{inc $i}}</td>
          <td>{{orDash $item.Description}}</td>
          <td>{{orDash $item.HSNSAC}}</td>
          <td class="num">{{$item.Quantity}}</td>
          <td class="num">{{money $item.Rate}}</td>
          <td class="num">{{money (tax $item)}}</td>
          <td class="num">{{money $item.Cess}}</td>
          <td class="num">{{money (amount $item)}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <table>
        <tr><td class="muted">Sub Total</td><td class="num">{{money .SubTotal}}</td></tr>
        <tr><td class="muted">IGST (18%)</td><td class="num">{{money .TotalTax}}</td></tr>
        <tr class="grand"><td>TOTAL</td><td class="num">{{currency .GrandTotal}}</td></tr>
      </table>
    </div>

    {{if .Draft.Notes}}
    <div class="block">
      <div class="label">Notes</div>
      <div class="muted">{{.Draft.Notes}}</div>
    </div>
    {{end}}
    {{if .Draft.Terms}}
    <div class="block">
      <div class="label">Terms &amp; Conditions</div>
      <div class="muted">{{.Draft.Terms}}</div>
    </div>
    {{end}}
  </div>
</body>
</html>`

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"inc":      func(i int) int { return i + 1 },
	"money":    func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"currency": compute.Currency,
	"amount":   compute.LineAmount,
	"tax":      compute.LineTax,
	"orDash": func(s string) string {
		if s == "" {
			return "—"
		}
		return s
	},
	"joinParts": joinParts,
}).Parse(receiptHTMLTemplate))

// HTML renders the read-only preview. The totals come in on the view, so
// preview and PDF can never disagree about the numbers.
func HTML(view domain.DraftView) (string, error) {
	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("render: receipt preview: %w", err)
	}
	return buf.String(), nil
}

func joinParts(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}
