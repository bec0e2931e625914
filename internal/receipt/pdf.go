// Package receipt renders a committed sale as a PDF. The layout reproduces
// the till slip: store header, line items, per-mechanism discount rows, and
// a QR code carrying an HMAC-signed reference so a reprint can be verified
// against the stored sale.
package receipt

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	qrcode "github.com/skip2/go-qrcode"

	"nexuspos/internal/domain"
)

type Renderer struct {
	signingKey []byte
}

func NewRenderer(signingKey string) *Renderer {
	return &Renderer{signingKey: []byte(signingKey)}
}

// QRPayload returns "saleID|timestamp|signature" for the given sale.
func (r *Renderer) QRPayload(sale domain.Sale) string {
	data := fmt.Sprintf("%s|%d", sale.ID, sale.CreatedAt.Unix())
	h := hmac.New(sha256.New, r.signingKey)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// Verify checks a scanned payload's signature and returns the sale id it
// names.
func (r *Renderer) Verify(payload string) (saleID string, ok bool) {
	parts := strings.Split(payload, "|")
	if len(parts) != 3 {
		return "", false
	}
	data := parts[0] + "|" + parts[1]
	h := hmac.New(sha256.New, r.signingKey)
	h.Write([]byte(data))
	want := base64.StdEncoding.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(want), []byte(parts[2])) {
		return "", false
	}
	return parts[0], true
}

// Render produces the receipt PDF.
func (r *Renderer) Render(sale domain.Sale, settings domain.StoreSettings) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, settings.StoreName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if settings.Address != "" {
		pdf.CellFormat(0, 5, settings.Address, "", 1, "C", false, 0, "")
	}
	if settings.Phone != "" {
		pdf.CellFormat(0, 5, "Ph: "+settings.Phone, "", 1, "C", false, 0, "")
	}
	if settings.GSTNo != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+settings.GSTNo, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Receipt: %s", sale.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Date: %s", sale.CreatedAt.Format("02 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	if sale.CustomerName != "" {
		pdf.CellFormat(0, 5, "Customer: "+sale.CustomerName, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	cur := settings.Currency
	if cur == "" {
		cur = "INR"
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(60, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(15, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range sale.Lines {
		lineTotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		pdf.CellFormat(60, 6, line.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, money(cur, line.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, money(cur, lineTotal), "", 1, "R", false, 0, "")
	}
	pdf.Ln(1)

	totalRow := func(label, value string, bold bool) {
		if bold {
			pdf.SetFont("Helvetica", "B", 10)
		} else {
			pdf.SetFont("Helvetica", "", 9)
		}
		pdf.CellFormat(100, 6, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, value, "", 1, "R", false, 0, "")
	}

	totalRow("Subtotal", money(cur, sale.Subtotal), false)
	totalRow("Tax", money(cur, sale.TaxTotal), false)
	d := sale.Discounts
	if d.ItemAmount.IsPositive() {
		totalRow("Item discounts", "-"+money(cur, d.ItemAmount), false)
	}
	if d.CouponCode != "" {
		totalRow(fmt.Sprintf("Coupon (%s)", d.CouponCode), "-"+money(cur, d.CouponAmount), false)
	}
	if d.SchemeName != "" {
		totalRow(fmt.Sprintf("Offer (%s)", d.SchemeName), "-"+money(cur, d.GroupAmount), false)
	}
	if d.ManualAmount.IsPositive() {
		totalRow("Manual discount", "-"+money(cur, d.ManualAmount), false)
	}
	totalRow("Total", money(cur, sale.GrandTotal), true)
	totalRow("Paid by", string(sale.PaymentMethod), false)

	qrPNG, err := qrcode.Encode(r.QRPayload(sale), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 58, pdf.GetY()+4, 32, 32, false, opts, 0, "")
	pdf.SetY(pdf.GetY() + 40)

	if settings.FooterText != "" {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, settings.FooterText, "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func money(currency string, v decimal.Decimal) string {
	return fmt.Sprintf("%s %s", currency, v.Round(2).StringFixed(2))
}
