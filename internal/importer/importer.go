// Package importer loads a product catalog from a CSV export: one product
// per row, matched to existing rows by barcode.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"nexuspos/internal/catalog"
	"nexuspos/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

// CSVImporter reads catalog CSV files and inserts/updates products.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts one product per row, keyed by barcode.
// A missing discountRate is derived from mrp and price the same way the
// product editor does it.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+2, err)
		}
		if p == nil {
			continue
		}

		if _, err := i.productRepo.Upsert(ctx, *p); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", p.Barcode, err)
		}
		imported++
	}

	return imported, nil
}

func parseRow(record []string, index map[string]int) (*domain.Product, error) {
	barcode := pick(record, index, "barcode")
	name := pick(record, index, "name")
	if barcode == "" && name == "" {
		return nil, nil // blank row
	}
	if barcode == "" || name == "" {
		return nil, fmt.Errorf("barcode and name are required (barcode=%q name=%q)", barcode, name)
	}

	price, err := pickDecimal(record, index, "price")
	if err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("price must be positive for barcode %q", barcode)
	}
	mrp, err := pickDecimal(record, index, "mrp")
	if err != nil {
		return nil, err
	}
	if mrp.IsZero() {
		mrp = price
	}
	rate, err := pickDecimal(record, index, "discountRate")
	if err != nil {
		return nil, err
	}
	if rate.IsZero() && mrp.GreaterThan(price) {
		rate = catalog.Recalculate(catalog.FieldPrice, catalog.PriceValues{MRP: mrp, Price: price}).DiscountRate
	}
	cost, err := pickDecimal(record, index, "cost")
	if err != nil {
		return nil, err
	}
	taxRate, err := pickDecimal(record, index, "taxRate")
	if err != nil {
		return nil, err
	}

	stock := 0
	if v := pick(record, index, "stock"); v != "" {
		stock, err = strconv.Atoi(v)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("invalid stock %q for barcode %q", v, barcode)
		}
	}

	return &domain.Product{
		Barcode:      barcode,
		Name:         name,
		Brand:        pick(record, index, "brand"),
		Category:     pick(record, index, "category"),
		Price:        price,
		MRP:          mrp,
		DiscountRate: rate,
		Cost:         cost,
		TaxRate:      taxRate,
		Stock:        stock,
	}, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func pickDecimal(record []string, index map[string]int, key string) (decimal.Decimal, error) {
	v := pick(record, index, key)
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value %q", key, v)
	}
	return d, nil
}
