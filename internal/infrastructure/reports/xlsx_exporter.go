package reports

import (
	"fmt"
	"io"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const quotesSheet = "Quotes"

var quoteHeader = []interface{}{
	"Quote ID", "Created", "Customer", "Email", "Product", "Status",
	"Length", "Width", "Height", "Area", "Material", "Labor", "Transport", "Grand Total", "Notes",
}

// XLSXExporter writes quote reports as Excel workbooks.
type XLSXExporter struct{}

var _ interfaces.IQuoteExporter = (*XLSXExporter)(nil)

func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

func (XLSXExporter) WriteQuotes(w io.Writer, quotes []entities.Quote) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), quotesSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(quotesSheet, "A1", &quoteHeader); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(quoteHeader), 1)
	if err := f.SetCellStyle(quotesSheet, "A1", last, bold); err != nil {
		return err
	}

	for i, q := range quotes {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := quoteRow(q)
		if err := f.SetSheetRow(quotesSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(quotesSheet, "A", "A", 38); err != nil {
		return err
	}
	if err := f.SetColWidth(quotesSheet, "B", "F", 20); err != nil {
		return err
	}
	return f.Write(w)
}

// quoteRow leaves the cost columns empty for quotes that were never valued.
func quoteRow(q entities.Quote) []interface{} {
	row := []interface{}{
		q.ID,
		q.CreatedAt.UTC().Format(time.DateTime),
		q.CustomerName,
		q.CustomerEmail,
		q.ProductName,
		string(q.Status),
		money(q.Dimensions.Length),
		money(q.Dimensions.Width),
		money(q.Dimensions.Height),
		money(q.Area),
	}
	if q.Cost != nil {
		row = append(row, money(q.Cost.MaterialCost), money(q.Cost.LaborCost), money(q.Cost.TransportCost), money(q.Cost.GrandTotal))
	} else {
		row = append(row, nil, nil, nil, money(q.EffectiveValuation()))
	}
	return append(row, q.Notes)
}

func money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
