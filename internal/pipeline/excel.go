package pipeline

import (
	"fmt"

	"github.com/tealeg/xlsx/v2"

	"github.com/crelens/dealsense/internal/model"
	"github.com/crelens/dealsense/internal/util"
)

// WriteExcel exports the result as a workbook with Summary, Cash Flows,
// Input Data, and Sensitivity sheets.
func WriteExcel(result *model.ExtractionResult, path string) error {
	f := xlsx.NewFile()

	if err := writeSummarySheet(f, result); err != nil {
		return err
	}
	if err := writeCashFlowSheet(f, result); err != nil {
		return err
	}
	if err := writeInputSheet(f, result); err != nil {
		return err
	}
	if err := writeSensitivitySheet(f, result); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// summaryMetrics fixes the display order of the headline sheet
var summaryMetrics = []string{
	"cap_rate", "dscr", "ltv", "debt_yield", "irr", "equity_multiple", "cash_on_cash",
}

func writeSummarySheet(f *xlsx.File, result *model.ExtractionResult) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	header.AddCell().SetString("Metric")
	header.AddCell().SetString("Value")

	addRow := func(label, value string) {
		row := sheet.AddRow()
		row.AddCell().SetString(label)
		row.AddCell().SetString(value)
	}

	addRow("Asset Class", result.AssetClass+" / "+result.Subclass)
	for _, name := range []string{"purchase_price", "noi", "loan_amount"} {
		if v, ok := result.Ingested[name].(float64); ok {
			addRow(name, util.Dollars(v))
		}
	}
	for _, name := range summaryMetrics {
		if d, ok := result.Derived[name]; ok {
			addRow(name, util.Metric(name, d.Value))
		}
	}
	addRow("Completeness", fmt.Sprintf("%d/%d", result.Completeness.Filled, result.Completeness.Required))
	if n := len(result.RisksRanked); n > 0 {
		addRow("Top Risk", fmt.Sprintf("[%s] %s", result.RisksRanked[0].Severity, result.RisksRanked[0].Metric))
	}
	return nil
}

func writeCashFlowSheet(f *xlsx.File, result *model.ExtractionResult) error {
	sheet, err := f.AddSheet("Cash Flows")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	header.AddCell().SetString("Year")
	header.AddCell().SetString("Cash Flow")

	for i, flow := range result.CashFlows {
		row := sheet.AddRow()
		row.AddCell().SetInt(i + 1)
		row.AddCell().SetFloat(flow)
	}
	return nil
}

func writeInputSheet(f *xlsx.File, result *model.ExtractionResult) error {
	sheet, err := f.AddSheet("Input Data")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	header := sheet.AddRow()
	header.AddCell().SetString("Field")
	header.AddCell().SetString("Value")
	header.AddCell().SetString("Confidence")

	for _, name := range sortedKeys(result.Ingested) {
		row := sheet.AddRow()
		row.AddCell().SetString(name)
		switch v := result.Ingested[name].(type) {
		case float64:
			row.AddCell().SetFloat(v)
		case string:
			row.AddCell().SetString(v)
		case bool:
			row.AddCell().SetBool(v)
		default:
			row.AddCell().SetString(fmt.Sprintf("%v", v))
		}
		row.AddCell().SetString(string(result.Confidence[name]))
	}
	return nil
}

func writeSensitivitySheet(f *xlsx.File, result *model.ExtractionResult) error {
	sheet, err := f.AddSheet("Sensitivity")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	for _, grid := range sortedKeys(result.Sensitivities) {
		title := sheet.AddRow()
		title.AddCell().SetString(grid)

		for _, cell := range result.Sensitivities[grid] {
			row := sheet.AddRow()
			row.AddCell().SetString(cell.Scenario)
			for _, name := range sortedKeys(cell.Values) {
				row.AddCell().SetString(fmt.Sprintf("%s=%s", name, util.Metric(name, cell.Values[name])))
			}
			if cell.Breach != "" {
				row.AddCell().SetString("breaches " + cell.Breach)
			}
		}
		sheet.AddRow() // Blank spacer between grids
	}
	return nil
}
