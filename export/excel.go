package export

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"priceserver/catalog"
)

// maxColumnWidth потолок автоширины колонки: одно безразмерное
// наименование не должно растягивать лист.
const maxColumnWidth = 50

var headers = []string{"Бренд", "Наименование", "Цена", "Поставщик"}

// WriteWorkbook сохраняет каталог в человекочитаемый Excel-файл:
// отсортированные строки, в колонке наименования очищенное наименование
// из прайса, цены округлены вверх до копеек, ширина колонок подогнана по
// содержимому.
func WriteWorkbook(filename string, rows []catalog.Listing) error {
	sorted := make([]catalog.Listing, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Brand != sorted[j].Brand {
			return sorted[i].Brand < sorted[j].Brand
		}
		return sorted[i].CanonicalName < sorted[j].CanonicalName
	})

	f := excelize.NewFile()
	defer f.Close()
	sheetName := f.GetSheetName(0)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	widths := make([]int, len(headers))
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		widths[i] = utf8.RuneCountInString(header)
	}

	for rowIdx, r := range sorted {
		row := rowIdx + 2
		price := roundUpKopecks(r.Price)

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.Brand)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), price)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Supplier)

		track(widths, 0, r.Brand)
		track(widths, 1, r.Name)
		track(widths, 2, fmt.Sprintf("%.2f", price))
		track(widths, 3, r.Supplier)
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		w := widths[i] + 2
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		if err := f.SetColWidth(sheetName, col, col, float64(w)); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

func track(widths []int, i int, s string) {
	if n := utf8.RuneCountInString(s); n > widths[i] {
		widths[i] = n
	}
}

// roundUpKopecks округляет цену вверх до двух знаков: покупатель не
// должен увидеть цену ниже закупочной из-за округления.
func roundUpKopecks(v float64) float64 {
	return math.Ceil(v*100) / 100
}
