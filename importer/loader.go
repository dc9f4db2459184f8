package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"priceserver/sheet"
)

// LoadGrid читает первый лист файла в таблицу размеченных ячеек. Тип
// значения определяется здесь один раз: дальше конвейер с сырыми строками
// не работает.
func LoadGrid(path string) ([][]sheet.CellValue, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть файл %s: %w", path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("в файле %s нет листов", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать лист %s: %w", sheetName, err)
	}

	grid := make([][]sheet.CellValue, len(rows))
	for i, row := range rows {
		cells := make([]sheet.CellValue, len(row))
		for j, raw := range row {
			cells[j] = classifyCell(raw)
		}
		grid[i] = cells
	}
	return grid, nil
}

func classifyCell(raw string) sheet.CellValue {
	s := strings.TrimSpace(raw)
	if s == "" {
		return sheet.EmptyCell()
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return sheet.NumberCell(v)
	}
	return sheet.TextCell(s)
}
