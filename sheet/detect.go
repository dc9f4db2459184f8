package sheet

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Ошибки определения колонок. Для вызывающего это сигнал пропустить файл,
// а не падение прогона.
var (
	ErrNameColumnNotFound  = errors.New("колонка наименований не найдена")
	ErrPriceColumnNotFound = errors.New("колонка цен не найдена")
)

const (
	// minColumnValues колонки с меньшим числом значений слишком
	// разрежены, чтобы быть колонкой данных
	minColumnValues = 5
	// nameHeaderRows первые строки часто заняты разреженной шапкой с
	// брендами, длина значений в них не показательна
	nameHeaderRows = 10
	// minNameLength наименование товара длиннее любого служебного кода
	minNameLength = 30
	// priceCeilingBase потолок вменяемой цены: priceCeilingBase × курс
	priceCeilingBase = 5000
	// maxOutliers сколько значений выше потолка терпим, прежде чем
	// признать колонку не ценовой
	maxOutliers = 2
)

var formulaRe = regexp.MustCompile(`^\s*=`)

// Columns результат определения раскладки листа.
type Columns struct {
	Name  int
	Price int
}

// DetectColumns находит колонки наименования и цены в произвольной
// таблице без гарантированной шапки. Пустые строки в начале листа
// отбрасываются, иначе они сдвигают окно шапки и порог плотности.
// usdRate нужен для потолка цены.
func DetectColumns(grid [][]CellValue, usdRate float64) (Columns, error) {
	grid = trimLeadingEmptyRows(grid)
	cols := Columns{Name: -1, Price: -1}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}

	for col := 0; col < width; col++ {
		if !denseColumn(grid, col) {
			continue
		}
		if isNameColumn(grid, col) {
			cols.Name = col
			break
		}
	}
	if cols.Name < 0 {
		return cols, ErrNameColumnNotFound
	}

	for col := cols.Name + 1; col < width; col++ {
		if !denseColumn(grid, col) {
			continue
		}
		if isPriceColumn(grid, col, usdRate) {
			cols.Price = col
			return cols, nil
		}
	}
	return cols, ErrPriceColumnNotFound
}

func trimLeadingEmptyRows(grid [][]CellValue) [][]CellValue {
	for i, row := range grid {
		for _, c := range row {
			if !c.IsEmpty() {
				return grid[i:]
			}
		}
	}
	return nil
}

func cellAt(grid [][]CellValue, row, col int) CellValue {
	if col >= len(grid[row]) {
		return EmptyCell()
	}
	return grid[row][col]
}

func denseColumn(grid [][]CellValue, col int) bool {
	n := 0
	for row := range grid {
		if !cellAt(grid, row, col).IsEmpty() {
			n++
			if n >= minColumnValues {
				return true
			}
		}
	}
	return false
}

// isNameColumn колонка наименований: значения не похожи на формулы и
// UUID, и ниже шапки есть хотя бы одно значение длиннее minNameLength.
func isNameColumn(grid [][]CellValue, col int) bool {
	total, junk := 0, 0
	longest := 0
	for row := range grid {
		c := cellAt(grid, row, col)
		if c.IsEmpty() || c.Kind != CellText {
			continue
		}
		total++
		if looksLikeJunk(c.Text) {
			junk++
		}
		if row >= nameHeaderRows && len([]rune(c.Text)) > longest {
			longest = len([]rune(c.Text))
		}
	}
	if total == 0 || junk*2 > total {
		return false
	}
	return longest > minNameLength
}

func looksLikeJunk(s string) bool {
	if formulaRe.MatchString(s) {
		return true
	}
	if _, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
		return true
	}
	return false
}

// isPriceColumn колонка цен: больше половины значений числовые, среднее
// больше единицы и почти все значения ниже потолка. Потолок отсекает
// колонки артикулов и значений не в той валюте.
func isPriceColumn(grid [][]CellValue, col int, usdRate float64) bool {
	total := 0
	numeric := 0
	sum := 0.0
	outliers := 0
	ceiling := priceCeilingBase * usdRate

	for row := range grid {
		c := cellAt(grid, row, col)
		if c.IsEmpty() {
			continue
		}
		total++
		v, ok := c.Numeric()
		if !ok {
			continue
		}
		numeric++
		sum += v
		if v > ceiling {
			outliers++
		}
	}

	if total == 0 || numeric*2 <= total {
		return false
	}
	if sum/float64(numeric) <= 1 {
		return false
	}
	return outliers <= maxOutliers
}
