package sheet

import (
	"strconv"
	"strings"
)

// CellKind вид значения ячейки.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// CellValue значение ячейки таблицы, размеченное один раз на границе
// чтения файла. Дальше по конвейеру сырые типы ячеек не переразбираются.
type CellValue struct {
	Kind   CellKind
	Text   string
	Number float64
}

// EmptyCell пустая ячейка.
func EmptyCell() CellValue {
	return CellValue{Kind: CellEmpty}
}

// TextCell текстовая ячейка; строка из одних пробелов считается пустой.
func TextCell(s string) CellValue {
	s = strings.TrimSpace(s)
	if s == "" {
		return EmptyCell()
	}
	return CellValue{Kind: CellText, Text: s}
}

// NumberCell числовая ячейка.
func NumberCell(f float64) CellValue {
	return CellValue{Kind: CellNumber, Number: f}
}

// IsEmpty сообщает, пуста ли ячейка.
func (c CellValue) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String текстовое представление значения.
func (c CellValue) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return ""
}

// Numeric возвращает числовое значение ячейки. Текст пробуется как число
// после чистки: запятая десятичным разделителем, пробелы-разделители
// тысяч, хвостовые обозначения валют.
func (c CellValue) Numeric() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Number, true
	case CellText:
		s := strings.ToLower(c.Text)
		for _, cut := range []string{"руб.", "руб", "р.", "$", "₽", "usd"} {
			s = strings.ReplaceAll(s, cut, "")
		}
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, " ", "")
		s = strings.ReplaceAll(s, ",", ".")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}
