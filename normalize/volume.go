package normalize

import (
	"strconv"
	"strings"
)

// volumeRe число с необязательной дробной частью и единица измерения.
// Граница справа проверяется вручную, штатный \b не работает после "мл".
var volumeRe = rawPattern(`(\d+(?:[.,]\d+)?)\s*(ml|мл|l|л)`)

// ExtractVolume находит объем в тексте и возвращает его в виде "<число> мл".
// При нескольких упоминаниях побеждает последнее: в прайсах объем часто
// повторяется, и ближе к концу стоит фактический размер флакона. Литры
// переводятся в миллилитры. Если единиц измерения нет, пробуется список
// типовых объемов как отдельных чисел. Пустой результат значит "не нашли".
func ExtractVolume(text string) string {
	text = FixFractionalSpaces(strings.ToLower(text))

	var lastNum, lastUnit string
	for _, m := range volumeRe.FindAllStringSubmatchIndex(text, -1) {
		if !boundedAt(text, m[0], m[1]) {
			continue
		}
		lastNum = text[m[2]:m[3]]
		lastUnit = text[m[4]:m[5]]
	}

	if lastNum != "" {
		return formatVolume(lastNum, lastUnit)
	}

	// фоллбэк: типовой объем как отдельное число без единиц
	for _, v := range commonVolumes {
		if containsWord(text, keyPattern(v)) {
			return v + " мл"
		}
	}
	return ""
}

// formatVolume нормализует число (запятая → точка, литры ×1000) и
// печатает целые значения без точки.
func formatVolume(num, unit string) string {
	num = strings.ReplaceAll(num, ",", ".")
	val, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return ""
	}
	if unit == "l" || unit == "л" {
		val *= 1000
	}
	if val == float64(int64(val)) {
		return strconv.FormatInt(int64(val), 10) + " мл"
	}
	return strconv.FormatFloat(val, 'f', -1, 64) + " мл"
}
