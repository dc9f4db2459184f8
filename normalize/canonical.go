package normalize

import "strings"

// canonicalSeparator разделитель частей канонического имени.
const canonicalSeparator = " | "

// AssembleCanonicalName собирает канонический ключ позиции из атрибутов в
// фиксированном порядке: бренд, аромат, пол, объем, концентрация, тип.
// Пустые части и заглушки ("nan", "noname") пропускаются. Сборка — чистая
// функция своих аргументов: повторный вызов с теми же входами дает ту же
// строку.
func AssembleCanonicalName(brand, aroma, gender, volume, concentration, itemType string) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{brand, aroma, gender, volume, concentration, itemType} {
		if isPlaceholder(p) {
			continue
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, canonicalSeparator)
}

func isPlaceholder(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	switch strings.ToLower(s) {
	case "nan", "noname", "none":
		return true
	}
	return false
}
