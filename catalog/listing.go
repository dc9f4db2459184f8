package catalog

import (
	"sort"
	"strings"

	"priceserver/normalize"
)

// Listing нормализованная позиция каталога: одна строка прайса поставщика
// после разбора атрибутов.
type Listing struct {
	Supplier      string  // идентификатор поставщика (имя файла прайса)
	RawBrand      string  // бренд как он был в прайсе
	Brand         string  // канонический бренд
	Name          string  // очищенное наименование позиции
	Aroma         string  // имя аромата (остаток после вычистки атрибутов)
	Gender        string
	Volume        string // "<число> мл" или пустая строка
	Concentration string
	Type          string
	Price         float64 // в базовой валюте после пересчета курса
	CanonicalName string  // ключ дедупликации, производная остальных полей
}

// Reassemble пересчитывает канонический ключ из текущих полей. Обязателен
// после любого изменения атрибутов (групповые дозаполнения меняют пол и
// концентрацию).
func (l *Listing) Reassemble() {
	l.CanonicalName = normalize.AssembleCanonicalName(
		l.Brand, l.Aroma, l.Gender, l.Volume, l.Concentration, l.Type)
}

// aromaWordSet ключ группировки "бренд + множество слов аромата":
// отсортированные уникальные слова, склеенные пробелом. Разные порядки
// слов и повторы дают один ключ.
func aromaWordSet(aroma string) string {
	words := strings.Fields(strings.ToLower(aroma))
	if len(words) == 0 {
		return ""
	}
	seen := make(map[string]struct{}, len(words))
	uniq := words[:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}
	sort.Strings(uniq)
	return strings.Join(uniq, " ")
}
