package catalog

import (
	"log/slog"
	"sort"
	"strings"
)

// Merger сводит таблицы всех поставщиков в один каталог: унифицирует
// атрибуты внутри групп похожих позиций, пересобирает канонические ключи и
// оставляет по одной самой дешевой позиции на ключ.
type Merger struct {
	log *slog.Logger
}

// NewMerger создает мержер с логгером для счетчиков строк по проходам.
func NewMerger(log *slog.Logger) *Merger {
	return &Merger{log: log}
}

// Merge прогоняет таблицу через фиксированную последовательность проходов.
// Дозаполнение концентрации запускается дважды: дозаполнение пола может
// открыть группы, которые первый проход не увидел. Второй проход только
// дозаполняет: строки групп, ставших неоднозначными после дозаполнения
// пола, остаются как есть, их выбрасывает лишь первая унификация.
func (m *Merger) Merge(rows []Listing) []Listing {
	m.log.Info("объединение таблиц", "строк", len(rows))

	m.unifyAromaVariants(rows)
	rows = m.unifyConcentration(rows)
	m.fillIfUnique(rows, "концентрация", groupByVolumeType, getConcentration, setConcentration)
	m.fillIfUnique(rows, "пол", groupByAroma, getGender, setGender)
	m.applyGenderOverrides(rows)
	m.fillIfUnique(rows, "концентрация", groupByVolumeType, getConcentration, setConcentration)

	for i := range rows {
		rows[i].Reassemble()
	}

	rows = m.deduplicate(rows)
	m.log.Info("каталог собран", "строк", len(rows))
	return rows
}

// unifyAromaVariants группирует строки по (бренд, множество слов аромата)
// и приводит все варианты написания к самому частому. Если хоть одна
// строка группы unisex, вся группа становится unisex: явный унисекс
// сильнее смешанных мужских и женских пометок.
func (m *Merger) unifyAromaVariants(rows []Listing) {
	groups := make(map[string][]int)
	for i := range rows {
		key := rows[i].Brand + "\x00" + aromaWordSet(rows[i].Aroma)
		groups[key] = append(groups[key], i)
	}

	unified := 0
	for _, idx := range groups {
		if len(idx) < 2 {
			continue
		}

		counts := make(map[string]int)
		for _, i := range idx {
			counts[rows[i].Aroma]++
		}
		best := ""
		for spelling, n := range counts {
			if n > counts[best] || (n == counts[best] && (best == "" || spelling < best)) {
				best = spelling
			}
		}

		unisex := false
		for _, i := range idx {
			if rows[i].Gender == "unisex" {
				unisex = true
				break
			}
		}

		for _, i := range idx {
			if rows[i].Aroma != best {
				rows[i].Aroma = best
				unified++
			}
			if unisex {
				rows[i].Gender = "unisex"
			}
		}
	}
	m.log.Info("варианты ароматов унифицированы", "строк", len(rows), "исправлено", unified)
}

// unifyConcentration группирует по (бренд, аромат, пол, объем). Одна
// различимая концентрация в группе дозаполняет пустые строки; несколько —
// пустые строки выбрасываются, а не угадываются.
func (m *Merger) unifyConcentration(rows []Listing) []Listing {
	groups := make(map[string][]int)
	for i := range rows {
		r := &rows[i]
		key := strings.Join([]string{r.Brand, r.Aroma, r.Gender, r.Volume}, "\x00")
		groups[key] = append(groups[key], i)
	}

	drop := make(map[int]bool)
	for _, idx := range groups {
		distinct := make(map[string]struct{})
		for _, i := range idx {
			if rows[i].Concentration != "" {
				distinct[rows[i].Concentration] = struct{}{}
			}
		}
		switch len(distinct) {
		case 0:
			// нечем заполнять
		case 1:
			var only string
			for c := range distinct {
				only = c
			}
			for _, i := range idx {
				rows[i].Concentration = only
			}
		default:
			// неоднозначная группа: неполные строки отбрасываются
			for _, i := range idx {
				if rows[i].Concentration == "" {
					drop[i] = true
				}
			}
		}
	}

	if len(drop) == 0 {
		m.log.Info("концентрации унифицированы", "строк", len(rows))
		return rows
	}
	out := rows[:0]
	for i := range rows {
		if !drop[i] {
			out = append(out, rows[i])
		}
	}
	m.log.Info("концентрации унифицированы",
		"строк", len(out), "отброшено", len(drop))
	return out
}

// Ключи группировки и доступ к полям для обобщенного дозаполнения.

func groupByVolumeType(r *Listing) string {
	return strings.Join([]string{r.Brand, r.Aroma, r.Gender, r.Volume, r.Type}, "\x00")
}

func groupByAroma(r *Listing) string {
	return r.Brand + "\x00" + r.Aroma
}

func getConcentration(r *Listing) string    { return r.Concentration }
func setConcentration(r *Listing, v string) { r.Concentration = v }
func getGender(r *Listing) string           { return r.Gender }
func setGender(r *Listing, v string)        { r.Gender = v }

// fillIfUnique дозаполняет пустое поле, когда во всей группе у него ровно
// одно различимое непустое значение.
func (m *Merger) fillIfUnique(rows []Listing, field string,
	groupKey func(*Listing) string,
	get func(*Listing) string, set func(*Listing, string)) {

	groups := make(map[string][]int)
	for i := range rows {
		groups[groupKey(&rows[i])] = append(groups[groupKey(&rows[i])], i)
	}

	filled := 0
	for _, idx := range groups {
		distinct := make(map[string]struct{})
		for _, i := range idx {
			if v := get(&rows[i]); v != "" {
				distinct[v] = struct{}{}
			}
		}
		if len(distinct) != 1 {
			continue
		}
		var only string
		for v := range distinct {
			only = v
		}
		for _, i := range idx {
			if get(&rows[i]) == "" {
				set(&rows[i], only)
				filled++
			}
		}
	}
	m.log.Info("дозаполнение по группам", "поле", field, "заполнено", filled)
}

// genderOverrides закрепленные поправки пола для известных ароматов, у
// которых прайсы стабильно теряют пометку.
var genderOverrides = map[string]string{
	"eclat d'arpege": "female",
}

func (m *Merger) applyGenderOverrides(rows []Listing) {
	for i := range rows {
		if g, ok := genderOverrides[strings.ToLower(rows[i].Aroma)]; ok && rows[i].Gender == "" {
			rows[i].Gender = g
		}
	}
}

// deduplicate оставляет по одной строке на канонический ключ — с
// минимальной ценой. При равной цене побеждает лексикографически меньший
// поставщик, далее порядок появления; выбор детерминирован относительно
// перестановок входа.
func (m *Merger) deduplicate(rows []Listing) []Listing {
	type winner struct {
		idx   int
		order int
	}
	best := make(map[string]winner)
	orderKeys := make([]string, 0, len(rows))

	for i := range rows {
		key := rows[i].CanonicalName
		cur, ok := best[key]
		if !ok {
			best[key] = winner{idx: i, order: len(orderKeys)}
			orderKeys = append(orderKeys, key)
			continue
		}
		w := &rows[cur.idx]
		c := &rows[i]
		if c.Price < w.Price ||
			(c.Price == w.Price && c.Supplier < w.Supplier) {
			best[key] = winner{idx: i, order: cur.order}
		}
	}

	out := make([]Listing, 0, len(best))
	for _, key := range orderKeys {
		out = append(out, rows[best[key].idx])
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].CanonicalName < out[b].CanonicalName
	})
	m.log.Info("дедупликация", "было", len(rows), "стало", len(out))
	return out
}
