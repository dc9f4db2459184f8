package brand

import (
	"fmt"
	"sort"
	"strings"
)

// Dictionary неизменяемый справочник брендов: множество канонических
// названий плюс отображение алиас → каноническое название. Собирается один
// раз при старте через DictionaryBuilder и далее только читается.
type Dictionary struct {
	canonical []string          // отсортированный список канонических названий
	aliases   map[string]string // алиас (lower-case) → каноническое название
	// алиасы, отсортированные по убыванию длины (при равной длине —
	// лексикографически); используется для детерминированного поиска
	// бренда по префиксу названия
	aliasesByLength []string
}

// Batch одна курируемая партия данных справочника. Канонические названия
// хранятся в верхнем регистре, алиасы — в нижнем.
type Batch struct {
	Brands   []string
	Synonyms map[string][]string
}

// DictionaryBuilder собирает Dictionary из упорядоченного списка партий.
type DictionaryBuilder struct {
	brands   map[string]struct{}
	synonyms map[string][]string
	order    []string
}

// NewDictionaryBuilder создает пустой builder.
func NewDictionaryBuilder() *DictionaryBuilder {
	return &DictionaryBuilder{
		brands:   make(map[string]struct{}),
		synonyms: make(map[string][]string),
	}
}

// Add добавляет партию. Более поздние партии дополняют предыдущие; алиас,
// уже привязанный к другому бренду, считается ошибкой данных.
func (b *DictionaryBuilder) Add(batch Batch) *DictionaryBuilder {
	for _, name := range batch.Brands {
		canon := strings.ToUpper(strings.TrimSpace(name))
		if _, ok := b.brands[canon]; !ok {
			b.brands[canon] = struct{}{}
			b.order = append(b.order, canon)
		}
	}
	for canon, aliases := range batch.Synonyms {
		canon = strings.ToUpper(strings.TrimSpace(canon))
		if _, ok := b.brands[canon]; !ok {
			b.brands[canon] = struct{}{}
			b.order = append(b.order, canon)
		}
		b.synonyms[canon] = append(b.synonyms[canon], aliases...)
	}
	return b
}

// Build замораживает справочник. Возвращает ошибку, если один алиас
// привязан к двум разным брендам.
func (b *DictionaryBuilder) Build() (*Dictionary, error) {
	d := &Dictionary{
		aliases: make(map[string]string),
	}

	canonical := make([]string, 0, len(b.brands))
	for name := range b.brands {
		canonical = append(canonical, name)
	}
	sort.Strings(canonical)
	d.canonical = canonical

	// каноническое название само по себе тоже алиас
	for _, canon := range canonical {
		d.aliases[strings.ToLower(canon)] = canon
	}
	for canon, aliases := range b.synonyms {
		for _, alias := range aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias == "" {
				continue
			}
			if existing, ok := d.aliases[alias]; ok && existing != canon {
				return nil, fmt.Errorf("alias %q attached to both %q and %q", alias, existing, canon)
			}
			d.aliases[alias] = canon
		}
	}

	d.aliasesByLength = make([]string, 0, len(d.aliases))
	for alias := range d.aliases {
		d.aliasesByLength = append(d.aliasesByLength, alias)
	}
	sort.Slice(d.aliasesByLength, func(i, j int) bool {
		a, b := d.aliasesByLength[i], d.aliasesByLength[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return d, nil
}

// Canonical возвращает отсортированный список канонических названий.
func (d *Dictionary) Canonical() []string {
	return d.canonical
}

// LookupAlias возвращает каноническое название для алиаса (без учета
// регистра).
func (d *Dictionary) LookupAlias(alias string) (string, bool) {
	canon, ok := d.aliases[strings.ToLower(strings.TrimSpace(alias))]
	return canon, ok
}

// Aliases возвращает все алиасы бренда (без самого канонического названия
// в нижнем регистре он тоже присутствует).
func (d *Dictionary) Aliases(canon string) []string {
	canon = strings.ToUpper(strings.TrimSpace(canon))
	var out []string
	for _, alias := range d.aliasesByLength {
		if d.aliases[alias] == canon {
			out = append(out, alias)
		}
	}
	return out
}

// AliasesByLength возвращает все алиасы справочника, отсортированные по
// убыванию длины. Порядок стабилен между запусками: исходный набор алиасов
// неупорядочен, а поиск по префиксу не должен зависеть от порядка обхода.
func (d *Dictionary) AliasesByLength() []string {
	return d.aliasesByLength
}

// Size возвращает количество канонических брендов.
func (d *Dictionary) Size() int {
	return len(d.canonical)
}
