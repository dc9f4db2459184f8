package brand

import (
	"strings"
)

// NotFound сентинел для случая, когда бренд по префиксу названия не найден.
const NotFound = "NAN"

// DefaultThreshold минимальная схожесть (0–100) для принятия нечеткого
// совпадения.
const DefaultThreshold = 50

// fillerPrefixes служебные фразы дистрибьюторов, которые встречаются перед
// брендом и мешают поиску по префиксу.
var fillerPrefixes = []string{
	"fragrance world ",
}

// Resolver приводит свободный текст бренда к каноническому названию.
// Точное совпадение с алиасом всегда важнее нечеткого поиска: иначе частые
// короткие алиасы ("ck", "ysl") уезжали бы к случайным брендам.
type Resolver struct {
	dict      *Dictionary
	threshold int
}

// NewResolver создает Resolver с порогом по умолчанию.
func NewResolver(dict *Dictionary) *Resolver {
	return &Resolver{dict: dict, threshold: DefaultThreshold}
}

// NewResolverWithThreshold создает Resolver с заданным порогом схожести.
func NewResolverWithThreshold(dict *Dictionary, threshold int) *Resolver {
	return &Resolver{dict: dict, threshold: threshold}
}

// normalizeInput убирает служебные префиксы, неразрывные пробелы и лишние
// пробелы.
func normalizeInput(raw string) string {
	s := strings.ReplaceAll(raw, "\u00a0", " ")
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, filler := range fillerPrefixes {
		if strings.HasPrefix(lower, filler) {
			s = s[len(filler):]
			lower = lower[len(filler):]
		}
	}
	return strings.TrimSpace(s)
}

// Resolve возвращает каноническое название бренда. Сначала точный поиск по
// алиасам, затем нечеткий поиск по каноническим названиям; если лучший
// кандидат не добирает до порога — исходная строка в верхнем регистре
// становится «брендом из одного». Никогда не возвращает ошибку.
func (r *Resolver) Resolve(raw string) string {
	s := normalizeInput(raw)
	if s == "" {
		return NotFound
	}

	if canon, ok := r.dict.LookupAlias(s); ok {
		return canon
	}

	best := ""
	bestScore := -1
	for _, canon := range r.dict.Canonical() {
		score := ratio(strings.ToLower(s), strings.ToLower(canon))
		if score > bestScore {
			best = canon
			bestScore = score
		}
	}
	if bestScore >= r.threshold {
		return best
	}
	return strings.ToUpper(s)
}

// BrandFromName возвращает бренд, с алиаса которого начинается название
// товара, или NotFound. Алиасы обходятся по убыванию длины, поэтому более
// специфичный алиас никогда не затеняется коротким с тем же префиксом.
func (r *Resolver) BrandFromName(name string) string {
	s := strings.ToLower(normalizeInput(name))
	if s == "" {
		return NotFound
	}
	for _, alias := range r.dict.AliasesByLength() {
		if strings.HasPrefix(s, alias) {
			if canon, ok := r.dict.LookupAlias(alias); ok {
				return canon
			}
		}
	}
	return NotFound
}

// Aliases возвращает алиасы канонического бренда (для очистки названий).
func (r *Resolver) Aliases(canon string) []string {
	return r.dict.Aliases(canon)
}
