package normalize

import "strings"

// Извлечение атрибутов из текста позиции. Все функции работают по
// принципу "первое совпадение в порядке справочника" и на мусорном входе
// возвращают пустую строку.

// ExtractConcentration возвращает каноническую концентрацию по первому
// совпавшему ключу словаря. Многословные ключи ищутся с произвольными
// пробелами между словами, однословные — только как целые слова.
func ExtractConcentration(text string) string {
	text = strings.ToLower(text)
	for _, entry := range concentrationMap {
		if matchConcentrationKey(text, entry.Key) {
			return entry.Canonical
		}
	}
	return ""
}

func matchConcentrationKey(text, key string) bool {
	re := keyPattern(key)
	if strings.Contains(key, " ") {
		return re.MatchString(text)
	}
	return containsWord(text, re)
}

// ExtractType возвращает тип позиции (tester, sample, ...) по первому
// совпавшему ключевому слову.
func ExtractType(text string) string {
	text = strings.ToLower(text)
	for _, kw := range typeKeywords {
		if matchTypeKeyword(text, kw) {
			return kw.Type
		}
	}
	return ""
}

func matchTypeKeyword(text string, kw typeKeyword) bool {
	if kw.WholeWord {
		return containsWord(text, keyPattern(kw.Key))
	}
	return strings.Contains(text, kw.Key)
}

// ExtractGender возвращает пол по упорядоченному списку маркеров.
// Unisex-маркеры проверяются раньше мужских и женских, символы ♂/♀
// распознаются отдельно.
func ExtractGender(text string) string {
	text = strings.ToLower(text)

	if strings.Contains(text, maleSymbol) && strings.Contains(text, femaleSymbol) {
		return GenderUnisex
	}

	for _, gp := range genderPatterns {
		if matchGenderPattern(text, gp) {
			return gp.Gender
		}
	}

	if strings.Contains(text, femaleSymbol) {
		return GenderFemale
	}
	if strings.Contains(text, maleSymbol) {
		return GenderMale
	}
	return ""
}

func matchGenderPattern(text string, gp genderPattern) bool {
	if gp.IsRegex {
		return rawPattern(gp.Pattern).MatchString(text)
	}
	return containsWord(text, keyPattern(gp.Pattern))
}
