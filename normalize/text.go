package normalize

import (
	"regexp"
	"strings"
)

// Подготовка сырого текста позиции: прайсы приходят с неразрывными
// пробелами, кавычками четырех видов и буквами, разорванными случайной
// пунктуацией.

var (
	// "1 5ml" → "1.5ml": цифра, пробел, одна цифра дробной части и
	// единица объема. Ровно одна цифра, иначе "07 100ml" склеится в
	// "07.100ml"
	fractionalSpaceRe = regexp.MustCompile(`(?i)(\d)\s+(\d\s*(?:ml|мл|l|л))`)

	// одиночные буквы, разорванные пробелами: "c h a n e l"
	splitLettersRe = regexp.MustCompile(`(?i)\b(?:\pL\s+){2,}\pL\b`)

	// содержимое скобок любого вида
	bracketsRe = regexp.MustCompile(`[(\[{][^)\]}]*[)\]}]`)

	// номерные пометки "№ 5", "no. 5" оставляем, чистим только символ
	numeroRe = regexp.MustCompile(`№\s*`)

	quoteReplacer = strings.NewReplacer(
		"«", `"`, "»", `"`, "“", `"`, "”", `"`, "‘", "'", "’", "'",
		"`", "'", "´", "'",
	)

	punctTailRe = regexp.MustCompile(`[\s.,;:!/\\-]+$`)
)

// Preprocess приводит сырую строку к рабочему виду: неразрывные пробелы,
// регистр, схлопнутые пробелы.
func Preprocess(text string) string {
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.ToLower(text)
	return collapseSpaces(text)
}

// FixFractionalSpaces чинит дробные объемы, разорванные пробелом:
// "1 5ml" → "1.5ml".
func FixFractionalSpaces(text string) string {
	return fractionalSpaceRe.ReplaceAllString(text, "$1.$2")
}

// CollapseSplitLetters склеивает одиночные буквы, разорванные пробелами,
// обратно в слово.
func CollapseSplitLetters(text string) string {
	return splitLettersRe.ReplaceAllStringFunc(text, func(m string) string {
		return strings.Join(strings.Fields(m), "")
	})
}

// CleanExtraInfo убирает скобки с содержимым, нормализует кавычки, чистит
// знак номера и мусорные слова из extraInfoWords.
func CleanExtraInfo(text string) string {
	text = bracketsRe.ReplaceAllString(text, " ")
	text = quoteReplacer.Replace(text)
	text = strings.ReplaceAll(text, `"`, " ")
	text = numeroRe.ReplaceAllString(text, "no")
	for _, w := range extraInfoWords {
		text = removeLiteralWord(text, w)
	}
	return collapseSpaces(text)
}

// StripTrailingPunct убирает хвостовую пунктуацию и пробелы.
func StripTrailingPunct(text string) string {
	return punctTailRe.ReplaceAllString(text, "")
}

// UnifyFlankerWords приводит вариантные написания слов-фланкеров к одному
// виду ("exclusif" → "exclusive", "noir" → "noire").
func UnifyFlankerWords(text string) string {
	for _, syn := range flankerSynonyms {
		re := rawPattern(syn.Pattern)
		locs := re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		var b strings.Builder
		prev := 0
		for _, loc := range locs {
			if !boundedAt(text, loc[0], loc[1]) {
				continue
			}
			b.WriteString(text[prev:loc[0]])
			b.WriteString(syn.Replacement)
			prev = loc[1]
		}
		b.WriteString(text[prev:])
		text = b.String()
	}
	return text
}
