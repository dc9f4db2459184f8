package normalize

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Помощники сопоставления по целым словам. Штатный \b в regexp работает
// только с ASCII, поэтому границы слов для кириллицы проверяются вручную:
// совпадение засчитывается, когда соседние руны не являются буквами или
// цифрами.

// keyPattern компилирует ключ справочника в регулярное выражение без
// якорей границ. Для многословных ключей между словами допускается любое
// количество пробельных символов.
func keyPattern(key string) *regexp.Regexp {
	words := strings.Fields(key)
	escaped := make([]string, len(words))
	for i, w := range words {
		escaped[i] = regexp.QuoteMeta(w)
	}
	return compileCached(`(?i)` + strings.Join(escaped, `\s+`))
}

// rawPattern компилирует готовое регулярное выражение (без якорей границ).
func rawPattern(expr string) *regexp.Regexp {
	return compileCached(`(?i)` + expr)
}

// patternCache кэш скомпилированных выражений: экстракторы зовутся на
// каждую строку прайса, перекомпилировать одни и те же ключи незачем.
var patternCache sync.Map

func compileCached(expr string) *regexp.Regexp {
	if re, ok := patternCache.Load(expr); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(expr)
	patternCache.Store(expr, re)
	return re
}

// isWordRune буква или цифра (Unicode).
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundedAt проверяет, что совпадение [start,end) не прилегает к буквам и
// цифрам.
func boundedAt(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

// containsWord ищет совпадение паттерна по целым словам.
func containsWord(text string, re *regexp.Regexp) bool {
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if boundedAt(text, loc[0], loc[1]) {
			return true
		}
	}
	return false
}

// removeWord удаляет все совпадения паттерна по целым словам.
func removeWord(text string, re *regexp.Regexp) string {
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		if !boundedAt(text, loc[0], loc[1]) {
			continue
		}
		b.WriteString(text[prev:loc[0]])
		prev = loc[1]
	}
	b.WriteString(text[prev:])
	return b.String()
}

// removeLiteralWord удаляет вхождения литеральной строки по целым словам.
func removeLiteralWord(text, word string) string {
	return removeWord(text, keyPattern(word))
}

// RemoveWord удаляет вхождения слова или фразы по границам целых слов.
func RemoveWord(text, word string) string {
	return removeLiteralWord(text, word)
}

// ContainsWord проверяет вхождение слова или фразы по границам целых слов.
func ContainsWord(text, word string) bool {
	return containsWord(text, keyPattern(word))
}

var spaceRe = regexp.MustCompile(`\s+`)

// collapseSpaces сводит пробельные последовательности к одному пробелу.
func collapseSpaces(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
