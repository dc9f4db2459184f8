package normalize

import (
	"regexp"
	"strings"
)

// FrenchNormalizer чинит типовые искажения французских названий:
// висячие предлоги, диакритику, апострофы, задвоенные предлоги и известные
// «трудные» написания.
type FrenchNormalizer struct {
	danglingRe *regexp.Regexp
	exceptions []string

	specialPatterns []specialPattern

	apostrophePatterns []rewriteRule
	duplicatePatterns  []rewriteRule
}

type rewriteRule struct {
	re          *regexp.Regexp
	replacement string
}

// specialPattern применяется только когда все ключевые слова присутствуют в
// тексте — дешевая защита от лишних прогонов регулярных выражений.
type specialPattern struct {
	keywords    []string
	re          *regexp.Regexp
	replacement string
}

// accentReplacer таблица замен диакритики, фиксированная.
var accentReplacer = strings.NewReplacer(
	"ô", "o", "ê", "e", "î", "i", "â", "a", "û", "u",
	"é", "e", "è", "e", "ë", "e", "ï", "i", "ü", "u",
	"ù", "u", "ç", "c", "œ", "oe", "æ", "ae",
	"Ô", "O", "Ê", "E", "Î", "I", "Â", "A", "Û", "U",
	"É", "E", "È", "E", "Ë", "E", "Ï", "I", "Ü", "U",
	"Ù", "U", "Ç", "C", "Œ", "OE", "Æ", "AE",
	"à", "a", "À", "A",
)

// danglingPrepositions предлоги, не имеющие права висеть в конце названия.
var danglingPrepositions = []string{
	"de", "du", "des", "le", "la", "les", "l'", "à", "au", "aux", "en", "sur",
}

// danglingExceptions названия, в которых висячий предлог — часть имени.
var danglingExceptions = []string{"terre de", "homme de", "femme de"}

// NewFrenchNormalizer создает нормализатор с предкомпилированными
// паттернами.
func NewFrenchNormalizer() *FrenchNormalizer {
	n := &FrenchNormalizer{
		exceptions: danglingExceptions,
	}

	n.danglingRe = regexp.MustCompile(
		`(?i)\b(` + strings.Join(danglingPrepositions, "|") + `)\s*$`)

	n.specialPatterns = []specialPattern{
		{
			// "noir" ловит оба написания, с "e" и без
			keywords:    []string{"encre", "noir"},
			re:          regexp.MustCompile(`(?i)encre\s+noire?(?:\s+|["` + "`" + `'])?(?:a\s+)?(?:l[` + "`" + `'"])?(?:a\s+)?(?:l[` + "`" + `'"])?extreme`),
			replacement: "encre noire a l'extreme",
		},
		{
			keywords:    []string{"l", "amour"},
			re:          regexp.MustCompile(`(?i)l['\s]*amour\s*(?:de\s+)?(?:lady\b)?`),
			replacement: "l'amour",
		},
		{
			keywords:    []string{"perles", "de"},
			re:          regexp.MustCompile(`(?i)\bperles?\s+de\s+`),
			replacement: "perles de ",
		},
		{
			keywords:    []string{"eclat", "arpege"},
			re:          regexp.MustCompile(`(?i)eclat\s*d['\s]*arpege`),
			replacement: "eclat d'arpege",
		},
	}

	n.apostrophePatterns = []rewriteRule{
		{regexp.MustCompile(`(?i)l\s*['` + "`" + `](\w)`), "l'$1"},
		{regexp.MustCompile(`(?i)d\s*['` + "`" + `](\w)`), "d'$1"},
		{regexp.MustCompile(`(?i)\bd\s+([aeiouy]\w*)`), "d'$1"},
		{regexp.MustCompile(`(?i)\bl\s+([aeiouy]\w*)`), "l'$1"},
	}

	// RE2 без обратных ссылок: одинаковые пары перечислены явно
	n.duplicatePatterns = []rewriteRule{
		{regexp.MustCompile(`(?i)\bde\s+de\b`), "de"},
		{regexp.MustCompile(`(?i)\ba\s+a\b`), "a"},
		{regexp.MustCompile(`(?i)\ble\s+le\b`), "le"},
		{regexp.MustCompile(`(?i)\bla\s+la\b`), "la"},
		{regexp.MustCompile(`(?i)\bles\s+les\b`), "les"},
		{regexp.MustCompile(`(?i)l['` + "`" + `]\s*l['` + "`" + `]`), "l'"},
		{regexp.MustCompile(`(?i)\ba\s+l['` + "`" + `]\s*a\s+l['` + "`" + `]`), "a l'"},
	}

	return n
}

// RemoveDanglingPrepositions убирает висячий предлог в конце строки с
// учетом исключений.
func (n *FrenchNormalizer) RemoveDanglingPrepositions(text string) string {
	lower := strings.ToLower(text)
	for _, exc := range n.exceptions {
		if strings.Contains(lower, exc) {
			return text
		}
	}
	return n.danglingRe.ReplaceAllString(text, "")
}

// ApplySpecialPatterns применяет спец-паттерны, когда в тексте есть все их
// ключевые слова.
func (n *FrenchNormalizer) ApplySpecialPatterns(text string) string {
	lower := strings.ToLower(text)
	for _, sp := range n.specialPatterns {
		all := true
		for _, kw := range sp.keywords {
			if !strings.Contains(lower, kw) {
				all = false
				break
			}
		}
		if all {
			text = sp.re.ReplaceAllString(text, sp.replacement)
		}
	}
	return text
}

// FixApostrophes чинит апострофы и пробелы вокруг них.
func (n *FrenchNormalizer) FixApostrophes(text string) string {
	for _, rule := range n.apostrophePatterns {
		text = rule.re.ReplaceAllString(text, rule.replacement)
	}
	return text
}

// RemoveDuplicatePrepositions убирает задвоенные предлоги.
func (n *FrenchNormalizer) RemoveDuplicatePrepositions(text string) string {
	for _, rule := range n.duplicatePatterns {
		text = rule.re.ReplaceAllString(text, rule.replacement)
	}
	return text
}

// FoldAccents заменяет буквы с диакритикой на ASCII-эквиваленты.
func (n *FrenchNormalizer) FoldAccents(text string) string {
	return accentReplacer.Replace(text)
}

// Normalize применяет все правила в фиксированном порядке.
func (n *FrenchNormalizer) Normalize(text string) string {
	if text == "" {
		return text
	}

	text = n.FoldAccents(text)
	text = n.RemoveDanglingPrepositions(text)
	text = n.ApplySpecialPatterns(text)
	text = n.FixApostrophes(text)
	text = n.RemoveDuplicatePrepositions(text)

	return text
}
