package normalize

import (
	"strings"
	"unicode"
)

// Attributes разобранные атрибуты одной строки прайса.
type Attributes struct {
	Volume        string
	Concentration string
	Type          string
	Gender        string
	Aroma         string
}

// aromaState текст позиции и контекст, протаскиваемые через шаги очистки.
type aromaState struct {
	Text    string
	Brand   string
	Aliases []string

	Volume        string
	Concentration string
	Type          string
	Gender        string
}

// aromaStep именованный шаг очистки. Порядок шагов значим: каждый шаг
// работает с результатом предыдущего.
type aromaStep struct {
	Name string
	Run  func(s *aromaState)
}

const perlesPlaceholder = "perles-de "

var punctCollapseRe = rawPattern(`[.,;:!?/\\|*+=_"«»]+`)

// aromaSteps фиксированный конвейер извлечения имени аромата.
var aromaSteps = []aromaStep{
	{"clean_noise", func(s *aromaState) {
		s.Text = CleanExtraInfo(s.Text)
	}},
	{"protect_perles", func(s *aromaState) {
		s.Text = strings.ReplaceAll(s.Text, "perles de ", perlesPlaceholder)
	}},
	{"strip_brand", func(s *aromaState) {
		for _, alias := range s.Aliases {
			s.Text = removeLiteralWord(s.Text, strings.ToLower(alias))
		}
		if s.Brand != "" {
			s.Text = removeLiteralWord(s.Text, strings.ToLower(s.Brand))
		}
	}},
	{"strip_volume", func(s *aromaState) {
		s.Text = removeWord(s.Text, volumeRe)
		if s.Volume == "" {
			return
		}
		num := strings.TrimSuffix(s.Volume, " мл")
		s.Text = removeLiteralWord(s.Text, num)
		// хвост от дробного объема: "7" после "7.5 мл"
		if i := strings.IndexByte(num, '.'); i > 0 {
			s.Text = removeLiteralWord(s.Text, num[:i])
		}
	}},
	{"strip_concentration", func(s *aromaState) {
		// убираются все ключи словаря, не только выбранный: в строке
		// концентрация нередко упомянута дважды разными словами
		for _, entry := range concentrationMap {
			if strings.Contains(entry.Key, " ") {
				s.Text = keyPattern(entry.Key).ReplaceAllString(s.Text, " ")
			} else {
				s.Text = removeLiteralWord(s.Text, entry.Key)
			}
		}
	}},
	{"strip_type", func(s *aromaState) {
		if s.Type == "" {
			return
		}
		for _, kw := range typeKeywords {
			if kw.Type != s.Type {
				continue
			}
			if kw.WholeWord {
				s.Text = removeLiteralWord(s.Text, kw.Key)
			} else {
				s.Text = strings.ReplaceAll(s.Text, kw.Key, " ")
			}
		}
	}},
	{"strip_gender", func(s *aromaState) {
		if s.Gender != "" {
			for _, gp := range genderPatterns {
				if gp.Gender != s.Gender {
					continue
				}
				if gp.IsRegex {
					s.Text = rawPattern(gp.Pattern).ReplaceAllString(s.Text, " ")
				} else {
					s.Text = removeLiteralWord(s.Text, gp.Pattern)
				}
			}
		}
		s.Text = strings.ReplaceAll(s.Text, maleSymbol, " ")
		s.Text = strings.ReplaceAll(s.Text, femaleSymbol, " ")
	}},
	{"collapse_split_letters", func(s *aromaState) {
		s.Text = CollapseSplitLetters(s.Text)
	}},
	{"french_normalize", func(s *aromaState) {
		s.Text = frenchNorm.Normalize(s.Text)
	}},
	{"collapse_punct", func(s *aromaState) {
		s.Text = punctCollapseRe.ReplaceAllString(s.Text, " ")
		s.Text = collapseSpaces(s.Text)
	}},
	{"unify_flankers", func(s *aromaState) {
		s.Text = UnifyFlankerWords(s.Text)
	}},
	{"restore_perles", func(s *aromaState) {
		s.Text = strings.ReplaceAll(s.Text, "perles-de", "perles de")
		s.Text = collapseSpaces(s.Text)
	}},
}

var frenchNorm = NewFrenchNormalizer()

// ExtractAromaName вычищает из текста позиции бренд, объем, концентрацию,
// тип и пол и возвращает остаток как имя аромата. Пустой остаток
// заменяется на NoName. Для бренда LALIQUE действует закрепленный
// спец-случай: любой остаток с "perles" приводится к "perles de lalique".
func ExtractAromaName(text, brand string, aliases []string, attrs Attributes) string {
	s := &aromaState{
		Text:          Preprocess(text),
		Brand:         brand,
		Aliases:       aliases,
		Volume:        attrs.Volume,
		Concentration: attrs.Concentration,
		Type:          attrs.Type,
		Gender:        attrs.Gender,
	}
	for _, step := range aromaSteps {
		step.Run(s)
	}

	if strings.EqualFold(brand, "lalique") && strings.Contains(s.Text, "perles") {
		return "perles de lalique"
	}
	if !hasLetters(s.Text) {
		return NoName
	}
	return s.Text
}

// hasLetters остаток без единой буквы (чисто числовой мусор) именем
// аромата не считается.
func hasLetters(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// ExtractAttributes разбирает строку позиции целиком: объем, концентрация,
// тип, пол и имя аромата. Никогда не падает: нераспознанные атрибуты
// остаются пустыми, имя аромата деградирует до NoName.
func ExtractAttributes(text, brand string, aliases []string) Attributes {
	pre := Preprocess(text)
	a := Attributes{
		Volume:        ExtractVolume(pre),
		Concentration: ExtractConcentration(pre),
		Type:          ExtractType(pre),
		Gender:        ExtractGender(pre),
	}
	a.Aroma = ExtractAromaName(text, brand, aliases, a)
	return a
}
