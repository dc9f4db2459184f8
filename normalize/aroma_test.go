package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAttributes(t *testing.T) {
	a := ExtractAttributes("CHANEL No5 eau de parfum 100ml tester (w)", "CHANEL", []string{"chanel"})

	assert.Equal(t, "100 мл", a.Volume)
	assert.Equal(t, ConcEDP, a.Concentration)
	assert.Equal(t, TypeTester, a.Type)
	assert.Equal(t, GenderFemale, a.Gender)
	assert.Equal(t, "no5", a.Aroma)
}

func TestExtractAromaNameStripsAllAttributes(t *testing.T) {
	a := ExtractAttributes("Dior Sauvage Elixir edp 60 ml", "CHRISTIAN DIOR", []string{"christian dior", "dior"})
	assert.Equal(t, "sauvage elixir", a.Aroma)
}

// Хвост от дробного объема тоже вычищается: "7" из "7.5 мл".
func TestExtractAromaNameStripsVolumeTail(t *testing.T) {
	a := ExtractAttributes("mancera roses vanille 7 5ml отливант", "MANCERA", []string{"mancera"})
	assert.Equal(t, "7.5 мл", a.Volume)
	assert.Equal(t, TypeSample, a.Type)
	assert.Equal(t, "roses vanille", a.Aroma)
}

func TestExtractAromaNameGarbage(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"пустая строка", ""},
		{"чисто числовая строка", "1234567"},
		{"одни знаки", "--- *** ..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ExtractAttributes(tt.in, "", nil)
			assert.Equal(t, NoName, a.Aroma)
			assert.Empty(t, a.Concentration)
			assert.Empty(t, a.Gender)
			assert.Empty(t, a.Type)
		})
	}
}

func TestExtractAromaNameLaliqueSpecialCase(t *testing.T) {
	a := ExtractAttributes("Lalique Perles de Lalique edp 100ml", "LALIQUE", []string{"lalique"})
	assert.Equal(t, "perles de lalique", a.Aroma)
}

// Разные искаженные написания "Encre Noire à l'Extrême" сходятся к одному
// имени, и повторный прогон результата его не меняет.
func TestExtractAromaNameEncreNoireVariants(t *testing.T) {
	variants := []string{
		"Lalique Encre Noire A L`Extreme edp 100ml",
		"lalique encre noir extreme edp 100ml",
		"Lalique Encre Noire à l'Extrême edp 100ml",
	}
	for _, v := range variants {
		a := ExtractAttributes(v, "LALIQUE", []string{"lalique"})
		assert.Equal(t, "encre noire a l'extreme", a.Aroma, "вход: %s", v)

		again := ExtractAttributes(a.Aroma, "LALIQUE", []string{"lalique"})
		assert.Equal(t, a.Aroma, again.Aroma)
	}
}

func TestExtractAromaNameFlankerUnify(t *testing.T) {
	a := ExtractAttributes("chanel allure homme sport eau extreem", "CHANEL", []string{"chanel"})
	assert.Contains(t, a.Aroma, "extreme")
	assert.NotContains(t, a.Aroma, "extreem")
}

func TestAssembleCanonicalName(t *testing.T) {
	got := AssembleCanonicalName("CHANEL", "no5", "female", "100 мл", "EDP", "tester")
	assert.Equal(t, "CHANEL | no5 | female | 100 мл | EDP | tester", got)
}

func TestAssembleCanonicalNameSkipsPlaceholders(t *testing.T) {
	got := AssembleCanonicalName("CHANEL", "NoName", "", "100 мл", "nan", "")
	assert.Equal(t, "CHANEL | 100 мл", got)
}

// Повторная сборка с теми же входами дает ту же строку.
func TestAssembleCanonicalNameStable(t *testing.T) {
	first := AssembleCanonicalName("LALIQUE", "perles de lalique", "female", "100 мл", "EDP", "")
	second := AssembleCanonicalName("LALIQUE", "perles de lalique", "female", "100 мл", "EDP", "")
	assert.Equal(t, first, second)
}
