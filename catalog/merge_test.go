package catalog

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMerger() *Merger {
	return NewMerger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func listing(supplier, brand, aroma, gender, volume, conc string, price float64) Listing {
	l := Listing{
		Supplier:      supplier,
		Brand:         brand,
		Aroma:         aroma,
		Gender:        gender,
		Volume:        volume,
		Concentration: conc,
		Price:         price,
	}
	l.Reassemble()
	return l
}

// Унисекс доминирует: группа с male, female и unisex целиком становится
// unisex после унификации вариантов аромата.
func TestMergeUnisexDominates(t *testing.T) {
	rows := []Listing{
		listing("a.xlsx", "ESCENTRIC MOLECULES", "molecule 02", "male", "100 мл", "EDT", 100),
		listing("b.xlsx", "ESCENTRIC MOLECULES", "molecule 02", "female", "50 мл", "EDT", 90),
		listing("c.xlsx", "ESCENTRIC MOLECULES", "02 molecule", "unisex", "30 мл", "EDT", 80),
	}

	out := testMerger().Merge(rows)

	require.Len(t, out, 3) // разные объемы, дедупликация не схлопывает
	for _, r := range out {
		assert.Equal(t, "unisex", r.Gender)
		assert.Equal(t, "molecule 02", r.Aroma)
	}
}

// Самое частое написание аромата побеждает внутри группы одинаковых
// множеств слов.
func TestMergeMostFrequentSpellingWins(t *testing.T) {
	rows := []Listing{
		listing("a.xlsx", "CHANEL", "bleu de chanel", "male", "100 мл", "EDP", 100),
		listing("b.xlsx", "CHANEL", "bleu de chanel", "male", "50 мл", "EDP", 90),
		listing("c.xlsx", "CHANEL", "chanel bleu de", "male", "30 мл", "EDP", 80),
	}

	out := testMerger().Merge(rows)

	for _, r := range out {
		assert.Equal(t, "bleu de chanel", r.Aroma)
	}
}

// Одна различимая концентрация в группе (бренд, аромат, пол, объем)
// дозаполняет пустые строки.
func TestMergeConcentrationBackfill(t *testing.T) {
	rows := []Listing{
		listing("a.xlsx", "CHANEL", "no5", "female", "100 мл", "EDP", 100),
		listing("b.xlsx", "CHANEL", "no5", "female", "100 мл", "", 95),
	}

	out := testMerger().Merge(rows)

	require.Len(t, out, 1) // после дозаполнения ключи совпали
	assert.Equal(t, "EDP", out[0].Concentration)
	assert.Equal(t, 95.0, out[0].Price)
}

// Две различимые концентрации: пустые строки отбрасываются, а не
// угадываются.
func TestMergeConcentrationAmbiguousDropsEmpty(t *testing.T) {
	rows := []Listing{
		listing("a.xlsx", "CHANEL", "no5", "female", "100 мл", "EDP", 100),
		listing("b.xlsx", "CHANEL", "no5", "female", "100 мл", "EDT", 95),
		listing("c.xlsx", "CHANEL", "no5", "female", "100 мл", "", 90),
	}

	out := testMerger().Merge(rows)

	require.Len(t, out, 2)
	for _, r := range out {
		assert.NotEmpty(t, r.Concentration)
	}
}

// Дозаполнение пола по (бренд, аромат): единственное непустое значение
// распространяется на пустые строки.
func TestMergeGenderFillIfUnique(t *testing.T) {
	rows := []Listing{
		listing("a.xlsx", "DIOR", "sauvage", "male", "100 мл", "EDT", 100),
		listing("b.xlsx", "DIOR", "sauvage", "", "60 мл", "EDT", 80),
	}

	out := testMerger().Merge(rows)

	for _, r := range out {
		assert.Equal(t, "male", r.Gender)
	}
}

// Группа, собравшаяся только после дозаполнения пола, дозаполняется
// концентрацией вторым проходом и схлопывается дедупликацией.
func TestMergeConcentrationFillAfterGenderFill(t *testing.T) {
	rows := []Listing{
		listing("a.xlsx", "CHANEL", "no5", "", "100 мл", "", 80),
		listing("b.xlsx", "CHANEL", "no5", "female", "100 мл", "EDP", 100),
	}

	out := testMerger().Merge(rows)

	require.Len(t, out, 1)
	assert.Equal(t, "EDP", out[0].Concentration)
	assert.Equal(t, 80.0, out[0].Price)
}

// Строка без концентрации, попавшая в неоднозначную группу только после
// дозаполнения пола, остается в каталоге: второй проход не выбрасывает.
func TestMergeAmbiguousAfterGenderFillKeepsRows(t *testing.T) {
	rows := []Listing{
		listing("a.xlsx", "CHANEL", "no5", "", "100 мл", "", 80),
		listing("b.xlsx", "CHANEL", "no5", "female", "100 мл", "EDP", 100),
		listing("c.xlsx", "CHANEL", "no5", "female", "100 мл", "EDT", 95),
	}

	out := testMerger().Merge(rows)

	require.Len(t, out, 3)
	kept := false
	for _, r := range out {
		if r.Concentration == "" {
			kept = true
			assert.Equal(t, "female", r.Gender)
		}
	}
	assert.True(t, kept)
}

// Дедупликация оставляет минимальную цену на канонический ключ.
func TestMergeDeduplicationPicksMinPrice(t *testing.T) {
	rows := []Listing{
		listing("a.xlsx", "CHANEL", "no5", "female", "100 мл", "EDP", 12.5),
		listing("b.xlsx", "CHANEL", "no5", "female", "100 мл", "EDP", 9.0),
		listing("c.xlsx", "CHANEL", "no5", "female", "100 мл", "EDP", 15.0),
	}

	out := testMerger().Merge(rows)

	require.Len(t, out, 1)
	assert.Equal(t, 9.0, out[0].Price)
	assert.Equal(t, "b.xlsx", out[0].Supplier)
}

// При равных ценах побеждает лексикографически меньший поставщик,
// независимо от порядка входа.
func TestMergeDeduplicationTieBreak(t *testing.T) {
	forward := []Listing{
		listing("b.xlsx", "CHANEL", "no5", "female", "100 мл", "EDP", 9.0),
		listing("a.xlsx", "CHANEL", "no5", "female", "100 мл", "EDP", 9.0),
	}
	backward := []Listing{forward[1], forward[0]}

	out1 := testMerger().Merge(forward)
	out2 := testMerger().Merge(backward)

	require.Len(t, out1, 1)
	require.Len(t, out2, 1)
	assert.Equal(t, "a.xlsx", out1[0].Supplier)
	assert.Equal(t, "a.xlsx", out2[0].Supplier)
}

func TestMergeGenderOverride(t *testing.T) {
	rows := []Listing{
		listing("a.xlsx", "LANVIN", "eclat d'arpege", "", "100 мл", "EDP", 50),
	}

	out := testMerger().Merge(rows)

	require.Len(t, out, 1)
	assert.Equal(t, "female", out[0].Gender)
}

func TestAromaWordSet(t *testing.T) {
	assert.Equal(t, aromaWordSet("bleu de chanel"), aromaWordSet("chanel bleu de"))
	assert.Equal(t, aromaWordSet("no5 no5"), aromaWordSet("no5"))
	assert.NotEqual(t, aromaWordSet("bleu de chanel"), aromaWordSet("bleu chanel"))
	assert.Equal(t, "", aromaWordSet("  "))
}
