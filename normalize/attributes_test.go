package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractConcentration(t *testing.T) {
	assert.Equal(t, ConcEDP, ExtractConcentration("chanel no5 eau de parfum 100ml"))
	assert.Equal(t, ConcEDP, ExtractConcentration("шанель парфюмерная  вода"))
	assert.Equal(t, ConcEDT, ExtractConcentration("dior sauvage edt 100ml"))
	assert.Equal(t, ConcParfum, ExtractConcentration("roja elysium parfum"))
	assert.Equal(t, ConcEauFraiche, ExtractConcentration("versace man eau fraiche"))

	// многословный ключ сильнее однословного хвоста
	assert.Equal(t, ConcEDP, ExtractConcentration("x eau de parfum y"))

	// однословный ключ только как целое слово
	assert.Equal(t, "", ExtractConcentration("credit card"))
	assert.Equal(t, "", ExtractConcentration(""))
}

func TestExtractType(t *testing.T) {
	assert.Equal(t, TypeTester, ExtractType("chanel no5 edp 100ml tester"))
	assert.Equal(t, TypeTester, ExtractType("шанель тестер"))
	assert.Equal(t, TypeTester, ExtractType("chanel no5 tst"))
	assert.Equal(t, TypeSample, ExtractType("распив molecule 02"))
	assert.Equal(t, TypeGiftset, ExtractType("подарочный набор lacoste"))
	assert.Equal(t, TypeGiftset, ExtractType("gift set 3x20ml"))
	assert.Equal(t, TypeDamaged, ExtractType("dior homme помятая коробка"))

	// "set" только как целое слово
	assert.Equal(t, "", ExtractType("closet fragrance"))
	assert.Equal(t, "", ExtractType("dior sauvage 100ml"))
}

func TestExtractGender(t *testing.T) {
	assert.Equal(t, GenderMale, ExtractGender("tom ford noir pour homme"))
	assert.Equal(t, GenderMale, ExtractGender("sauvage for men"))
	assert.Equal(t, GenderMale, ExtractGender("саваж муж. 100мл"))
	assert.Equal(t, GenderFemale, ExtractGender("chanel no5 pour femme"))
	assert.Equal(t, GenderFemale, ExtractGender("шанель женская вода"))
	assert.Equal(t, GenderFemale, ExtractGender("si (l) 100ml"))
	assert.Equal(t, GenderUnisex, ExtractGender("molecule 02 unisex"))
	assert.Equal(t, GenderUnisex, ExtractGender("молекула унисекс"))
	assert.Equal(t, "", ExtractGender("dior sauvage 100ml"))
}

// Явный "unisex" не должен читаться как маркер пола из своих частей, и
// пара символов ♂♀ означает унисекс.
func TestExtractGenderUnisexPrecedence(t *testing.T) {
	assert.Equal(t, GenderUnisex, ExtractGender("escentric molecules unisex for men and women"))
	assert.Equal(t, GenderUnisex, ExtractGender("molecule 02 ♂♀"))
	assert.Equal(t, GenderMale, ExtractGender("dior homme ♂"))
	assert.Equal(t, GenderFemale, ExtractGender("chanel no5 ♀"))
}
