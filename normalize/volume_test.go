package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVolume(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"простой случай", "Dior Sauvage 100ml", "100 мл"},
		{"кириллическая единица", "Диор Саваж 50 мл", "50 мл"},
		{"дробь через запятую", "chanel no5 7,5ml", "7.5 мл"},
		{"разорванная дробь", "CHANEL No5 edp 1 5ml tester", "1.5 мл"},
		{"литры в миллилитры", "Guerlain 3 л", "3000 мл"},
		{"латинские литры", "bulk 1.5l", "1500 мл"},
		{"последнее упоминание побеждает", "набор 50ml + 100ml", "100 мл"},
		{"типовой объем без единиц", "chanel no5 7.5 tester", "7.5 мл"},
		{"нет объема", "chanel no5 tester", ""},
		{"пустая строка", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractVolume(tt.in))
		})
	}
}

// Число внутри слова объемом не считается: границы проверяются и для
// кириллицы, где штатный \b не работает.
func TestExtractVolumeWordBoundaries(t *testing.T) {
	assert.Equal(t, "", ExtractVolume("артикул A100mlX"))
	assert.Equal(t, "100 мл", ExtractVolume("sauvage 100мл."))
}
