package normalize

// Справочники нормализации. Порядок записей значим: извлечение идет по
// первому совпадению, поэтому многословные ключи стоят раньше своих
// однословных частей ("eau de parfum" раньше "parfum").

// Канонические концентрации.
const (
	ConcEDP        = "EDP"
	ConcEDT        = "EDT"
	ConcEDC        = "EDC"
	ConcParfum     = "Parfum"
	ConcEauFraiche = "Eau Fraiche"
)

// Канонические гендеры.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderUnisex = "unisex"
)

// Канонические типы позиций.
const (
	TypeTester  = "tester"
	TypeSample  = "sample"
	TypeMini    = "mini"
	TypeGiftset = "giftset"
	TypeDamaged = "damaged"
)

// NoName сентинел для пустого имени аромата.
const NoName = "NoName"

type concentrationKey struct {
	Key       string
	Canonical string
}

// concentrationMap упорядоченный словарь фраза → концентрация. Многословные
// ключи ищутся с произвольными пробелами между словами, однословные — только
// как целые слова.
var concentrationMap = []concentrationKey{
	{"eau de parfum", ConcEDP},
	{"парфюмерная вода", ConcEDP},
	{"eau de toilette", ConcEDT},
	{"туалетная вода", ConcEDT},
	{"eau de cologne", ConcEDC},
	{"одеколон", ConcEDC},
	{"eau fraiche", ConcEauFraiche},
	{"extrait de parfum", ConcParfum},
	{"extrait", ConcParfum},
	{"exdp", ConcParfum},
	{"духи", ConcParfum},
	{"edp", ConcEDP},
	{"edt", ConcEDT},
	{"edc", ConcEDC},
	{"parfum", ConcParfum},
}

type typeKeyword struct {
	Key       string
	Type      string
	WholeWord bool // только как целое слово; иначе — вхождение подстроки
}

// typeKeywords упорядоченный словарь ключ → тип позиции, первый найденный
// побеждает.
var typeKeywords = []typeKeyword{
	{"tester", TypeTester, false},
	{"тестер", TypeTester, false},
	{"<tst>", TypeTester, false},
	{"tst", TypeTester, true},
	{"sample", TypeSample, false},
	{"пробник", TypeSample, false},
	{"отливант", TypeSample, false},
	{"распив", TypeSample, false},
	{"miniature", TypeMini, false},
	{"миниатюр", TypeMini, false},
	{"mini", TypeMini, true},
	{"мини", TypeMini, true},
	{"giftset", TypeGiftset, false},
	{"gift set", TypeGiftset, false},
	{"набор", TypeGiftset, false},
	{"set", TypeGiftset, true},
	{"помят", TypeDamaged, false},
	{"мятая упаковка", TypeDamaged, false},
	{"damaged", TypeDamaged, false},
}

// extraInfoWords мусорные слова, удаляемые из имени аромата как целые
// слова.
var extraInfoWords = []string{
	"new", "новинка", "original", "оригинал", "акция", "скидка",
	"распродажа", "хит", "sale", "spec", "спец",
}

type genderPattern struct {
	// Pattern либо регулярное выражение (IsRegex), либо слово,
	// сопоставляемое как целое слово.
	Pattern string
	Gender  string
	IsRegex bool
}

// genderPatterns упорядоченный список маркеров пола. Unisex-маркеры идут
// раньше мужских/женских, чтобы явный "unisex" не читался как "u"+хвост.
var genderPatterns = []genderPattern{
	{`unisex`, GenderUnisex, true},
	{`uni\s*sex`, GenderUnisex, true},
	{`унисекс`, GenderUnisex, false},
	{`уни`, GenderUnisex, false},
	{`pour\s+femme`, GenderFemale, true},
	{`for\s+women`, GenderFemale, true},
	{`femme`, GenderFemale, false},
	{`woman`, GenderFemale, false},
	{`women`, GenderFemale, false},
	{`lady`, GenderFemale, false},
	{`wom`, GenderFemale, false},
	{`(l)`, GenderFemale, false},
	{`(w)`, GenderFemale, false},
	// "жен" ловит и "женская", и "жен."
	{`жен`, GenderFemale, true},
	{`pour\s+homme`, GenderMale, true},
	{`for\s+men`, GenderMale, true},
	{`homme`, GenderMale, false},
	{`man`, GenderMale, false},
	{`men`, GenderMale, false},
	{`(m)`, GenderMale, false},
	{`муж`, GenderMale, true},
}

// Гендерные символы.
const (
	maleSymbol   = "♂"
	femaleSymbol = "♀"
)

// commonVolumes типовые объемы флаконов для фоллбэка, когда в тексте нет
// единиц измерения. Дробные значения идут раньше целых, иначе "1" найдется
// внутри "1.5".
var commonVolumes = []string{
	"1.5", "2.5", "3.5", "7.5", "0.7", "0.8",
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
	"15", "20", "25", "30", "33", "35", "40", "50", "60", "65",
	"75", "80", "90", "100", "125", "150", "200",
}

type flankerSynonym struct {
	Pattern     string // регулярное выражение по целым словам
	Replacement string
}

// flankerSynonyms канонизация написаний слов-фланкеров. Направление замен
// выбрано так, чтобы закрепленные спец-случаи ("encre noire a l'extreme")
// оставались неподвижной точкой прохода.
var flankerSynonyms = []flankerSynonym{
	{`exclusif`, "exclusive"},
	{`extrem`, "extreme"},
	{`xtreme`, "extreme"},
	{`extreem`, "extreme"},
	{`intence`, "intense"},
	{`noir`, "noire"},
}
