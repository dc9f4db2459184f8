package sheet

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"priceserver/brand"
	"priceserver/catalog"
	"priceserver/normalize"
)

const (
	// minPopulatedRows меньший файл считается мусором, а не прайсом
	minPopulatedRows = 30
	// backfillWindow глубина поиска бренда в соседних строках
	backfillWindow = 5
	// currencyOutlierLimit со скольких цен выше потолка колонка
	// признается ценами во второй валюте
	currencyOutlierLimit = 4
)

// ErrTooFewRows в файле слишком мало заполненных строк.
var ErrTooFewRows = errors.New("слишком мало строк для прайса")

// Ingestor разбирает один лист прайса в список нормализованных позиций.
type Ingestor struct {
	resolver *brand.Resolver
	usdRate  float64
	log      *slog.Logger
}

// NewIngestor создает Ingestor. usdRate используется и для потолка цены
// при поиске колонки, и для пересчета валюты.
func NewIngestor(resolver *brand.Resolver, usdRate float64, log *slog.Logger) *Ingestor {
	return &Ingestor{resolver: resolver, usdRate: usdRate, log: log}
}

// rawListing строка прайса до нормализации атрибутов.
type rawListing struct {
	Brand string
	Name  string
	Price float64
}

// brandState состояние сканера строк: бренда еще не было либо действует
// бренд из последней встреченной строки-заголовка.
type brandState struct {
	current string
	has     bool
}

// apply обрабатывает одну строку и возвращает позицию, если строка
// товарная. Строка с наименованием без цены — встроенный заголовок бренда,
// она переключает состояние.
func (st *brandState) apply(name, price CellValue, resolver *brand.Resolver) (rawListing, bool) {
	if name.IsEmpty() {
		return rawListing{}, false
	}

	if price.IsEmpty() {
		st.current = resolver.Resolve(name.String())
		st.has = true
		return rawListing{}, false
	}

	v, ok := price.Numeric()
	if !ok || v <= 0 {
		return rawListing{}, false
	}

	b := brand.NotFound
	if st.has {
		b = st.current
	}
	if b == brand.NotFound {
		b = resolver.BrandFromName(name.String())
	}
	return rawListing{Brand: b, Name: name.String(), Price: v}, true
}

// Ingest разбирает лист в позиции каталога. Файлы без колонок или со
// слишком малым числом строк пропускаются с ошибкой, строка за строкой
// разбор не падает никогда.
func (ing *Ingestor) Ingest(grid [][]CellValue, supplier string) ([]catalog.Listing, error) {
	if populatedRows(grid) < minPopulatedRows {
		return nil, fmt.Errorf("%s: %w", supplier, ErrTooFewRows)
	}

	cols, err := DetectColumns(grid, ing.usdRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", supplier, err)
	}
	ing.log.Debug("колонки определены",
		"поставщик", supplier, "наименование", cols.Name, "цена", cols.Price)

	var raws []rawListing
	var st brandState
	for row := range grid {
		r, ok := st.apply(cellAt(grid, row, cols.Name), cellAt(grid, row, cols.Price), ing.resolver)
		if ok {
			raws = append(raws, r)
		}
	}

	ing.backfillBrands(raws)
	ing.normalizeCurrency(raws, supplier)

	listings := make([]catalog.Listing, 0, len(raws))
	for _, r := range raws {
		listings = append(listings, ing.toListing(r, supplier))
	}
	ing.log.Info("лист разобран", "поставщик", supplier, "строк", len(listings))
	return listings, nil
}

func populatedRows(grid [][]CellValue) int {
	n := 0
	for _, row := range grid {
		for _, c := range row {
			if !c.IsEmpty() {
				n++
				break
			}
		}
	}
	return n
}

// backfillBrands дозаполняет пропущенные бренды из соседних строк.
// Бренд из предыдущих строк берется, только если он упомянут в тексте
// одной из следующих строк в пределах окна, либо предыдущая строка уже
// была дозаполнена тем же брендом (каскад). Это ограничивает протекание
// бренда из чужой секции.
func (ing *Ingestor) backfillBrands(raws []rawListing) {
	filled := make([]bool, len(raws))
	for i := range raws {
		if raws[i].Brand != brand.NotFound {
			continue
		}

		candidate := ""
		for j := i - 1; j >= 0 && j >= i-backfillWindow; j-- {
			if raws[j].Brand != brand.NotFound {
				candidate = raws[j].Brand
				break
			}
		}
		if candidate == "" {
			continue
		}

		ok := false
		if i > 0 && filled[i-1] && raws[i-1].Brand == candidate {
			ok = true
		}
		if !ok {
			lower := strings.ToLower(candidate)
			for j := i + 1; j < len(raws) && j <= i+backfillWindow; j++ {
				if strings.Contains(strings.ToLower(raws[j].Name), lower) {
					ok = true
					break
				}
			}
		}
		if ok {
			raws[i].Brand = candidate
			filled[i] = true
		}
	}
}

// normalizeCurrency пересчитывает цены в базовую валюту. Если заметная
// часть цен выше потолка, вся колонка считается ценами во второй валюте и
// делится на курс.
func (ing *Ingestor) normalizeCurrency(raws []rawListing, supplier string) {
	if ing.usdRate <= 0 {
		return
	}
	outliers := 0
	for _, r := range raws {
		if r.Price > priceCeilingBase {
			outliers++
		}
	}
	if outliers <= currencyOutlierLimit {
		return
	}
	ing.log.Warn("цены похожи на вторую валюту, делим на курс",
		"поставщик", supplier, "выше потолка", outliers, "курс", ing.usdRate)
	for i := range raws {
		raws[i].Price /= ing.usdRate
	}
}

// toListing нормализует одну сырую строку в позицию каталога.
func (ing *Ingestor) toListing(r rawListing, supplier string) catalog.Listing {
	var aliases []string
	if r.Brand != brand.NotFound {
		aliases = ing.resolver.Aliases(r.Brand)
	}

	name := ing.cleanName(r.Name, r.Brand, aliases)
	attrs := normalize.ExtractAttributes(name, r.Brand, aliases)

	l := catalog.Listing{
		Supplier:      supplier,
		RawBrand:      r.Brand,
		Brand:         r.Brand,
		Name:          name,
		Aroma:         attrs.Aroma,
		Gender:        attrs.Gender,
		Volume:        attrs.Volume,
		Concentration: attrs.Concentration,
		Type:          attrs.Type,
		Price:         r.Price,
	}
	l.Reassemble()
	return l
}

// cleanName приводит наименование к рабочему виду и выносит бренд в
// начало строки, если его алиас встретился внутри. Все вхождения алиасов
// при этом убираются, чтобы бренд не задвоился.
func (ing *Ingestor) cleanName(name, canonBrand string, aliases []string) string {
	name = normalize.Preprocess(name)
	name = normalize.StripTrailingPunct(name)
	if canonBrand == brand.NotFound || canonBrand == "" {
		return name
	}

	lowerBrand := strings.ToLower(canonBrand)
	if strings.HasPrefix(name, lowerBrand) {
		return name
	}

	found := false
	for _, alias := range aliases {
		if normalize.ContainsWord(name, alias) {
			name = normalize.RemoveWord(name, alias)
			found = true
		}
	}
	if !found {
		return name
	}
	name = strings.TrimSpace(strings.Join(strings.Fields(name), " "))
	return strings.TrimSpace(lowerBrand + " " + name)
}
