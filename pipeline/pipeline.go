package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"priceserver/brand"
	"priceserver/catalog"
	"priceserver/export"
	"priceserver/importer"
	"priceserver/sheet"
)

// FileSupplier внешний коллаборатор, обновляющий каталог сырых прайсов
// (почтовый ящик, облачная папка). Его отказ валит весь прогон: считать
// каталог по протухшим файлам хуже, чем не считать вовсе.
type FileSupplier interface {
	Refresh(ctx context.Context) error
}

// Store приемник собранного каталога и источник курса валюты.
type Store interface {
	ReplaceCatalog(rows []catalog.Listing) error
	USDRate() float64
}

// Result сводные счетчики одного прогона.
type Result struct {
	FilesProcessed int
	FilesSkipped   int
	RowsIngested   int
	RowsExported   int
	Brands         int
}

// Pipeline последовательно прогоняет все файлы прайсов через разбор,
// слияние и сохранение. Внутри прогона конкурентности нет: файлы
// обрабатываются по одному, слияние идет после всех файлов.
type Pipeline struct {
	supplier   FileSupplier
	store      Store
	resolver   *brand.Resolver
	dir        string
	exportPath string
	log        *slog.Logger
}

// New создает Pipeline. supplier может быть nil, тогда файлы берутся из
// каталога как есть; exportPath пустой — без файла выгрузки.
func New(supplier FileSupplier, store Store, resolver *brand.Resolver,
	dir, exportPath string, log *slog.Logger) *Pipeline {
	return &Pipeline{
		supplier:   supplier,
		store:      store,
		resolver:   resolver,
		dir:        dir,
		exportPath: exportPath,
		log:        log,
	}
}

// Run выполняет полный прогон. Ошибка обновления файлов или сохранения
// каталога фатальна; проблемный файл — это пропуск с предупреждением.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	if p.supplier != nil {
		if err := p.supplier.Refresh(ctx); err != nil {
			return nil, fmt.Errorf("не удалось обновить файлы прайсов: %w", err)
		}
	}

	if err := importer.ConvertLegacyFiles(p.dir, p.log); err != nil {
		return nil, err
	}

	usdRate := p.store.USDRate()
	ing := sheet.NewIngestor(p.resolver, usdRate, p.log)

	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать каталог прайсов: %w", err)
	}

	res := &Result{}
	var all []catalog.Listing
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".xlsx") {
			continue
		}

		path := filepath.Join(p.dir, e.Name())
		grid, err := importer.LoadGrid(path)
		if err != nil {
			p.log.Warn("файл не прочитан, пропуск", "файл", e.Name(), "ошибка", err)
			res.FilesSkipped++
			continue
		}

		rows, err := ing.Ingest(grid, e.Name())
		if err != nil {
			p.log.Warn("файл не разобран, пропуск", "файл", e.Name(), "ошибка", err)
			res.FilesSkipped++
			continue
		}
		if len(rows) == 0 {
			p.log.Warn("файл без позиций, пропуск", "файл", e.Name())
			res.FilesSkipped++
			continue
		}

		res.FilesProcessed++
		res.RowsIngested += len(rows)
		all = append(all, rows...)
	}

	merged := catalog.NewMerger(p.log).Merge(all)
	res.RowsExported = len(merged)
	res.Brands = countBrands(merged)

	if err := p.store.ReplaceCatalog(merged); err != nil {
		return nil, fmt.Errorf("не удалось сохранить каталог: %w", err)
	}

	if p.exportPath != "" {
		if err := export.WriteWorkbook(p.exportPath, merged); err != nil {
			return nil, fmt.Errorf("не удалось выгрузить каталог: %w", err)
		}
	}

	p.log.Info("прогон завершен",
		"файлов", res.FilesProcessed,
		"пропущено", res.FilesSkipped,
		"строк прочитано", res.RowsIngested,
		"строк в каталоге", res.RowsExported,
		"брендов", res.Brands,
	)
	return res, nil
}

func countBrands(rows []catalog.Listing) int {
	seen := make(map[string]struct{})
	for _, r := range rows {
		if r.Brand != brand.NotFound && r.Brand != "" {
			seen[r.Brand] = struct{}{}
		}
	}
	return len(seen)
}
