package importer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ConvertLegacyFiles готовит каталог прайсов к разбору: имена файлов
// приводятся к нижнему регистру, старые .xls перегоняются в .xlsx. Файлы,
// у которых свежая версия уже есть, не трогаются; нечитаемый .xls — это
// пропуск с предупреждением, а не ошибка прогона.
func ConvertLegacyFiles(dir string, log *slog.Logger) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("не удалось прочитать каталог %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()

		lower := strings.ToLower(name)
		if lower != name {
			if err := os.Rename(filepath.Join(dir, name), filepath.Join(dir, lower)); err != nil {
				return fmt.Errorf("не удалось переименовать %s: %w", name, err)
			}
			name = lower
		}

		if filepath.Ext(name) != ".xls" {
			continue
		}
		if err := convertXLS(dir, name, log); err != nil {
			log.Warn("старый файл не сконвертирован, пропуск",
				"файл", name, "ошибка", err)
		}
	}
	return nil
}

func convertXLS(dir, name string, log *slog.Logger) error {
	src := filepath.Join(dir, name)
	dst := strings.TrimSuffix(src, ".xls") + ".xlsx"

	if _, err := os.Stat(dst); err == nil {
		// свежая версия уже есть
		return nil
	}

	cells, err := readXLS(src)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheetName := f.GetSheetName(0)

	for _, c := range cells {
		axis, err := excelize.CoordinatesToCellName(c.Col+1, c.Row+1)
		if err != nil {
			continue
		}
		if c.IsNumber {
			_ = f.SetCellValue(sheetName, axis, c.Number)
		} else {
			_ = f.SetCellValue(sheetName, axis, c.Text)
		}
	}

	if err := f.SaveAs(dst); err != nil {
		return fmt.Errorf("не удалось сохранить %s: %w", dst, err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("не удалось убрать исходник %s: %w", src, err)
	}
	log.Info("старый прайс сконвертирован", "из", name, "ячеек", len(cells))
	return nil
}
