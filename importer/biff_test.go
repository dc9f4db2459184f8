package importer

import (
	"encoding/binary"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priceserver/sheet"
)

// Собранный руками минимальный .xls: контейнер OLE2 с единственным
// потоком Workbook и тем подмножеством записей BIFF8, которое понимает
// читатель. Вторая строка SST намеренно разорвана записью CONTINUE
// посередине символов.

func biffRec(opcode uint16, body []byte) []byte {
	rec := binary.LittleEndian.AppendUint16(nil, opcode)
	rec = binary.LittleEndian.AppendUint16(rec, uint16(len(body)))
	return append(rec, body...)
}

func biffBOF(substream uint16) []byte {
	body := make([]byte, 16)
	binary.LittleEndian.PutUint16(body, 0x0600)
	binary.LittleEndian.PutUint16(body[2:], substream)
	return biffRec(recBOF, body)
}

func biffCellHeader(row, col int) []byte {
	body := binary.LittleEndian.AppendUint16(nil, uint16(row))
	body = binary.LittleEndian.AppendUint16(body, uint16(col))
	return binary.LittleEndian.AppendUint16(body, 0) // ixfe
}

func buildWorkbookStream() []byte {
	var stream []byte
	stream = append(stream, biffBOF(bofWorkbookGlobals)...)
	stream = append(stream, biffRec(recCodepage, binary.LittleEndian.AppendUint16(nil, 1251))...)

	sst := binary.LittleEndian.AppendUint32(nil, 2) // cstTotal
	sst = binary.LittleEndian.AppendUint32(sst, 2)  // cstUnique
	sst = append(sst, binary.LittleEndian.AppendUint16(nil, 6)...)
	sst = append(sst, 0x00)
	sst = append(sst, []byte("CHANEL")...)
	sst = append(sst, binary.LittleEndian.AppendUint16(nil, 5)...)
	sst = append(sst, 0x00, 0xEF, 0xF0) // "пр" в cp1251
	stream = append(stream, biffRec(recSST, sst)...)
	// хвост разорванной строки: новый байт флагов, затем "айс"
	stream = append(stream, biffRec(recContinue, []byte{0x00, 0xE0, 0xE9, 0xF1})...)
	stream = append(stream, biffRec(recEOF, nil)...)

	stream = append(stream, biffBOF(bofWorksheet)...)

	cell := append(biffCellHeader(0, 0), binary.LittleEndian.AppendUint32(nil, 0)...)
	stream = append(stream, biffRec(recLabelSST, cell)...)
	cell = append(biffCellHeader(0, 1), binary.LittleEndian.AppendUint32(nil, 1)...)
	stream = append(stream, biffRec(recLabelSST, cell)...)

	label := append(biffCellHeader(1, 0), binary.LittleEndian.AppendUint16(nil, 9)...)
	label = append(label, 0x00)
	label = append(label, []byte("edp 100ml")...)
	stream = append(stream, biffRec(recLabel, label)...)

	number := append(biffCellHeader(1, 1),
		binary.LittleEndian.AppendUint64(nil, math.Float64bits(95.5))...)
	stream = append(stream, biffRec(recNumber, number)...)

	rk := append(biffCellHeader(2, 1), binary.LittleEndian.AppendUint32(nil, 123<<2|0x02)...)
	stream = append(stream, biffRec(recRK, rk)...)

	stream = append(stream, biffRec(recEOF, nil)...)
	return stream
}

const (
	cfbSectorSize  = 512
	cfbEndOfChain  = 0xFFFFFFFE
	cfbFreeSector  = 0xFFFFFFFF
	cfbFatSector   = 0xFFFFFFFD
	cfbMiniCutoff  = 4096
	cfbNoReference = 0xFFFFFFFF
)

// buildCompoundFile оборачивает поток Workbook в контейнер OLE2:
// заголовок, один сектор FAT, один сектор каталога, затем сектора потока.
// Поток дополняется нулями до порога мини-потока, чтобы лежать в обычных
// секторах.
func buildCompoundFile(stream []byte) []byte {
	size := len(stream)
	if size < cfbMiniCutoff {
		size = cfbMiniCutoff
	}
	if rem := size % cfbSectorSize; rem != 0 {
		size += cfbSectorSize - rem
	}
	padded := make([]byte, size)
	copy(padded, stream)
	sectors := size / cfbSectorSize

	header := make([]byte, cfbSectorSize)
	copy(header, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	binary.LittleEndian.PutUint16(header[24:], 0x003E)       // минорная версия
	binary.LittleEndian.PutUint16(header[26:], 0x0003)       // версия 3
	binary.LittleEndian.PutUint16(header[28:], 0xFFFE)       // little endian
	binary.LittleEndian.PutUint16(header[30:], 9)            // сектор 512
	binary.LittleEndian.PutUint16(header[32:], 6)            // мини-сектор 64
	binary.LittleEndian.PutUint32(header[44:], 1)            // секторов FAT
	binary.LittleEndian.PutUint32(header[48:], 1)            // каталог в секторе 1
	binary.LittleEndian.PutUint32(header[56:], cfbMiniCutoff)
	binary.LittleEndian.PutUint32(header[60:], cfbEndOfChain) // мини-FAT нет
	binary.LittleEndian.PutUint32(header[68:], cfbEndOfChain) // DIFAT нет
	for i := 76; i < cfbSectorSize; i += 4 {
		binary.LittleEndian.PutUint32(header[i:], cfbFreeSector)
	}
	binary.LittleEndian.PutUint32(header[76:], 0) // FAT в секторе 0

	fat := make([]byte, cfbSectorSize)
	for i := 0; i < cfbSectorSize; i += 4 {
		binary.LittleEndian.PutUint32(fat[i:], cfbFreeSector)
	}
	binary.LittleEndian.PutUint32(fat, cfbFatSector)
	binary.LittleEndian.PutUint32(fat[4:], cfbEndOfChain) // каталог из одного сектора
	for i := 0; i < sectors; i++ {
		next := uint32(3 + i)
		if i == sectors-1 {
			next = cfbEndOfChain
		}
		binary.LittleEndian.PutUint32(fat[(2+i)*4:], next)
	}

	dir := make([]byte, cfbSectorSize)
	writeDirEntry(dir, "Root Entry", 5, 1, cfbEndOfChain, 0)
	writeDirEntry(dir[128:], "Workbook", 2, cfbNoReference, 2, uint64(size))

	out := header
	out = append(out, fat...)
	out = append(out, dir...)
	return append(out, padded...)
}

func writeDirEntry(b []byte, name string, objType byte, child, startSector uint32, size uint64) {
	for i, r := range name {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(r))
	}
	binary.LittleEndian.PutUint16(b[64:], uint16(len(name)*2+2))
	b[66] = objType
	b[67] = 1 // черный узел дерева
	binary.LittleEndian.PutUint32(b[68:], cfbNoReference)
	binary.LittleEndian.PutUint32(b[72:], cfbNoReference)
	binary.LittleEndian.PutUint32(b[76:], child)
	binary.LittleEndian.PutUint32(b[116:], startSector)
	binary.LittleEndian.PutUint64(b[120:], size)
}

// Полный путь конвертации: собранный .xls перегоняется в .xlsx, исходник
// убирается, таблица читается обратно с теми же значениями.
func TestConvertLegacyFilesConvertsXLS(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "old.xls")
	require.NoError(t, os.WriteFile(path, buildCompoundFile(buildWorkbookStream()), 0o644))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, ConvertLegacyFiles(dir, log))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	grid, err := LoadGrid(filepath.Join(dir, "old.xlsx"))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(grid), 3)

	assert.Equal(t, "CHANEL", grid[0][0].Text)
	// строка, разорванная через CONTINUE, декодирована из cp1251 целиком
	assert.Equal(t, "прайс", grid[0][1].Text)
	assert.Equal(t, "edp 100ml", grid[1][0].Text)

	require.Equal(t, sheet.CellNumber, grid[1][1].Kind)
	assert.Equal(t, 95.5, grid[1][1].Number)
	require.Equal(t, sheet.CellNumber, grid[2][1].Kind)
	assert.Equal(t, 123.0, grid[2][1].Number)
}

// Читатель BIFF отдает ячейки напрямую, без конвертации.
func TestReadXLS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "прайс.xls")
	require.NoError(t, os.WriteFile(path, buildCompoundFile(buildWorkbookStream()), 0o644))

	cells, err := readXLS(path)
	require.NoError(t, err)
	require.Len(t, cells, 5)

	assert.Equal(t, xlsCell{Row: 0, Col: 0, Text: "CHANEL"}, cells[0])
	assert.Equal(t, xlsCell{Row: 0, Col: 1, Text: "прайс"}, cells[1])
	assert.Equal(t, xlsCell{Row: 1, Col: 0, Text: "edp 100ml"}, cells[2])
	assert.Equal(t, xlsCell{Row: 1, Col: 1, Number: 95.5, IsNumber: true}, cells[3])
	assert.Equal(t, xlsCell{Row: 2, Col: 1, Number: 123, IsNumber: true}, cells[4])
}
