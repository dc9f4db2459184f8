package importer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"unicode/utf16"

	"github.com/richardlehane/mscfb"
	"golang.org/x/text/encoding/charmap"
)

// Минимальный читатель формата BIFF8 (.xls): ровно то подмножество
// записей, которое нужно, чтобы вытащить текст и числа первого листа
// старого прайса. Все незнакомое пропускается.

// Коды записей BIFF.
const (
	recBOF        = 0x0809
	recEOF        = 0x000A
	recCodepage   = 0x0042
	recBoundSheet = 0x0085
	recSST        = 0x00FC
	recContinue   = 0x003C
	recLabelSST   = 0x00FD
	recLabel      = 0x0204
	recNumber     = 0x0203
	recRK         = 0x027E
	recMulRK      = 0x00BD
)

// Подтипы BOF.
const (
	bofWorkbookGlobals = 0x0005
	bofWorksheet       = 0x0010
)

var errNotBIFF = errors.New("не похоже на файл BIFF8")

// xlsCell одна ячейка старого файла.
type xlsCell struct {
	Row, Col int
	Text     string
	Number   float64
	IsNumber bool
}

// readXLS читает первый лист .xls файла.
func readXLS(path string) ([]xlsCell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNotBIFF, err)
	}

	var stream []byte
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name == "Workbook" || entry.Name == "Book" {
			buf := make([]byte, entry.Size)
			n, _ := io.ReadFull(doc, buf)
			stream = buf[:n]
			break
		}
	}
	if stream == nil {
		return nil, errNotBIFF
	}
	return parseWorkbookStream(stream)
}

// biffParser состояние разбора потока Workbook.
type biffParser struct {
	data []byte
	pos  int

	decoder    *charmap.Charmap // кодовая страница байтовых строк
	sst        []string
	firstSheet int // позиция подпотока первого листа, -1 если не встречена
}

func parseWorkbookStream(data []byte) ([]xlsCell, error) {
	p := &biffParser{
		data: data,
		// русские прайсы старых версий почти всегда в cp1251
		decoder:    charmap.Windows1251,
		firstSheet: -1,
	}
	if err := p.parseGlobals(); err != nil {
		return nil, err
	}

	start := p.firstSheet
	if start < 0 {
		// BOUNDSHEET не встретился, лист идет сразу за глобальным
		// подпотоком
		start = p.pos
	}
	return p.parseSheet(start)
}

func (p *biffParser) next() (opcode int, body []byte, ok bool) {
	if p.pos+4 > len(p.data) {
		return 0, nil, false
	}
	opcode = int(binary.LittleEndian.Uint16(p.data[p.pos:]))
	length := int(binary.LittleEndian.Uint16(p.data[p.pos+2:]))
	p.pos += 4
	if p.pos+length > len(p.data) {
		return 0, nil, false
	}
	body = p.data[p.pos : p.pos+length]
	p.pos += length
	return opcode, body, true
}

// parseGlobals проходит глобальный подпоток: кодовая страница, таблица
// общих строк, позиции листов.
func (p *biffParser) parseGlobals() error {
	opcode, body, ok := p.next()
	if !ok || opcode != recBOF || len(body) < 4 {
		return errNotBIFF
	}
	if binary.LittleEndian.Uint16(body[2:]) != bofWorkbookGlobals {
		// файл без глобального подпотока: начинаем разбор с нуля
		p.pos = 0
		return nil
	}

	for {
		opcode, body, ok := p.next()
		if !ok {
			return nil
		}
		switch opcode {
		case recEOF:
			return nil
		case recCodepage:
			if len(body) >= 2 {
				p.setCodepage(binary.LittleEndian.Uint16(body))
			}
		case recBoundSheet:
			if p.firstSheet < 0 && len(body) >= 4 {
				p.firstSheet = int(binary.LittleEndian.Uint32(body))
			}
		case recSST:
			p.parseSST(body)
		}
	}
}

func (p *biffParser) setCodepage(cp uint16) {
	switch cp {
	case 1251:
		p.decoder = charmap.Windows1251
	case 1252:
		p.decoder = charmap.Windows1252
	case 28591:
		p.decoder = charmap.ISO8859_1
	}
}

// parseSST разбирает таблицу общих строк вместе с CONTINUE-записями.
func (p *biffParser) parseSST(body []byte) {
	chunks := [][]byte{body}
	for {
		save := p.pos
		opcode, cont, ok := p.next()
		if !ok || opcode != recContinue {
			p.pos = save
			break
		}
		chunks = append(chunks, cont)
	}

	r := &sstReader{chunks: chunks}
	if !r.skip(4) {
		return
	}
	total := r.readUint32() // cstUnique идет вторым
	for i := uint32(0); i < total; i++ {
		s, ok := r.readString(p.decoder)
		if !ok {
			return
		}
		p.sst = append(p.sst, s)
	}
}

// parseSheet собирает ячейки подпотока листа, начиная с offset.
func (p *biffParser) parseSheet(offset int) ([]xlsCell, error) {
	p.pos = offset
	opcode, body, ok := p.next()
	if !ok || opcode != recBOF {
		return nil, errNotBIFF
	}
	if len(body) >= 4 && binary.LittleEndian.Uint16(body[2:]) != bofWorksheet {
		return nil, errNotBIFF
	}

	var cells []xlsCell
	for {
		opcode, body, ok := p.next()
		if !ok {
			return cells, nil
		}
		switch opcode {
		case recEOF:
			return cells, nil
		case recLabelSST:
			if len(body) >= 10 {
				idx := int(binary.LittleEndian.Uint32(body[6:]))
				if idx < len(p.sst) {
					cells = append(cells, xlsCell{
						Row:  int(binary.LittleEndian.Uint16(body)),
						Col:  int(binary.LittleEndian.Uint16(body[2:])),
						Text: p.sst[idx],
					})
				}
			}
		case recLabel:
			if len(body) >= 8 {
				r := &sstReader{chunks: [][]byte{body[6:]}}
				if s, ok := r.readString(p.decoder); ok {
					cells = append(cells, xlsCell{
						Row:  int(binary.LittleEndian.Uint16(body)),
						Col:  int(binary.LittleEndian.Uint16(body[2:])),
						Text: s,
					})
				}
			}
		case recNumber:
			if len(body) >= 14 {
				cells = append(cells, xlsCell{
					Row:      int(binary.LittleEndian.Uint16(body)),
					Col:      int(binary.LittleEndian.Uint16(body[2:])),
					Number:   math.Float64frombits(binary.LittleEndian.Uint64(body[6:])),
					IsNumber: true,
				})
			}
		case recRK:
			if len(body) >= 10 {
				cells = append(cells, xlsCell{
					Row:      int(binary.LittleEndian.Uint16(body)),
					Col:      int(binary.LittleEndian.Uint16(body[2:])),
					Number:   rkValue(binary.LittleEndian.Uint32(body[6:])),
					IsNumber: true,
				})
			}
		case recMulRK:
			cells = append(cells, parseMulRK(body)...)
		}
	}
}

// parseMulRK серия RK-чисел в одной строке.
func parseMulRK(body []byte) []xlsCell {
	if len(body) < 12 {
		return nil
	}
	row := int(binary.LittleEndian.Uint16(body))
	colFirst := int(binary.LittleEndian.Uint16(body[2:]))

	var cells []xlsCell
	data := body[4 : len(body)-2] // без colLast в хвосте
	for i := 0; i+6 <= len(data); i += 6 {
		cells = append(cells, xlsCell{
			Row:      row,
			Col:      colFirst + i/6,
			Number:   rkValue(binary.LittleEndian.Uint32(data[i+2:])),
			IsNumber: true,
		})
	}
	return cells
}

// rkValue декодирует упакованное число RK: два младших бита — флаги
// "поделить на 100" и "целое", остальное — либо целое, либо старшие биты
// double.
func rkValue(rk uint32) float64 {
	var v float64
	if rk&0x02 != 0 {
		v = float64(int32(rk) >> 2)
	} else {
		v = math.Float64frombits(uint64(rk&0xFFFFFFFC) << 32)
	}
	if rk&0x01 != 0 {
		v /= 100
	}
	return v
}

// sstReader читает строки BIFF8 из цепочки кусков (SST + CONTINUE).
// На границе кусков строка продолжается с новым байтом флагов.
type sstReader struct {
	chunks [][]byte
	cur    int
	pos    int
}

func (r *sstReader) remaining() int {
	n := 0
	for i := r.cur; i < len(r.chunks); i++ {
		if i == r.cur {
			n += len(r.chunks[i]) - r.pos
		} else {
			n += len(r.chunks[i])
		}
	}
	return n
}

// advance переходит к следующему куску, когда текущий исчерпан.
// Возвращает false на конце данных.
func (r *sstReader) advance() bool {
	for r.pos >= len(r.chunks[r.cur]) {
		if r.cur+1 >= len(r.chunks) {
			return false
		}
		r.cur++
		r.pos = 0
	}
	return true
}

func (r *sstReader) readByte() (byte, bool) {
	if !r.advance() {
		return 0, false
	}
	b := r.chunks[r.cur][r.pos]
	r.pos++
	return b, true
}

func (r *sstReader) skip(n int) bool {
	for i := 0; i < n; i++ {
		if _, ok := r.readByte(); !ok {
			return false
		}
	}
	return true
}

func (r *sstReader) readUint16() uint16 {
	lo, _ := r.readByte()
	hi, _ := r.readByte()
	return uint16(lo) | uint16(hi)<<8
}

func (r *sstReader) readUint32() uint32 {
	lo := uint32(r.readUint16())
	hi := uint32(r.readUint16())
	return lo | hi<<16
}

// readString разбирает XLUnicodeRichExtendedString: длина, флаги,
// опциональные rich/ext блоки, символы в однобайтовой кодировке или
// UTF-16LE. Граница CONTINUE внутри символов несет новый байт флагов.
func (r *sstReader) readString(cm *charmap.Charmap) (string, bool) {
	if r.remaining() < 3 {
		return "", false
	}
	cch := int(r.readUint16())
	flags, ok := r.readByte()
	if !ok {
		return "", false
	}

	var runs, ext int
	if flags&0x08 != 0 { // fRichSt
		runs = int(r.readUint16())
	}
	if flags&0x04 != 0 { // fExtSt
		ext = int(r.readUint32())
	}

	out := make([]rune, 0, cch)
	high := flags&0x01 != 0
	for len(out) < cch {
		if !r.advance() {
			return "", false
		}
		if r.pos == 0 && r.cur > 0 {
			// новый кусок начинается с нового байта флагов
			f, ok := r.readByte()
			if !ok {
				return "", false
			}
			high = f&0x01 != 0
		}
		if high {
			u := r.readUint16()
			out = append(out, utf16.Decode([]uint16{u})...)
		} else {
			b, ok := r.readByte()
			if !ok {
				return "", false
			}
			out = append(out, decodeByte(cm, b))
		}
	}

	if !r.skip(runs*4 + ext) {
		return string(out), true
	}
	return string(out), true
}

// decodeByte переводит байт кодовой страницы в руну.
func decodeByte(cm *charmap.Charmap, b byte) rune {
	return cm.DecodeByte(b)
}
