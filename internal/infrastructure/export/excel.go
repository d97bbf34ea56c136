package export

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	recordv1 "github.com/muhammadchandra19/wb-report/internal/domain/record/v1"
	"github.com/muhammadchandra19/wb-report/pkg/errors"
)

// SheetName is the single sheet every workbook is written to.
const SheetName = "Report"

type excelOptions struct {
	columns []string
}

// ExcelOption customizes SaveExcel.
type ExcelOption func(*excelOptions)

// WithColumns sets the leading header columns. Fields observed in the records
// but not listed follow in first-seen order. With no records the header is
// exactly these columns.
func WithColumns(columns ...string) ExcelOption {
	return func(o *excelOptions) {
		o.columns = columns
	}
}

// SaveExcel writes records to an .xlsx workbook with one header row and one
// row per record. Numbers become numeric cells, booleans boolean cells and
// strings stay text, so dates keep the representation the API used.
func SaveExcel(records recordv1.Records, filename string, opts ...ExcelOption) error {
	o := &excelOptions{}
	for _, opt := range opts {
		opt(o)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return errors.Wrap(err, errors.FileWriteError, "failed to name sheet")
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return errors.Wrap(err, errors.FileWriteError, "failed to open sheet writer")
	}

	columns := records.Columns(o.columns...)
	if len(columns) > 0 {
		// panes must be set before the first row is streamed
		if err := sw.SetPanes(&excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
			return errors.Wrap(err, errors.FileWriteError, "failed to freeze header")
		}
		header := make([]any, len(columns))
		for i, c := range columns {
			header[i] = c
		}
		if err := sw.SetRow("A1", header); err != nil {
			return errors.Wrap(err, errors.FileWriteError, "failed to write header")
		}
	}

	row := make([]any, len(columns))
	for i, rec := range records {
		for j, col := range columns {
			raw, _ := rec.Get(col)
			v := cellValue(raw)
			if text, ok := v.(string); ok && utf8.RuneCountInString(text) > excelize.TotalCellChars {
				return errors.Newf(errors.FileWriteError,
					"field %q of record %d has %d characters, a cell holds at most %d",
					col, i, utf8.RuneCountInString(text), excelize.TotalCellChars)
			}
			row[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, errors.FileWriteError, "failed to address row")
		}
		if err := sw.SetRow(cell, row); err != nil {
			return errors.Wrap(err, errors.FileWriteError, "failed to write row")
		}
	}

	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, errors.FileWriteError, "failed to flush sheet")
	}

	return writeAtomic(filename, func(out *os.File) error {
		_, err := f.WriteTo(out)
		return err
	})
}

// cellValue maps a raw JSON value onto the excelize value with the same type.
func cellValue(raw json.RawMessage) any {
	switch recordv1.KindOf(raw) {
	case recordv1.KindNull:
		return nil
	case recordv1.KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	case recordv1.KindBool:
		b, _ := strconv.ParseBool(string(raw))
		return b
	case recordv1.KindNumber:
		n := json.Number(raw)
		// a cell holds a double, longer literals would be rounded
		if significantDigits(n.String()) > maxCellDigits {
			return n.String()
		}
		if i, err := n.Int64(); err == nil {
			return i
		}
		if fl, err := n.Float64(); err == nil {
			return fl
		}
		return string(raw)
	default:
		// nested objects and arrays are kept as their JSON text
		return string(raw)
	}
}

// maxCellDigits is the precision of a numeric spreadsheet cell.
const maxCellDigits = 15

// significantDigits counts the significant digits of a JSON number literal.
func significantDigits(lit string) int {
	if i := strings.IndexAny(lit, "eE"); i >= 0 {
		lit = lit[:i]
	}
	lit = strings.TrimLeft(lit, "-")
	lit = strings.Replace(lit, ".", "", 1)
	lit = strings.TrimLeft(lit, "0")
	lit = strings.TrimRight(lit, "0")
	return len(lit)
}
