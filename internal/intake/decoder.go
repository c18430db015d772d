// Package intake decodes uploaded CSV and XLSX files into raw rows for the
// import engine. Header text is preserved verbatim: the engine's header
// matcher owns all normalization.
package intake

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxUploadBytes caps intake files at 50MB. Larger files are rejected
// before any row is produced.
const MaxUploadBytes = 50 << 20

// Error is a fatal intake failure; it aborts the pipeline entirely.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Decoded is the raw result of decoding one file: the header row verbatim,
// and one map per data row keyed by header text, with a "_row" entry
// carrying the 1-based source row number for error reporting.
type Decoded struct {
	Headers []string
	Rows    []map[string]string
}

// DecodeCSV reads a CSV stream (header row plus data rows).
func DecodeCSV(r io.Reader) (*Decoded, error) {
	reader := csv.NewReader(io.LimitReader(r, MaxUploadBytes+1))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, newError("EMPTY_FILE", "the file contains no rows")
	}
	if err != nil {
		return nil, newError("PARSE_ERROR", "failed to read CSV header: %v", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var rows []map[string]string
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, newError("PARSE_ERROR", "error reading line %d: %v", lineNum+1, err)
		}
		rows = append(rows, buildRow(headers, record, lineNum+1))
		lineNum++
	}

	if len(rows) == 0 {
		return nil, newError("EMPTY_FILE", "the file contains no data rows")
	}
	return &Decoded{Headers: headers, Rows: rows}, nil
}

// DecodeXLSX reads the first sheet of an Excel file (header row plus data
// rows).
func DecodeXLSX(r io.Reader) (*Decoded, error) {
	f, err := excelize.OpenReader(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, newError("PARSE_ERROR", "failed to open Excel file: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, newError("NO_SHEETS", "no sheets found in Excel file")
	}

	excelRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, newError("PARSE_ERROR", "failed to read sheet: %v", err)
	}
	if len(excelRows) < 2 {
		return nil, newError("EMPTY_FILE", "file must have a header row and at least one data row")
	}

	headers := excelRows[0]
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	rows := make([]map[string]string, 0, len(excelRows)-1)
	for idx, excelRow := range excelRows[1:] {
		rows = append(rows, buildRow(headers, excelRow, idx+2))
	}
	return &Decoded{Headers: headers, Rows: rows}, nil
}

// Decode picks the decoder by filename extension after checking the size
// cap.
func Decode(r io.Reader, filename string, size int64) (*Decoded, error) {
	if size > MaxUploadBytes {
		return nil, newError("FILE_TOO_LARGE", "file exceeds the %dMB limit", MaxUploadBytes>>20)
	}
	switch {
	case strings.HasSuffix(strings.ToLower(filename), ".csv"):
		return DecodeCSV(r)
	case strings.HasSuffix(strings.ToLower(filename), ".xlsx"):
		return DecodeXLSX(r)
	}
	return nil, newError("INVALID_FORMAT", "only CSV and XLSX files are supported")
}

func buildRow(headers, record []string, rowNum int) map[string]string {
	row := make(map[string]string, len(headers)+1)
	for i, value := range record {
		if i < len(headers) && headers[i] != "" {
			row[headers[i]] = strings.TrimSpace(value)
		}
	}
	row["_row"] = strconv.Itoa(rowNum)
	return row
}
