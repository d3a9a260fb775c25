package sculptr

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Header is the first row of a SculptrVR Data.csv file.
var Header = []string{"X", "Y", "Z", "level", "R", "G", "B", "mat"}

// A CSVWriter writes records as Data.csv rows.
type CSVWriter struct {
	w   *csv.Writer
	row []string
}

// NewCSVWriter creates a writer. Call WriteHeader before
// writing any records.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{
		w:   csv.NewWriter(w),
		row: make([]string, len(Header)),
	}
}

// WriteHeader writes the column names.
func (c *CSVWriter) WriteHeader() error {
	return errors.Wrap(c.w.Write(Header), "write CSV header")
}

// Write writes a single record.
func (c *CSVWriter) Write(r Record) error {
	c.row[0] = strconv.Itoa(r.X)
	c.row[1] = strconv.Itoa(r.Y)
	c.row[2] = strconv.Itoa(r.Z)
	c.row[3] = strconv.Itoa(r.Level)
	c.row[4] = strconv.Itoa(int(r.Color.R))
	c.row[5] = strconv.Itoa(int(r.Color.G))
	c.row[6] = strconv.Itoa(int(r.Color.B))
	c.row[7] = strconv.Itoa(int(r.Color.Material))
	return errors.Wrap(c.w.Write(c.row), "write CSV row")
}

// Flush writes buffered rows to the underlying writer.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return errors.Wrap(c.w.Error(), "flush CSV")
}

// WriteCSV writes a header followed by every record.
func WriteCSV(w io.Writer, records []Record) error {
	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r); err != nil {
			return err
		}
	}
	return cw.Flush()
}

// ReadCSV decodes a Data.csv file.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read CSV header")
	}
	for i, name := range Header {
		if header[i] != name {
			return nil, errors.Errorf("read CSV header: column %d is %q, expected %q",
				i, header[i], name)
		}
	}

	var res []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return res, nil
		} else if err != nil {
			return nil, errors.Wrap(err, "read CSV")
		}
		var values [8]int
		for i, field := range row {
			values[i], err = strconv.Atoi(field)
			if err != nil {
				return nil, errors.Wrapf(err, "read CSV row %d", len(res)+1)
			}
		}
		for i := 4; i < 8; i++ {
			if values[i] < 0 || values[i] > 255 {
				return nil, errors.Errorf("read CSV row %d: %s out of range: %d",
					len(res)+1, Header[i], values[i])
			}
		}
		res = append(res, Record{
			X:     values[0],
			Y:     values[1],
			Z:     values[2],
			Level: values[3],
			Color: Color{
				R:        uint8(values[4]),
				G:        uint8(values[5]),
				B:        uint8(values[6]),
				Material: uint8(values[7]),
			},
		})
	}
}
