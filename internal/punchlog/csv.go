package punchlog

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"git.home.luguber.info/inful/punchclock/internal/errors"
)

// Column names of the persisted table. The header row is part of the format.
var columnNames = []string{string(StateIn), string(StateOut)}

// Decode parses the two-column punch table. An empty input yields an empty
// log; anything that does not match the In,Out schema is a parse error.
func Decode(r io.Reader) (*Log, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return NewLog(), nil
	}

	header := records[0]
	if len(header) != 2 || header[0] != columnNames[0] || header[1] != columnNames[1] {
		return nil, errors.New(errors.CategoryParse, errors.SeverityFatal, "unexpected header row").
			WithContext("header", header)
	}

	log := NewLog()
	data := records[1:]
	for i, record := range data {
		in, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryParse, errors.SeverityFatal, "bad In timestamp").
				WithContext("row", i+1)
		}
		row := Row{In: in}
		if record[1] != "" {
			out, err := strconv.ParseInt(record[1], 10, 64)
			if err != nil {
				return nil, errors.Wrap(err, errors.CategoryParse, errors.SeverityFatal, "bad Out timestamp").
					WithContext("row", i+1)
			}
			row.Out = &out
		} else if i != len(data)-1 {
			// Only the last row may be an open session.
			return nil, errors.New(errors.CategoryParse, errors.SeverityFatal, "open row before end of table").
				WithContext("row", i+1)
		}
		log.rows = append(log.rows, row)
	}
	return log, nil
}

// Encode writes the punch table with its header row. Timestamps are rendered
// as plain integers, never in decimal or scientific notation; an open row's
// Out field is left blank.
func Encode(w io.Writer, l *Log) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columnNames); err != nil {
		return err
	}
	for _, r := range l.rows {
		out := ""
		if r.Committed() {
			out = strconv.FormatInt(*r.Out, 10)
		}
		if err := cw.Write([]string{strconv.FormatInt(r.In, 10), out}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadFile reads the punch table at path. A missing or empty file is treated
// as an empty log; a file with the wrong schema is a fatal parse error.
func LoadFile(path string) (*Log, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewLog(), nil
	}
	if err != nil {
		return nil, errors.LogReadFailed(path, err)
	}
	defer f.Close()

	log, err := Decode(f)
	if err != nil {
		if errors.IsCategory(err, errors.CategoryParse) {
			return nil, err.(*errors.PunchClockError).WithContext("path", path)
		}
		return nil, errors.LogParseFailed(path, err)
	}
	return log, nil
}

// SaveFile writes the full punch table back to path, replacing its contents.
func SaveFile(path string, l *Log) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.LogWriteFailed(path, err)
	}
	if err := Encode(f, l); err != nil {
		_ = f.Close()
		return errors.LogWriteFailed(path, err)
	}
	if err := f.Close(); err != nil {
		return errors.LogWriteFailed(path, err)
	}
	return nil
}
