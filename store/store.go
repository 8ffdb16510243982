package store

import (
	"os"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/mkarimi/porsesh/model"
)

const sheet = "Sheet1"

const timeFormat = "2006-01-02 15:04:05"

// Column order is fixed; the header row is written once on first append.
var headers = []string{
	"نام و نام خانوادگی",
	"آیا شاغل هستید؟",
	"شغل",
	"از سن",
	"تا سن",
	"تاریخ پاسخ",
}

const (
	yesLabel = "بله"
	noLabel  = "خیر"
)

// Store persists survey responses to a single XLSX file.
//
// Append works read-modify-rewrite: the whole workbook is loaded, the new
// row is added and the file is rewritten. There is no lock around that
// cycle, so two concurrent writers can each read the same prior content and
// one appended row can be lost. Known hazard, callers must serialize writes
// if they need stronger guarantees.
type Store struct {
	Path string
}

func New(path string) *Store {
	return &Store{Path: path}
}

// Exists reports whether any responses file has been written yet.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Append adds one response row, creating the file with a header row when it
// does not exist yet.
func (s *Store) Append(resp model.Response) error {
	f, nextRow, err := s.open()
	if err != nil {
		return err
	}
	defer f.Close()

	if nextRow == 1 {
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return errors.Wrap(err, "store.append.header")
			}
		}
		nextRow = 2
	}

	employed := noLabel
	if resp.Employed {
		employed = yesLabel
	}
	row := []string{
		resp.Name,
		employed,
		resp.Job,
		resp.AgeFrom,
		resp.AgeTo,
		resp.Time.Format(timeFormat),
	}
	for i, v := range row {
		cell, _ := excelize.CoordinatesToCellName(i+1, nextRow)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return errors.Wrap(err, "store.append.row")
		}
	}

	if err := f.SaveAs(s.Path); err != nil {
		return errors.Wrap(err, "store.append.save")
	}
	return nil
}

// Count returns the number of stored responses, 0 when the file is absent.
func (s *Store) Count() (int, error) {
	if !s.Exists() {
		return 0, nil
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return 0, errors.Wrap(err, "store.count.open")
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, errors.Wrap(err, "store.count.rows")
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return len(rows) - 1, nil // minus the header row
}

// open loads the existing workbook, or starts a fresh one when the file is
// absent. The second result is the first free row; 1 means an empty sheet.
func (s *Store) open() (*excelize.File, int, error) {
	if !s.Exists() {
		return excelize.NewFile(), 1, nil
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, 0, errors.Wrap(err, "store.open")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, 0, errors.Wrap(err, "store.rows")
	}
	return f, len(rows) + 1, nil
}
