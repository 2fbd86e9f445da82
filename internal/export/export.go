// Package export renders entity listings into xlsx workbooks for the
// dashboard's download buttons.
package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Lands-Horizon-Corp/irm-mininstries-sub003/internal/model"
)

// ContentType is the xlsx MIME type handlers set on export responses.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Filename derives the attachment name from the export date.
func Filename(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, at.Format("2006-01-02"))
}

var memberHeaders = []string{
	"ID", "Church", "First Name", "Middle Name", "Last Name", "Gender",
	"Birthdate", "Email", "Contact Number", "Address", "Occupation",
}

var ministerHeaders = []string{
	"ID", "Church", "First Name", "Middle Name", "Last Name", "Suffix",
	"Gender", "Birthdate", "Email", "Contact Number", "Address",
}

// Members builds a workbook with one row per member. The rows are whatever
// a single List call returned; concurrent edits may not be reflected.
func Members(members []model.Member, churchNames map[uint]string) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Members"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := writeRow(f, sheet, 1, toCells(memberHeaders)); err != nil {
		return nil, err
	}

	for i, m := range members {
		row := []interface{}{
			m.ID,
			churchNames[m.ChurchID],
			m.FirstName,
			deref(m.MiddleName),
			m.LastName,
			m.Gender,
			formatDate(m.Birthdate),
			deref(m.Email),
			deref(m.ContactNumber),
			deref(m.Address),
			deref(m.Occupation),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Ministers builds a workbook with one row per minister.
func Ministers(ministers []model.Minister, churchNames map[uint]string) (*excelize.File, error) {
	f := excelize.NewFile()
	const sheet = "Ministers"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if err := writeRow(f, sheet, 1, toCells(ministerHeaders)); err != nil {
		return nil, err
	}

	for i, m := range ministers {
		row := []interface{}{
			m.ID,
			churchNames[m.ChurchID],
			m.FirstName,
			deref(m.MiddleName),
			m.LastName,
			deref(m.Suffix),
			m.Gender,
			formatDate(m.Birthdate),
			deref(m.Email),
			deref(m.ContactNumber),
			deref(m.Address),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func toCells(headers []string) []interface{} {
	out := make([]interface{}, len(headers))
	for i, h := range headers {
		out[i] = h
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
