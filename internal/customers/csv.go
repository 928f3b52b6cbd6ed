package customers

import (
	"fmt"
	"io"
	"strings"
)

// csvColumns is the fixed export column order.
var csvColumns = []string{
	"firstname", "lastname", "email", "phone", "streetaddress", "postcode", "city",
}

// ExportCSV writes the full customer collection as CSV: header row first, one
// row per customer. Every field is double-quoted, with embedded double quotes
// doubled; no other escaping is applied.
func ExportCSV(w io.Writer, list []Customer) error {
	if err := writeRow(w, csvColumns); err != nil {
		return err
	}

	for _, c := range list {
		row := []string{c.Firstname, c.Lastname, c.Email, c.Phone, c.Streetaddress, c.Postcode, c.City}
		if err := writeRow(w, row); err != nil {
			return err
		}
	}

	return nil
}

func writeRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	if _, err := fmt.Fprintf(w, "%s\n", strings.Join(quoted, ",")); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}
