package randarray

import (
	"fmt"
	"io"
)

// WriteReport renders a report to w as two lines: the elements line, with
// each value followed by a single space, then the sum line.
func WriteReport(w io.Writer, report Report) error {
	if _, err := io.WriteString(w, "The random array elements are: "); err != nil {
		return fmt.Errorf("write elements label: %w", err)
	}
	for _, value := range report.Elements {
		if _, err := fmt.Fprintf(w, "%d ", value); err != nil {
			return fmt.Errorf("write element: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "\nThe sum of the array elements is: %d\n", report.Sum); err != nil {
		return fmt.Errorf("write sum: %w", err)
	}
	return nil
}
