package csv

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/hmueller/advanzia2csv/pkg/models"
)

// FilterFunc decides whether a transaction makes it into the output.
type FilterFunc func(*models.Transaction) bool

// Write serializes transactions as CSV with a date,description,amount header.
// A nil filter keeps everything.
func Write(w io.Writer, transactions []*models.Transaction, filter FilterFunc) error {
	kept := make([]*models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if filter == nil || filter(tx) {
			kept = append(kept, tx)
		}
	}
	if err := gocsv.Marshal(&kept, w); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// WriteFile writes transactions to the CSV file at path, creating or
// truncating it.
func WriteFile(path string, transactions []*models.Transaction, filter FilterFunc) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer file.Close()

	return Write(file, transactions, filter)
}
