package csv

import (
	"bytes"
	"testing"

	"github.com/hmueller/advanzia2csv/pkg/models"
)

func TestWrite(t *testing.T) {
	transactions := []*models.Transaction{
		{Date: "26.01.2021", Description: "IKEA BORLANGE, BORLANGE", Amount: 18.30},
		{Date: "27.02.2022", Description: "FABRIQUE", Amount: -19.23},
	}

	var buf bytes.Buffer
	if err := Write(&buf, transactions, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	expected := "date,description,amount\n" +
		"26.01.2021,\"IKEA BORLANGE, BORLANGE\",18.3\n" +
		"27.02.2022,FABRIQUE,-19.23\n"
	if buf.String() != expected {
		t.Errorf("Expected output:\n%s\nGot:\n%s", expected, buf.String())
	}
}

func TestWriteFilter(t *testing.T) {
	transactions := []*models.Transaction{
		{Date: "26.01.2021", Description: "IKEA", Amount: 18.30},
		{Date: "27.02.2022", Description: "FABRIQUE", Amount: 19.23},
	}
	filter := func(tx *models.Transaction) bool {
		return tx.Description == "IKEA"
	}

	var buf bytes.Buffer
	if err := Write(&buf, transactions, filter); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	expected := "date,description,amount\n26.01.2021,IKEA,18.3\n"
	if buf.String() != expected {
		t.Errorf("Expected output:\n%s\nGot:\n%s", expected, buf.String())
	}
}
