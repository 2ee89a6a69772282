package models

// Transaction is a single statement entry. Date stays in the DD.MM.YYYY form
// printed on the statement; Amount uses a dot as decimal separator.
type Transaction struct {
	Date        string  `csv:"date"`
	Description string  `csv:"description"`
	Amount      float64 `csv:"amount"`
}
