package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hmueller/advanzia2csv/pkg/models"
)

// The two patterns that drive extraction, compiled once and shared read-only.
var (
	dateRe   = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
	amountRe = regexp.MustCompile(`\d+,\d+`)
)

// The opening and closing balance lines bracket the transaction table on
// every page; outside that bracket is header/footer noise.
const (
	startMarker = "ALTER SALDO"
	endMarker   = "NEUER SALDO"
)

// Document is the page-text source the extractor consumes.
type Document interface {
	PageCount() int
	PageText(page int) (string, error)
}

type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// Extract collects the transactions of every page of doc, in page order.
// Pages whose text cannot be extracted are logged and skipped.
func (p *Parser) Extract(doc Document) []*models.Transaction {
	var transactions []*models.Transaction
	for page := 1; page <= doc.PageCount(); page++ {
		text, err := doc.PageText(page)
		if err != nil {
			p.logger.Error("failed to extract text from page", "page", page, "error", err)
			continue
		}
		transactions = append(transactions, p.PageTransactions(text)...)
	}
	return transactions
}

// PageTransactions parses every transaction found in one page's text.
func (p *Parser) PageTransactions(text string) []*models.Transaction {
	var transactions []*models.Transaction
	for _, fragment := range splitFragments(window(text)) {
		tx := p.parseFragment(fragment)
		if tx == nil {
			continue
		}
		p.logger.Debug("found transaction", "date", tx.Date, "description", tx.Description, "amount", tx.Amount)
		transactions = append(transactions, tx)
	}
	return transactions
}

// window narrows a page's text to the region between the opening and closing
// balance markers. A missing start marker means the window begins at the top
// of the page, a missing (or out of order) end marker means it runs to the
// end. Worst case the whole page is the window; window never fails.
func window(text string) string {
	start := 0
	if i := strings.Index(text, startMarker); i >= 0 {
		start = i
	}
	end := len(text)
	if i := strings.Index(text, endMarker); i >= start {
		end = i
	}
	return text[start:end]
}

// splitFragments cuts text into per-transaction fragments, one per date
// marker. Boundaries are the match start offsets, so each fragment begins
// with its own date line. Text before the first marker cannot be a
// transaction and is dropped.
func splitFragments(text string) []string {
	matches := dateRe.FindAllStringIndex(text, -1)
	fragments := make([]string, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		if m[0] < end {
			fragments = append(fragments, text[m[0]:end])
		}
	}
	return fragments
}

// parseFragment turns one date-anchored fragment into a transaction, or nil
// when the fragment does not hold a complete one. Rejections are local:
// callers keep going with the next fragment.
func (p *Parser) parseFragment(fragment string) *models.Transaction {
	fragment = strings.TrimSpace(fragment)

	date, rest, found := strings.Cut(fragment, "\n")
	if !found || !dateRe.MatchString(date) {
		p.logger.Debug("fragment has no date line, skipping", "fragment", fragment)
		return nil
	}

	// A fragment often carries more than one money-number (an exchange-rate
	// figure like "KURS 11,1111" comes first); the true amount is the last
	// one, everything before it belongs to the description.
	positions := amountRe.FindAllStringIndex(rest, -1)
	if positions == nil {
		p.logger.Debug("fragment has no amount, skipping", "fragment", fragment)
		return nil
	}
	cut := positions[len(positions)-1][0]
	description := strings.TrimSpace(rest[:cut])

	var amount float64
	if m := amountRe.FindString(rest[cut:]); m != "" {
		amount, _ = strconv.ParseFloat(strings.ReplaceAll(m, ",", "."), 64)
	}

	// A zero amount is indistinguishable from a failed parse and is
	// rejected like one.
	if description == "" || amount == 0 {
		p.logger.Debug("incomplete fragment, skipping", "fragment", fragment)
		return nil
	}

	return &models.Transaction{
		Date:        strings.TrimSpace(date),
		Description: strings.TrimSpace(strings.ReplaceAll(description, "\n", ", ")),
		Amount:      amount,
	}
}
