package service

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hmueller/advanzia2csv/pkg/config"
	"github.com/hmueller/advanzia2csv/pkg/csv"
	"github.com/hmueller/advanzia2csv/pkg/models"
	"github.com/hmueller/advanzia2csv/pkg/parser"
	"github.com/hmueller/advanzia2csv/pkg/pdf"
)

// Processor runs the statement-to-CSV conversion over one file or a
// directory tree of statements.
type Processor struct {
	config *config.Config
	logger *log.Logger
	parser *parser.Parser
	filter csv.FilterFunc
	load   func(path string) (parser.Document, error)
}

func NewProcessor(config *config.Config, logger *log.Logger, filter csv.FilterFunc) *Processor {
	return &Processor{
		config: config,
		logger: logger,
		parser: parser.New(logger),
		filter: filter,
		load:   loadDocument,
	}
}

func loadDocument(path string) (parser.Document, error) {
	return pdf.Load(path)
}

// Convert extracts every transaction under inputPath and writes them as CSV
// to outputPath. Unreadable documents are skipped; finding no transactions
// at all is the one fatal extraction error.
func (p *Processor) Convert(inputPath, outputPath string) error {
	transactions, err := p.Collect(inputPath)
	if err != nil {
		return err
	}

	p.logger.Info("saving transactions", "count", len(transactions), "output", outputPath)
	return csv.WriteFile(outputPath, transactions, p.filter)
}

// Collect extracts and aggregates transactions from every document under
// inputPath, in discovery order, with the configured sign applied.
func (p *Processor) Collect(inputPath string) ([]*models.Transaction, error) {
	paths, err := p.discover(inputPath)
	if err != nil {
		return nil, err
	}

	var transactions []*models.Transaction
	for _, path := range paths {
		document, err := p.load(path)
		if err != nil {
			p.logger.Warn("failed to load document", "file", path, "error", err)
			continue
		}
		p.logger.Info("loading transactions", "file", path)
		transactions = append(transactions, p.parser.Extract(document)...)
	}

	if len(transactions) == 0 {
		return nil, fmt.Errorf("no transactions found in %s", inputPath)
	}

	if p.config.SwapSign {
		for _, tx := range transactions {
			tx.Amount = -tx.Amount
		}
	}
	return transactions, nil
}

// discover resolves inputPath to the list of documents to process. A file is
// taken as-is; a directory is walked recursively for files with the
// configured extension. Paths are sorted so output order is reproducible
// across runs and filesystems.
func (p *Processor) discover(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", inputPath, err)
	}
	if !info.IsDir() {
		return []string{inputPath}, nil
	}

	var paths []string
	err = filepath.WalkDir(inputPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() && strings.EqualFold(filepath.Ext(path), p.config.Extension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", inputPath, err)
	}

	sort.Strings(paths)
	return paths, nil
}
