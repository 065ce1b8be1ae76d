package commit

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// MemoryStore keeps committed records in memory. Used in tests and for dry
// runs.
type MemoryStore struct {
	mu      sync.Mutex
	records []models.TransactionRecord
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save appends the record.
func (s *MemoryStore) Save(_ context.Context, record models.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// Records returns a copy of everything saved so far.
func (s *MemoryStore) Records() []models.TransactionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TransactionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// csvRecord is the flat CSV shape of a committed transaction.
type csvRecord struct {
	ID          string `csv:"ID"`
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Notes       string `csv:"Notes"`
}

// CSVStore appends committed transactions to a CSV file, one row per record.
// The header is written when the file is first created.
type CSVStore struct {
	mu        sync.Mutex
	path      string
	delimiter rune
	logger    logging.Logger
}

// NewCSVStore creates a CSVStore writing to path. A zero delimiter means
// comma.
func NewCSVStore(path string, delimiter rune, logger logging.Logger) *CSVStore {
	if delimiter == 0 {
		delimiter = ','
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CSVStore{path: path, delimiter: delimiter, logger: logger}
}

// Save appends one record. The whole file is rewritten through gocsv to keep
// quoting consistent; import batches are small enough for that.
func (s *CSVStore) Save(_ context.Context, record models.TransactionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.load()
	if err != nil {
		return err
	}
	existing = append(existing, csvRecord{
		ID:          record.ID,
		Date:        record.Date.Format("2006-01-02"),
		Description: record.Description,
		Amount:      record.Amount.StringFixed(2),
		Type:        record.Type,
		Category:    record.CategoryID,
		Notes:       record.Notes,
	})

	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error creating transactions file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close transactions file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = s.delimiter
	if err := gocsv.MarshalCSV(&existing, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing transactions file: %w", err)
	}
	return nil
}

func (s *CSVStore) load() ([]csvRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening transactions file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close transactions file")
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = s.delimiter

	var rows []csvRecord
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error reading transactions file: %w", err)
	}
	return rows, nil
}
