package extract

import (
	"fmt"

	"github.com/ERUDITE137/shikhar-finance/internal/categories"
	"github.com/ERUDITE137/shikhar-finance/internal/models"
)

// BuildReceiptTransaction turns a processed receipt into a transaction record
// ready to persist, for the auto-create path the user can opt into after
// review. It requires a positive extracted amount; the date defaults to today
// when the receipt yielded none, and the category hint is resolved (creating
// a category when needed).
func (o *Orchestrator) BuildReceiptTransaction(data ReceiptData, file models.ReceiptFile, resolver *categories.Resolver) (*models.TransactionRecord, error) {
	if !data.HasAmount() {
		return nil, fmt.Errorf("cannot create transaction: no amount extracted")
	}

	categoryID, err := resolver.Resolve(data.Category)
	if err != nil {
		return nil, err
	}

	date := data.Date
	if date.IsZero() {
		date = o.Now()
	}

	return &models.TransactionRecord{
		ID:                   o.NewID(),
		Amount:               data.Amount,
		Description:          data.Description,
		Type:                 models.TypeExpense,
		CategoryID:           categoryID,
		Date:                 date,
		ExtractedFromReceipt: true,
		Receipt:              &file,
	}, nil
}
