package llm

import "fmt"

// receiptPrompt asks the model to extract exactly four receipt fields as a
// bare JSON object. The contract is deliberately strict: any prose around the
// JSON is discarded by the brace extractor, and a response with no JSON at
// all degrades to a heuristic-only result.
func receiptPrompt(ocrText string) string {
	return fmt.Sprintf(`Parse this receipt/invoice text and extract ONLY these 4 fields. Return ONLY valid JSON, no other text:

%s

Extract and return ONLY this JSON format:
{
  "merchant": "store/company name",
  "amount": 0.00,
  "date": "YYYY-MM-DD",
  "category": "food/shopping/electronics/etc"
}

Rules:
- amount should be the total/final amount as a number
- date should be in YYYY-MM-DD format
- category should be one word like: food, shopping, electronics, grocery, gas, entertainment
- Return ONLY the JSON object, no explanation`, ocrText)
}

// statementPrompt asks the model to extract every transaction from statement
// text as a JSON object holding a transactions array.
func statementPrompt(pdfText string) string {
	return fmt.Sprintf(`Parse this bank statement/transaction history text and extract ALL transactions. Return ONLY valid JSON array, no other text:

%s

Extract and return ONLY this JSON format:
{
  "transactions": [
    {
      "date": "YYYY-MM-DD",
      "amount": 0.00,
      "description": "transaction description",
      "type": "income" or "expense",
      "category": "category name"
    }
  ]
}

Rules:
- Extract ALL transactions from the text
- amount should be positive numbers only
- type should be "income" for deposits/credits, "expense" for debits/withdrawals
- date should be in YYYY-MM-DD format
- description should be cleaned up merchant/transaction description
- category should be one of: food, shopping, transportation, utilities, healthcare, entertainment, income, transfer, other
- Skip header lines, totals, balances, and non-transaction lines
- Return ONLY the JSON object, no explanation
- If no transactions found, return {"transactions": []}`, pdfText)
}
