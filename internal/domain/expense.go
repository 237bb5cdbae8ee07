package domain

import "time"

type Expense struct {
	ID       int32     `json:"id"`
	Date     time.Time `json:"date"`
	By       string    `json:"by"`
	Amount   int64     `json:"amount"`
	Category string    `json:"category"`
	Note     string    `json:"note"`
	// Stored receipt image, if one was attached. The key addresses the file
	// in the storage backend; deleting the expense releases it.
	ReceiptImageKey string    `json:"receipt_image_key,omitempty"`
	ReceiptImageURL string    `json:"receipt_image_url,omitempty"`
	CreatedOn       time.Time `json:"created_on"`
}
