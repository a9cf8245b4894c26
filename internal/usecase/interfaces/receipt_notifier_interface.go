package interfaces

import (
	"context"

	"clubpay/internal/domain/entities"
)

// IReceiptNotifier abstracts the outbound notification collaborator that
// emails the receipt/contract for an approved purchase.
type IReceiptNotifier interface {
	SendReceipt(ctx context.Context, record entities.PurchaseRecord) error
}
