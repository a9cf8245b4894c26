package interfaces

import (
	"context"
	"encoding/json"

	"clubpay/internal/domain/entities"
)

// ITokenIssuer mints a short-lived, single-use authorization token scoped to
// an amount, currency and merchant identity. A failed issuance is retried
// only by requesting an entirely new grant, never by resending a token.
type ITokenIssuer interface {
	IssueToken(ctx context.Context, cfg entities.ClubPaymentConfig, req entities.TokenRequest) (entities.TokenGrant, error)
}

// ICardProcessor runs the server-side sale call for the embedded-tokenizer
// integration: a one-time card token plus an amount against the vendor sale
// endpoint. The raw vendor payload is returned untouched so the response
// normalizer owns all interpretation; transport failures are the only errors.
type ICardProcessor interface {
	ChargeToken(ctx context.Context, cfg entities.ClubPaymentConfig, token string, amountMinorUnits int64, currency string) (json.RawMessage, error)
}
