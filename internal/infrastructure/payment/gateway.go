package payment

import "context"

// Intent is the slice of a gateway payment intent this API exposes:
// the client secret goes back to the caller for client-side confirmation,
// the rest is kept for logging.
type Intent struct {
	ClientSecret string
	Amount       int64
	Currency     string
}

// Gateway authorizes charges with an external payment provider. Amount is
// in the smallest currency unit. One call, no retry; failures propagate.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}
