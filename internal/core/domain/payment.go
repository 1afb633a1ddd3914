package domain

// PaymentIntent - намерение оплаты, созданное бэкендом.
// ClientSecret передается платежному UI как есть.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// PaymentOutcome - терминальный результат платежного UI
type PaymentOutcome string

const (
	PaymentCompleted PaymentOutcome = "completed"
	PaymentCanceled  PaymentOutcome = "canceled"
	PaymentFailed    PaymentOutcome = "failed"
)

// PaymentResult - итог предъявления платежного листа
type PaymentResult struct {
	Outcome PaymentOutcome
	// Reason поясняет исход, когда он не PaymentCompleted
	Reason string
}
