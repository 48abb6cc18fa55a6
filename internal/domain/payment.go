package domain

type PaymentSession struct {
	ID              string `json:"id"`
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
	OrderID         string `json:"orderId"`
	Amount          Money  `json:"amount"`
	URL             string `json:"url,omitempty"`
}
