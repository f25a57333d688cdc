package paymentledger

// RefundResult описывает результат возврата средств
type RefundResult struct {
	RefundID string
	Amount   int64
	Currency string
	Status   string
}

// ChargeResult описывает результат списания комиссии
type ChargeResult struct {
	ChargeID string
	Amount   int64
	Currency string
}

// AccountResult описывает созданный connected account поставщика
type AccountResult struct {
	AccountID string
}
