package payment

import "time"

type Method string

const (
	MethodCard        Method = "card"
	MethodAirtelMoney Method = "airtel-money"
	MethodCashOnDeliv Method = "cash-on-delivery"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCard, MethodAirtelMoney, MethodCashOnDeliv:
		return true
	}
	return false
}

// CardDetails is what the card form submits. Validated before any charge is
// attempted.
type CardDetails struct {
	Number string
	Expiry string // MM/YY
	CVC    string
}

// ChargeRequest describes one payment to process.
type ChargeRequest struct {
	Method     Method
	AmountDue  int // minor currency units
	BuyerEmail string
	Card       *CardDetails
	AirtelNum  string
}

// Receipt is the gateway's acknowledgement of a processed charge.
type Receipt struct {
	ReferenceID  string
	Method       Method
	Amount       int
	PaidAt       time.Time
	Instructions []string
}
