package domain

import "time"

type TransactionStatus string

const (
	TransactionStatusApproved TransactionStatus = "approved"
	TransactionStatusDeclined TransactionStatus = "declined"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodOxxo       PaymentMethod = "oxxo"
	PaymentMethodPSE        PaymentMethod = "pse"
)

// IsCard reports whether the method carries a card BIN.
func (m PaymentMethod) IsCard() bool {
	return m == PaymentMethodCreditCard || m == PaymentMethodDebitCard
}

type Processor string

const (
	ProcessorAcquireMax Processor = "AcquireMax"
	ProcessorKushki     Processor = "Kushki"
	ProcessorDLocal     Processor = "dLocal"
	ProcessorLatamPay   Processor = "LatamPay"
)

type Country string

const (
	CountryMX Country = "MX"
	CountryCO Country = "CO"
	CountryAR Country = "AR"
	CountryBR Country = "BR"
)

type Currency string

const (
	CurrencyMXN Currency = "MXN"
	CurrencyCOP Currency = "COP"
	CurrencyARS Currency = "ARS"
	CurrencyBRL Currency = "BRL"
)

type DeclineCategory string

const (
	DeclineCategorySoft       DeclineCategory = "soft_decline"
	DeclineCategoryHard       DeclineCategory = "hard_decline"
	DeclineCategoryProcessing DeclineCategory = "processing_error"
)

type DeclineCode string

const (
	DeclineCodeIssuerUnavailable    DeclineCode = "issuer_unavailable"
	DeclineCodeInsufficientFunds    DeclineCode = "insufficient_funds"
	DeclineCodeSuspectedFraud       DeclineCode = "suspected_fraud"
	DeclineCodeCardExpired          DeclineCode = "card_expired"
	DeclineCodeInvalidCard          DeclineCode = "invalid_card"
	DeclineCodeDoNotHonor           DeclineCode = "do_not_honor"
	DeclineCodeCardVelocityExceeded DeclineCode = "card_velocity_exceeded"
	DeclineCodeProcessingError      DeclineCode = "processing_error"
	DeclineCodeTimeout              DeclineCode = "timeout"
	DeclineCodeNetworkError         DeclineCode = "network_error"
)

var declineCodeCategories = map[DeclineCode]DeclineCategory{
	DeclineCodeIssuerUnavailable:    DeclineCategoryProcessing,
	DeclineCodeInsufficientFunds:    DeclineCategorySoft,
	DeclineCodeSuspectedFraud:       DeclineCategoryHard,
	DeclineCodeCardExpired:          DeclineCategoryHard,
	DeclineCodeInvalidCard:          DeclineCategoryHard,
	DeclineCodeDoNotHonor:           DeclineCategorySoft,
	DeclineCodeCardVelocityExceeded: DeclineCategorySoft,
	DeclineCodeProcessingError:      DeclineCategoryProcessing,
	DeclineCodeTimeout:              DeclineCategoryProcessing,
	DeclineCodeNetworkError:         DeclineCategoryProcessing,
}

// Category returns the category a decline code always maps to.
func (c DeclineCode) Category() (DeclineCategory, bool) {
	cat, ok := declineCodeCategories[c]
	return cat, ok
}

// Transaction is immutable once generated. DeclineCode and DeclineCategory
// are set only for declined transactions, CardBin only for card methods.
type Transaction struct {
	ID              string            `json:"id"`
	Timestamp       time.Time         `json:"timestamp"`
	Status          TransactionStatus `json:"status"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	Processor       Processor         `json:"processor"`
	Country         Country           `json:"country"`
	Currency        Currency          `json:"currency"`
	Amount          float64           `json:"amount"`
	DeclineCode     *DeclineCode      `json:"declineCode"`
	DeclineCategory *DeclineCategory  `json:"declineCategory"`
	CardBin         *string           `json:"cardBin"`
}

// FilterParams holds the optional request filters. An empty string means
// no constraint. DateFrom and DateTo are calendar dates (YYYY-MM-DD).
type FilterParams struct {
	PaymentMethod   string `json:"paymentMethod,omitempty"`
	Processor       string `json:"processor,omitempty"`
	Country         string `json:"country,omitempty"`
	DeclineCategory string `json:"declineCategory,omitempty"`
	DeclineCode     string `json:"declineCode,omitempty"`
	CardBin         string `json:"cardBin,omitempty"`
	DateFrom        string `json:"dateFrom,omitempty"`
	DateTo          string `json:"dateTo,omitempty"`
}

type OverviewResponse struct {
	Total        int     `json:"total"`
	Approved     int     `json:"approved"`
	Declined     int     `json:"declined"`
	ApprovalRate float64 `json:"approvalRate"`
	DeclineRate  float64 `json:"declineRate"`
	TotalAmount  float64 `json:"totalAmount"`
}

type BreakdownItem struct {
	Label        string  `json:"label"`
	Total        int     `json:"total"`
	Approved     int     `json:"approved"`
	Declined     int     `json:"declined"`
	DeclineRate  float64 `json:"declineRate"`
	ApprovalRate float64 `json:"approvalRate"`
}

type TimeSeriesDataPoint struct {
	Date        string  `json:"date"`
	Total       int     `json:"total"`
	Declined    int     `json:"declined"`
	DeclineRate float64 `json:"declineRate"`
}

type TimeSeriesGroup struct {
	GroupKey string                `json:"groupKey"`
	Series   []TimeSeriesDataPoint `json:"series"`
}

type DeclineCodeItem struct {
	Rank              int      `json:"rank"`
	Code              string   `json:"code"`
	Category          string   `json:"category"`
	Count             int      `json:"count"`
	PercentOfDeclines float64  `json:"percentOfDeclines"`
	TopProcessors     []string `json:"topProcessors"`
}
