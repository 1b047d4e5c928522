package generator

import (
	"time"

	"github.com/grachmannico95/decline-analytics-be/internal/domain"
)

const (
	WindowDays     = 21
	CrisisStartDay = 14

	// Days in (rampStartDay, CrisisStartDay) degrade linearly toward the
	// crisis rate.
	rampStartDay = 10

	minPerDay = 25
	maxPerDay = 35

	minAmount = 10.0
	maxAmount = 500.0

	badBINProbability = 0.15
	badBINMultiplier  = 1.20
	crisisMultiplier  = 1.20
	rampStep          = 0.10
	maxDeclineRate    = 0.99
)

var WindowStart = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// BadBINs simulate a localized issuer block.
var BadBINs = []string{"400001", "400002", "400003"}

var processors = []domain.Processor{
	domain.ProcessorAcquireMax,
	domain.ProcessorKushki,
	domain.ProcessorDLocal,
	domain.ProcessorLatamPay,
}

var countries = []domain.Country{
	domain.CountryMX,
	domain.CountryCO,
	domain.CountryAR,
	domain.CountryBR,
}

var countryMethods = map[domain.Country][]domain.PaymentMethod{
	domain.CountryMX: {domain.PaymentMethodCreditCard, domain.PaymentMethodDebitCard, domain.PaymentMethodOxxo},
	domain.CountryCO: {domain.PaymentMethodCreditCard, domain.PaymentMethodDebitCard, domain.PaymentMethodPSE},
	domain.CountryAR: {domain.PaymentMethodCreditCard, domain.PaymentMethodDebitCard},
	domain.CountryBR: {domain.PaymentMethodCreditCard, domain.PaymentMethodDebitCard, domain.PaymentMethodPix},
}

var countryCurrency = map[domain.Country]domain.Currency{
	domain.CountryMX: domain.CurrencyMXN,
	domain.CountryCO: domain.CurrencyCOP,
	domain.CountryAR: domain.CurrencyARS,
	domain.CountryBR: domain.CurrencyBRL,
}

var processorVolume = []Weighted[domain.Processor]{
	{domain.ProcessorAcquireMax, 0.30},
	{domain.ProcessorKushki, 0.30},
	{domain.ProcessorDLocal, 0.20},
	{domain.ProcessorLatamPay, 0.20},
}

var processorBaseDecline = map[domain.Processor]float64{
	domain.ProcessorAcquireMax: 0.28,
	domain.ProcessorKushki:     0.32,
	domain.ProcessorDLocal:     0.38,
	domain.ProcessorLatamPay:   0.75,
}

var normalDeclineCodes = []Weighted[domain.DeclineCode]{
	{domain.DeclineCodeInsufficientFunds, 0.30},
	{domain.DeclineCodeCardExpired, 0.15},
	{domain.DeclineCodeSuspectedFraud, 0.10},
	{domain.DeclineCodeDoNotHonor, 0.15},
	{domain.DeclineCodeCardVelocityExceeded, 0.10},
	{domain.DeclineCodeInvalidCard, 0.10},
	{domain.DeclineCodeProcessingError, 0.05},
	{domain.DeclineCodeTimeout, 0.03},
	{domain.DeclineCodeNetworkError, 0.02},
}

var crisisDeclineCodes = []Weighted[domain.DeclineCode]{
	{domain.DeclineCodeIssuerUnavailable, 0.40},
	{domain.DeclineCodeInsufficientFunds, 0.20},
	{domain.DeclineCodeSuspectedFraud, 0.10},
	{domain.DeclineCodeCardExpired, 0.07},
	{domain.DeclineCodeDoNotHonor, 0.07},
	{domain.DeclineCodeInvalidCard, 0.06},
	{domain.DeclineCodeCardVelocityExceeded, 0.05},
	{domain.DeclineCodeProcessingError, 0.03},
	{domain.DeclineCodeTimeout, 0.01},
	{domain.DeclineCodeNetworkError, 0.01},
}

// Processors returns the fixed processor domain.
func Processors() []domain.Processor {
	return append([]domain.Processor(nil), processors...)
}

// Countries returns the fixed country domain.
func Countries() []domain.Country {
	return append([]domain.Country(nil), countries...)
}

// MethodsFor returns the payment methods offered in a country.
func MethodsFor(c domain.Country) []domain.PaymentMethod {
	return append([]domain.PaymentMethod(nil), countryMethods[c]...)
}

// CurrencyFor returns the settlement currency of a country.
func CurrencyFor(c domain.Country) domain.Currency {
	return countryCurrency[c]
}
