package analytics

import (
	"fmt"
	"time"

	"github.com/grachmannico95/decline-analytics-be/internal/domain"
)

func at(day int, hour int) time.Time {
	return time.Date(2025, time.January, day, hour, 0, 0, 0, time.UTC)
}

func approved(p domain.Processor, ts time.Time) domain.Transaction {
	return domain.Transaction{
		ID:            fmt.Sprintf("a-%s-%d", p, ts.Unix()),
		Timestamp:     ts,
		Status:        domain.TransactionStatusApproved,
		PaymentMethod: domain.PaymentMethodPix,
		Processor:     p,
		Country:       domain.CountryBR,
		Currency:      domain.CurrencyBRL,
		Amount:        100,
	}
}

func declined(p domain.Processor, code domain.DeclineCode, ts time.Time) domain.Transaction {
	category, _ := code.Category()
	bin := "411111"
	return domain.Transaction{
		ID:              fmt.Sprintf("d-%s-%s-%d", p, code, ts.Unix()),
		Timestamp:       ts,
		Status:          domain.TransactionStatusDeclined,
		PaymentMethod:   domain.PaymentMethodCreditCard,
		Processor:       p,
		Country:         domain.CountryMX,
		Currency:        domain.CurrencyMXN,
		Amount:          50,
		DeclineCode:     &code,
		DeclineCategory: &category,
		CardBin:         &bin,
	}
}

func fixture() []domain.Transaction {
	return []domain.Transaction{
		approved(domain.ProcessorAcquireMax, at(1, 1)),
		declined(domain.ProcessorLatamPay, domain.DeclineCodeInsufficientFunds, at(1, 2)),
		declined(domain.ProcessorLatamPay, domain.DeclineCodeIssuerUnavailable, at(2, 3)),
		approved(domain.ProcessorKushki, at(4, 4)),
		declined(domain.ProcessorKushki, domain.DeclineCodeIssuerUnavailable, at(4, 23)),
	}
}
