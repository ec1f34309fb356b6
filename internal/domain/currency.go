package domain

const (
	DefaultSecondaryCurrency = "USD"
	DefaultConversionRate    = 74.0
)

// CurrencyPolicy define como os valores são convertidos para a moeda do relatório.
// Apenas a moeda secundária é convertida; as demais passam sem alteração.
type CurrencyPolicy struct {
	SecondaryCurrency string
	ConversionRate    float64
}

func DefaultCurrencyPolicy() CurrencyPolicy {
	return CurrencyPolicy{
		SecondaryCurrency: DefaultSecondaryCurrency,
		ConversionRate:    DefaultConversionRate,
	}
}

// Normalize converte um valor bruto para a moeda do relatório
func (p CurrencyPolicy) Normalize(amount float64, currency string) float64 {
	if currency == p.SecondaryCurrency {
		return amount * p.ConversionRate
	}
	return amount
}
