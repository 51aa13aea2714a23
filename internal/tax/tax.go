package tax

import "github.com/shopspring/decimal"

// HomeCountry is where the platform is registered for VAT purposes.
const HomeCountry = "RO"

var vatRate = decimal.NewFromFloat(0.19)

// EU member states by ISO 3166-1 alpha-2 code.
var euCountries = map[string]struct{}{
	"AT": {}, "BE": {}, "BG": {}, "HR": {}, "CY": {}, "CZ": {}, "DK": {},
	"EE": {}, "FI": {}, "FR": {}, "DE": {}, "GR": {}, "HU": {}, "IE": {},
	"IT": {}, "LV": {}, "LT": {}, "LU": {}, "MT": {}, "NL": {}, "PL": {},
	"PT": {}, "RO": {}, "SK": {}, "SI": {}, "ES": {}, "SE": {},
}

// VAT returns the value-added tax owed on the platform commission for a
// payee in the given country, rounded half-up to a whole cent.
//
// Domestic payees are always charged VAT. EU payees are charged VAT only
// when they cannot present a tax id (reverse charge applies otherwise).
// Payees outside the EU owe nothing.
func VAT(commission decimal.Decimal, country, taxID string) decimal.Decimal {
	if country == HomeCountry {
		return charge(commission)
	}
	if _, eu := euCountries[country]; eu {
		if taxID == "" {
			return charge(commission)
		}
		return decimal.Zero
	}
	return decimal.Zero
}

func charge(commission decimal.Decimal) decimal.Decimal {
	return commission.Mul(vatRate).Round(0)
}
