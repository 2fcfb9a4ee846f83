package mod

import "encoding/json"

// CardBrand is the card network derived from the leading digits of a card
// number.
type CardBrand string

const (
	BrandVisa       CardBrand = "Visa"
	BrandMastercard CardBrand = "Mastercard"
	BrandAmex       CardBrand = "American Express"
	BrandDiscover   CardBrand = "Discover"
	BrandDinersClub CardBrand = "Diners Club"
	BrandJCB        CardBrand = "JCB"
	BrandUnknown    CardBrand = "Unknown"
)

// UnknownValue is substituted for any field the upstream lookup does not
// provide.
const UnknownValue = "Unknown"

// ValidationResult is the card_validation block of a full lookup response.
type ValidationResult struct {
	IsValid    bool      `json:"is_valid"`
	CardNumber string    `json:"card_number"` //masked display form
	CardType   CardBrand `json:"card_type"`
	CardLength int       `json:"card_length"`
	LuhnCheck  string    `json:"luhn_check"`
}

// BinInfo mirrors the upstream binlist payload. Any field may be empty when
// the source omits it; Raw keeps the undecoded body for passthrough
// responses.
type BinInfo struct {
	Scheme  string `json:"scheme"`
	Type    string `json:"type"`
	Subtype string `json:"subtype"`
	Issuer  struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"issuer"`
	Country struct {
		Name    string `json:"name"`
		Alpha2  string `json:"alpha2"`
		Alpha3  string `json:"alpha3"`
		Numeric string `json:"numeric"`
	} `json:"country"`
	Bank struct {
		Name  string `json:"name"`
		URL   string `json:"url"`
		Phone string `json:"phone"`
	} `json:"bank"`
	Raw json.RawMessage `json:"-"`
}

type BinIssuer struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type BinCountry struct {
	Name    string `json:"name"`
	Alpha2  string `json:"alpha2"`
	Alpha3  string `json:"alpha3"`
	Numeric string `json:"numeric"`
}

type BinBank struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Phone string `json:"phone"`
}

// BinLookup is the bin_lookup block of a full lookup response. The field set
// is fixed: every field is always present, carrying UnknownValue where the
// upstream record had nothing.
type BinLookup struct {
	Bin     string     `json:"bin"`
	Brand   string     `json:"brand"`
	Type    string     `json:"type"`
	SubType string     `json:"sub_type"`
	Issuer  BinIssuer  `json:"issuer"`
	Country BinCountry `json:"country"`
	Bank    BinBank    `json:"bank"`
}

// NewBinLookup builds the fixed-shape bin_lookup block from an upstream
// record. A nil record (absent lookup) renders every field as UnknownValue.
func NewBinLookup(bin string, info *BinInfo) BinLookup {
	if info == nil {
		info = &BinInfo{}
	}
	return BinLookup{
		Bin:     bin,
		Brand:   orUnknown(info.Scheme),
		Type:    orUnknown(info.Type),
		SubType: orUnknown(info.Subtype),
		Issuer: BinIssuer{
			Name:    orUnknown(info.Issuer.Name),
			Country: orUnknown(info.Issuer.Country),
		},
		Country: BinCountry{
			Name:    orUnknown(info.Country.Name),
			Alpha2:  orUnknown(info.Country.Alpha2),
			Alpha3:  orUnknown(info.Country.Alpha3),
			Numeric: orUnknown(info.Country.Numeric),
		},
		Bank: BinBank{
			Name:  orUnknown(info.Bank.Name),
			URL:   orUnknown(info.Bank.URL),
			Phone: orUnknown(info.Bank.Phone),
		},
	}
}

func orUnknown(value string) string {
	if value == "" {
		return UnknownValue
	}
	return value
}
