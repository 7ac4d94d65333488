package checklist

// Policy holds the safeguard ceilings applied to extracted batches.
//
// The defaults are inferred from the sizes of known card products: a plain
// numbered base set rarely exceeds 300 cards, and prefixed base sets print
// two prefix variants of about 200 cards each. The true ceiling depends on
// the product and cannot be derived from page text, so callers can tune it.
type Policy struct {
	// MaxBasePlain caps the base batch size for plain numbering.
	MaxBasePlain int `toml:"max_base_plain" json:"maxBasePlain"`

	// MaxBasePrefixed caps the base batch size for prefixed numbering.
	MaxBasePrefixed int `toml:"max_base_prefixed" json:"maxBasePrefixed"`

	// MaxPlainNumber is the highest valid plain base card number.
	MaxPlainNumber int `toml:"max_plain_number" json:"maxPlainNumber"`

	// MaxPrefixedNumber is the highest valid prefixed base card number.
	MaxPrefixedNumber int `toml:"max_prefixed_number" json:"maxPrefixedNumber"`

	// MaxCards caps insert and autograph batches.
	MaxCards int `toml:"max_cards" json:"maxCards"`
}

// Default safeguard ceilings.
const (
	DefaultMaxBasePlain      = 300
	DefaultMaxBasePrefixed   = 410
	DefaultMaxPlainNumber    = 300
	DefaultMaxPrefixedNumber = 500
	DefaultMaxCards          = 1000
)

// DefaultPolicy returns the policy used when none is configured.
func DefaultPolicy() Policy {
	return Policy{
		MaxBasePlain:      DefaultMaxBasePlain,
		MaxBasePrefixed:   DefaultMaxBasePrefixed,
		MaxPlainNumber:    DefaultMaxPlainNumber,
		MaxPrefixedNumber: DefaultMaxPrefixedNumber,
		MaxCards:          DefaultMaxCards,
	}
}

// Validate returns an error if any ceiling is not positive.
func (p Policy) Validate() error {
	switch {
	case p.MaxBasePlain <= 0:
		return Errorf(EINVALID, "max_base_plain must be positive")
	case p.MaxBasePrefixed <= 0:
		return Errorf(EINVALID, "max_base_prefixed must be positive")
	case p.MaxPlainNumber <= 0:
		return Errorf(EINVALID, "max_plain_number must be positive")
	case p.MaxPrefixedNumber <= 0:
		return Errorf(EINVALID, "max_prefixed_number must be positive")
	case p.MaxCards <= 0:
		return Errorf(EINVALID, "max_cards must be positive")
	}
	return nil
}

// MaxBase returns the base batch ceiling for a number format.
func (p Policy) MaxBase(format BaseFormat) int {
	if format == FormatPrefixed {
		return p.MaxBasePrefixed
	}
	return p.MaxBasePlain
}

// MaxNumber returns the highest valid base card number for a format.
func (p Policy) MaxNumber(format BaseFormat) int {
	if format == FormatPrefixed {
		return p.MaxPrefixedNumber
	}
	return p.MaxPlainNumber
}
