// Package offering implements the offering entry form: its conditional
// field requirements, validation, submit/reset cycle and the in-memory ledger.
package offering

import "github.com/offerly/console/internal/domain"

// Form field names, as used in payloads and validation messages.
const (
	FieldDate                = "date"
	FieldType                = "type"
	FieldDonationKind        = "donationKind"
	FieldAmount              = "amount"
	FieldDonationDescription = "donationDescription"
	FieldGivenBy             = "givenBy"
	FieldNotes               = "notes"
)

// AllFields lists every form field in display order.
var AllFields = []string{
	FieldDate, FieldType, FieldDonationKind, FieldAmount,
	FieldDonationDescription, FieldGivenBy, FieldNotes,
}

// FieldRule is the requirement on one dependent field. Min is a lower bound
// on the value for amount and on the character count for text fields.
type FieldRule struct {
	Required bool `json:"required"`
	Min      int  `json:"min,omitempty"`
}

// FieldRequirements holds the rules for the fields that depend on type and kind.
type FieldRequirements struct {
	Amount              FieldRule `json:"amount"`
	DonationDescription FieldRule `json:"donationDescription"`
	GivenBy             FieldRule `json:"givenBy"`
}

var (
	amountRule      = FieldRule{Required: true, Min: 1}
	givenByRule     = FieldRule{Required: true, Min: 2}
	descriptionRule = FieldRule{Required: true, Min: 3}
)

// Requirements computes which dependent fields are mandatory. The type
// decides first; the donation kind only matters for donations, where any
// kind other than Money is treated as goods.
func Requirements(t domain.OfferingType, kind domain.DonationKind) FieldRequirements {
	switch t {
	case domain.OfferingSpecial:
		return FieldRequirements{Amount: amountRule, GivenBy: givenByRule}
	case domain.OfferingDonation:
		if kind == domain.DonationMoney {
			return FieldRequirements{Amount: amountRule, GivenBy: givenByRule}
		}
		return FieldRequirements{DonationDescription: descriptionRule, GivenBy: givenByRule}
	default:
		return FieldRequirements{Amount: amountRule}
	}
}

// RequiredFields names the required dependent fields in display order.
func (r FieldRequirements) RequiredFields() []string {
	fields := make([]string, 0, 3)
	if r.Amount.Required {
		fields = append(fields, FieldAmount)
	}
	if r.DonationDescription.Required {
		fields = append(fields, FieldDonationDescription)
	}
	if r.GivenBy.Required {
		fields = append(fields, FieldGivenBy)
	}
	return fields
}
