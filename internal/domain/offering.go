package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// OfferingType enumerates the categories of recorded contributions.
type OfferingType string

const (
	OfferingWeekly   OfferingType = "Weekly"
	OfferingGeneral  OfferingType = "General Offering"
	OfferingSpecial  OfferingType = "Special Offering"
	OfferingDonation OfferingType = "Donation"
)

// OfferingTypes lists the selectable types in display order.
var OfferingTypes = []OfferingType{OfferingWeekly, OfferingGeneral, OfferingSpecial, OfferingDonation}

// DonationKind sub-classifies a Donation as money or goods.
type DonationKind string

const (
	DonationMoney  DonationKind = "Money"
	DonationThings DonationKind = "Things"
)

// DonationKinds lists the selectable donation kinds in display order.
var DonationKinds = []DonationKind{DonationMoney, DonationThings}

// ParseOfferingType validates a raw type value.
func ParseOfferingType(raw string) (OfferingType, error) {
	for _, t := range OfferingTypes {
		if string(t) == raw {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown offering type %q", raw)
}

// ParseDonationKind validates a raw donation kind value.
func ParseDonationKind(raw string) (DonationKind, error) {
	for _, k := range DonationKinds {
		if string(k) == raw {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown donation kind %q", raw)
}

// OfferingRecord is a single entry of the offerings ledger.
type OfferingRecord struct {
	ID                  string           `json:"id"`
	Date                string           `json:"date"`
	Type                OfferingType     `json:"type"`
	DonationKind        *DonationKind    `json:"donationKind,omitempty"`
	Amount              *decimal.Decimal `json:"amount,omitempty"`
	DonationDescription string           `json:"donationDescription,omitempty"`
	GivenBy             string           `json:"givenBy,omitempty"`
	Notes               string           `json:"notes,omitempty"`
}
