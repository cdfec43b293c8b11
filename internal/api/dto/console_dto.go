package dto

import (
	"github.com/offerly/console/internal/domain"
	"github.com/offerly/console/internal/navigation"
	"github.com/offerly/console/pkg/util/moneyutil"
)

// NavigateRequest payload for router navigation.
type NavigateRequest struct {
	URL string `json:"url"`
}

// SidebarResponse reports the sidebar state.
type SidebarResponse struct {
	Collapsed bool `json:"collapsed"`
}

// MenuClickResponse reports what a menu click did.
type MenuClickResponse struct {
	Item      domain.MenuItem       `json:"item"`
	Toggled   bool                  `json:"toggled"`
	Navigated bool                  `json:"navigated"`
	Menu      []navigation.ItemView `json:"menu"`
}

// LoginRequest payload for the sign-in screen.
type LoginRequest struct {
	Email      string `json:"email" validate:"omitempty,email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse reports whether a submission started.
type LoginResponse struct {
	Started bool `json:"started"`
}

// OfferingRow is an offering as shown in the records list.
type OfferingRow struct {
	ID                  string               `json:"id"`
	Date                string               `json:"date"`
	Type                domain.OfferingType  `json:"type"`
	DonationKind        *domain.DonationKind `json:"donationKind,omitempty"`
	Amount              *string              `json:"amount"`
	AmountDisplay       string               `json:"amountDisplay"`
	DonationDescription string               `json:"donationDescription,omitempty"`
	GivenBy             string               `json:"givenBy,omitempty"`
	Notes               string               `json:"notes,omitempty"`
}

// NewOfferingRow renders a record for the list.
func NewOfferingRow(r domain.OfferingRecord) OfferingRow {
	row := OfferingRow{
		ID:                  r.ID,
		Date:                r.Date,
		Type:                r.Type,
		DonationKind:        r.DonationKind,
		AmountDisplay:       moneyutil.FormatINR(r.Amount),
		DonationDescription: r.DonationDescription,
		GivenBy:             r.GivenBy,
		Notes:               r.Notes,
	}
	if r.Amount != nil {
		amount := r.Amount.String()
		row.Amount = &amount
	}
	return row
}

// NewOfferingRows renders a list of records.
func NewOfferingRows(records []domain.OfferingRecord) []OfferingRow {
	rows := make([]OfferingRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, NewOfferingRow(r))
	}
	return rows
}
