package offering

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/offerly/console/internal/domain"
)

// ValidationError is returned by Submit when the form is invalid.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "offering form is invalid"
}

// ErrUnknownOption is returned when a type or donation kind is not selectable.
var ErrUnknownOption = errors.New("unknown option")

// Patch carries field changes. Nil pointers leave a field untouched;
// ClearAmount empties the amount.
type Patch struct {
	Date                *string          `json:"date"`
	Type                *string          `json:"type"`
	DonationKind        *string          `json:"donationKind"`
	Amount              *decimal.Decimal `json:"amount"`
	ClearAmount         bool             `json:"clearAmount"`
	DonationDescription *string          `json:"donationDescription"`
	GivenBy             *string          `json:"givenBy"`
	Notes               *string          `json:"notes"`
}

// FieldVisibility tells the presentation layer which optional inputs apply.
type FieldVisibility struct {
	DonationKind        bool `json:"donationKind"`
	Amount              bool `json:"amount"`
	DonationDescription bool `json:"donationDescription"`
	GivenBy             bool `json:"givenBy"`
}

// View is a snapshot of the form for rendering.
type View struct {
	Values       Values            `json:"values"`
	Requirements FieldRequirements `json:"requirements"`
	Visible      FieldVisibility   `json:"visible"`
	Touched      []string          `json:"touched"`
	Errors       map[string]string `json:"errors"`
	Valid        bool              `json:"valid"`
}

// FormOption customizes a Form.
type FormOption func(*Form)

// WithClock overrides the time source used for the default date.
func WithClock(now func() time.Time) FormOption {
	return func(f *Form) { f.now = now }
}

// WithLocation sets the calendar whose day becomes the default date.
func WithLocation(loc *time.Location) FormOption {
	return func(f *Form) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// Form is the offering entry form state machine. It is not safe for
// concurrent use; the owning session serializes access.
type Form struct {
	values       Values
	requirements FieldRequirements
	touched      map[string]bool
	now          func() time.Time
	loc          *time.Location
}

// NewForm creates a form dated today with type Weekly and kind Money.
func NewForm(opts ...FormOption) *Form {
	f := &Form{now: time.Now, loc: time.Local}
	for _, opt := range opts {
		opt(f)
	}
	f.values = Values{
		Date:         f.today(),
		Type:         domain.OfferingWeekly,
		DonationKind: domain.DonationMoney,
	}
	f.touched = map[string]bool{}
	f.updateRequirements()
	return f
}

// Values returns a copy of the current field values.
func (f *Form) Values() Values {
	v := f.values
	if v.Amount != nil {
		amount := *v.Amount
		v.Amount = &amount
	}
	return v
}

// Requirements returns the rules in force for the current type and kind.
func (f *Form) Requirements() FieldRequirements {
	return f.requirements
}

// SetType selects the offering type and recomputes requirements.
func (f *Form) SetType(raw string) error {
	t, err := domain.ParseOfferingType(raw)
	if err != nil {
		return errors.Join(ErrUnknownOption, err)
	}
	f.values.Type = t
	f.touched[FieldType] = true
	f.updateRequirements()
	return nil
}

// SetDonationKind selects the donation kind and recomputes requirements.
func (f *Form) SetDonationKind(raw string) error {
	k, err := domain.ParseDonationKind(raw)
	if err != nil {
		return errors.Join(ErrUnknownOption, err)
	}
	f.values.DonationKind = k
	f.touched[FieldDonationKind] = true
	f.updateRequirements()
	return nil
}

// SetDate sets the date field as entered.
func (f *Form) SetDate(date string) {
	f.values.Date = date
	f.touched[FieldDate] = true
}

// SetAmount sets or, with nil, clears the amount.
func (f *Form) SetAmount(amount *decimal.Decimal) {
	if amount != nil {
		copied := *amount
		amount = &copied
	}
	f.values.Amount = amount
	f.touched[FieldAmount] = true
}

// SetDonationDescription sets the description of donated goods.
func (f *Form) SetDonationDescription(desc string) {
	f.values.DonationDescription = desc
	f.touched[FieldDonationDescription] = true
}

// SetGivenBy sets the giver's name.
func (f *Form) SetGivenBy(name string) {
	f.values.GivenBy = name
	f.touched[FieldGivenBy] = true
}

// SetNotes sets the free-text notes.
func (f *Form) SetNotes(notes string) {
	f.values.Notes = notes
	f.touched[FieldNotes] = true
}

// Apply applies a patch. Type and kind are checked first so an invalid
// selection leaves the form unchanged.
func (f *Form) Apply(p Patch) error {
	if p.Type != nil {
		if _, err := domain.ParseOfferingType(*p.Type); err != nil {
			return errors.Join(ErrUnknownOption, err)
		}
	}
	if p.DonationKind != nil {
		if _, err := domain.ParseDonationKind(*p.DonationKind); err != nil {
			return errors.Join(ErrUnknownOption, err)
		}
	}

	if p.Date != nil {
		f.SetDate(*p.Date)
	}
	if p.Type != nil {
		_ = f.SetType(*p.Type)
	}
	if p.DonationKind != nil {
		_ = f.SetDonationKind(*p.DonationKind)
	}
	switch {
	case p.ClearAmount:
		f.SetAmount(nil)
	case p.Amount != nil:
		f.SetAmount(p.Amount)
	}
	if p.DonationDescription != nil {
		f.SetDonationDescription(*p.DonationDescription)
	}
	if p.GivenBy != nil {
		f.SetGivenBy(*p.GivenBy)
	}
	if p.Notes != nil {
		f.SetNotes(*p.Notes)
	}
	return nil
}

// IsType reports whether the selected type is t.
func (f *Form) IsType(t domain.OfferingType) bool {
	return f.values.Type == t
}

// IsDonation reports whether the type is Donation and, when a kind is
// given, whether the selected kind matches it.
func (f *Form) IsDonation(kind ...domain.DonationKind) bool {
	if f.values.Type != domain.OfferingDonation {
		return false
	}
	if len(kind) == 0 {
		return true
	}
	return f.values.DonationKind == kind[0]
}

// Errors returns the current validation messages by field, or nil.
func (f *Form) Errors() map[string]string {
	return Validate(f.values)
}

// Touched lists touched fields in display order.
func (f *Form) Touched() []string {
	out := make([]string, 0, len(f.touched))
	for _, field := range AllFields {
		if f.touched[field] {
			out = append(out, field)
		}
	}
	return out
}

// View renders the form state; only errors of touched fields are included.
func (f *Form) View() View {
	errs := f.Errors()
	shown := make(map[string]string, len(errs))
	for field, msg := range errs {
		if f.touched[field] {
			shown[field] = msg
		}
	}
	return View{
		Values:       f.Values(),
		Requirements: f.requirements,
		Visible: FieldVisibility{
			DonationKind:        f.IsDonation(),
			Amount:              !f.IsDonation(domain.DonationThings),
			DonationDescription: f.IsDonation(domain.DonationThings),
			GivenBy:             f.IsType(domain.OfferingSpecial) || f.IsDonation(),
		},
		Touched: f.Touched(),
		Errors:  shown,
		Valid:   len(errs) == 0,
	}
}

// Submit records the form into ledger and resets it. An invalid form marks
// every field touched and returns a *ValidationError without recording.
func (f *Form) Submit(ledger *Ledger) (domain.OfferingRecord, error) {
	if errs := f.Errors(); len(errs) > 0 {
		for _, field := range AllFields {
			f.touched[field] = true
		}
		return domain.OfferingRecord{}, &ValidationError{Fields: errs}
	}

	record := f.snapshot()
	ledger.Prepend(record)
	f.reset()
	return record, nil
}

func (f *Form) snapshot() domain.OfferingRecord {
	v := f.Values()
	record := domain.OfferingRecord{
		ID:                  uuid.NewString(),
		Date:                v.Date,
		Type:                v.Type,
		Amount:              v.Amount,
		DonationDescription: v.DonationDescription,
		GivenBy:             v.GivenBy,
		Notes:               v.Notes,
	}
	if v.Type == domain.OfferingDonation {
		kind := v.DonationKind
		record.DonationKind = &kind
	}
	return record
}

// reset keeps the type, restores kind Money and today's date, clears the rest.
func (f *Form) reset() {
	f.values = Values{
		Date:         f.today(),
		Type:         f.values.Type,
		DonationKind: domain.DonationMoney,
	}
	f.touched = map[string]bool{}
	f.updateRequirements()
}

func (f *Form) updateRequirements() {
	f.requirements = Requirements(f.values.Type, f.values.DonationKind)
}

// today is the calendar day in the form's location, not in UTC.
func (f *Form) today() string {
	return f.now().In(f.loc).Format(isoDateLayout)
}
