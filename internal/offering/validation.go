package offering

import (
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shopspring/decimal"

	"github.com/offerly/console/internal/domain"
)

const isoDateLayout = "2006-01-02"

var (
	validate   *validator.Validate
	translator ut.Translator

	// custom validation tags & texts
	requiredTag  = "required"
	requiredText = "{0} is required"

	isoDateTag  = "isodate"
	isoDateText = "{0} must be a date in YYYY-MM-DD format"

	offeringTypeTag  = "offering_type"
	offeringTypeText = "{0} must be one of Weekly, General Offering, Special Offering or Donation"

	donationKindTag  = "donation_kind"
	donationKindText = "{0} must be Money or Things"

	minAmountTag  = "min_amount"
	minAmountText = "{0} must be at least {1}"

	minLengthTag  = "min_length"
	minLengthText = "{0} must be at least {1} characters long"
)

func init() {
	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")
	validate = validator.New()
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(isoDateTag, isoDateValidation)
	_ = validate.RegisterValidation(offeringTypeTag, offeringTypeValidation)
	_ = validate.RegisterValidation(donationKindTag, donationKindValidation)
	validate.RegisterStructValidation(valuesStructValidation, Values{})

	registerTranslation(requiredTag, requiredText)
	registerTranslation(isoDateTag, isoDateText)
	registerTranslation(offeringTypeTag, offeringTypeText)
	registerTranslation(donationKindTag, donationKindText)
	registerTranslation(minAmountTag, minAmountText)
	registerTranslation(minLengthTag, minLengthText)
}

// registerTranslation overrides the message for tag. Texts may reference the
// field as {0} and the tag parameter as {1}.
func registerTranslation(tag, text string) {
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field(), fe.Param())
			return s
		},
	)
}

// Values are the raw contents of the offering form.
type Values struct {
	Date                string              `json:"date" validate:"required,isodate"`
	Type                domain.OfferingType `json:"type" validate:"required,offering_type"`
	DonationKind        domain.DonationKind `json:"donationKind" validate:"omitempty,donation_kind"`
	Amount              *decimal.Decimal    `json:"amount"`
	DonationDescription string              `json:"donationDescription"`
	GivenBy             string              `json:"givenBy"`
	Notes               string              `json:"notes"`
}

// Validate checks v against the requirements derived from its own type and
// donation kind and returns translated messages keyed by field. A nil map
// means the values are valid.
func Validate(v Values) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = fe.Translate(translator)
	}
	return fields
}

// valuesStructValidation applies the type dependent rules.
func valuesStructValidation(sl validator.StructLevel) {
	v := sl.Current().Interface().(Values)
	req := Requirements(v.Type, v.DonationKind)

	if req.Amount.Required {
		switch {
		case v.Amount == nil:
			sl.ReportError(v.Amount, FieldAmount, "Amount", requiredTag, "")
		case v.Amount.LessThan(decimal.NewFromInt(int64(req.Amount.Min))):
			sl.ReportError(v.Amount, FieldAmount, "Amount", minAmountTag, strconv.Itoa(req.Amount.Min))
		}
	}
	validateText(sl, v.DonationDescription, FieldDonationDescription, "DonationDescription", req.DonationDescription)
	validateText(sl, v.GivenBy, FieldGivenBy, "GivenBy", req.GivenBy)
}

func validateText(sl validator.StructLevel, value, field, structField string, rule FieldRule) {
	if !rule.Required {
		return
	}
	if value == "" {
		sl.ReportError(value, field, structField, requiredTag, "")
		return
	}
	if utf8.RuneCountInString(value) < rule.Min {
		sl.ReportError(value, field, structField, minLengthTag, strconv.Itoa(rule.Min))
	}
}

// Custom Validators

func isoDateValidation(fl validator.FieldLevel) bool {
	_, err := time.Parse(isoDateLayout, fl.Field().String())
	return err == nil
}

func offeringTypeValidation(fl validator.FieldLevel) bool {
	_, err := domain.ParseOfferingType(fl.Field().String())
	return err == nil
}

func donationKindValidation(fl validator.FieldLevel) bool {
	_, err := domain.ParseDonationKind(fl.Field().String())
	return err == nil
}
