package dashboard

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/offerly/console/pkg/util/errorutil"
	"github.com/offerly/console/pkg/util/moneyutil"
)

// Overview is the rendered dashboard.
type Overview struct {
	ChurchName              string        `json:"churchName"`
	CurrentDate             string        `json:"currentDate"`
	SummaryCards            []SummaryCard `json:"summaryCards"`
	Chart                   []ChartPoint  `json:"chart"`
	ChartMaxValue           float64       `json:"chartMaxValue"`
	Birthdays               []Birthday    `json:"birthdays"`
	Anniversaries           []Anniversary `json:"anniversaries"`
	UpcomingEventsCount     int           `json:"upcomingEventsCount"`
	QuickStats              QuickStats    `json:"quickStats"`
	ThisMonthOfferings      string        `json:"thisMonthOfferings"`
	LastOffering            *Offering     `json:"lastOffering,omitempty"`
	TotalFundBalance        string        `json:"totalFundBalance"`
	TotalActiveContributors int           `json:"totalActiveContributors"`
	ThisMonthDonationsCount int           `json:"thisMonthDonationsCount"`
	LatestDonation          *Donation     `json:"latestDonation,omitempty"`
	Funds                   []Fund        `json:"funds"`
}

// Target is a list view reachable from a dashboard widget.
type Target string

const (
	TargetOfferings Target = "offerings"
	TargetFunds     Target = "funds"
	TargetDonations Target = "donations"
)

var cardColorClasses = map[string]string{
	"blue":   "card-blue",
	"green":  "card-green",
	"purple": "card-purple",
	"orange": "card-orange",
}

// Dashboard computes overviews from Data at a given clock.
type Dashboard struct {
	data Data
	now  func() time.Time
	loc  *time.Location
}

// New creates a dashboard. A nil clock means time.Now, a nil location time.Local.
func New(data Data, now func() time.Time, loc *time.Location) *Dashboard {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Dashboard{data: data, now: now, loc: loc}
}

// Overview assembles every widget.
func (d *Dashboard) Overview() Overview {
	cards := make([]SummaryCard, 0, len(d.data.SummaryCards))
	for _, card := range d.data.SummaryCards {
		card.ColorClass = CardColorClass(card.Color)
		if card.Trend != nil {
			card.TrendIcon = TrendIcon(card.Trend.IsPositive)
			card.TrendClass = TrendClass(card.Trend.IsPositive)
		}
		cards = append(cards, card)
	}

	return Overview{
		ChurchName:              d.data.ChurchName,
		CurrentDate:             d.now().In(d.loc).Format("Monday, January 2, 2006"),
		SummaryCards:            cards,
		Chart:                   d.data.Chart,
		ChartMaxValue:           d.ChartMaxValue(),
		Birthdays:               d.data.Birthdays,
		Anniversaries:           d.data.Anniversaries,
		UpcomingEventsCount:     d.UpcomingEventsCount(),
		QuickStats:              d.data.QuickStats,
		ThisMonthOfferings:      moneyutil.FormatUSD(d.ThisMonthOfferings()),
		LastOffering:            d.LastOffering(),
		TotalFundBalance:        moneyutil.FormatUSD(d.TotalFundBalance()),
		TotalActiveContributors: d.TotalActiveContributors(),
		ThisMonthDonationsCount: d.ThisMonthDonationsCount(),
		LatestDonation:          d.LatestDonation(),
		Funds:                   d.data.Funds,
	}
}

// ThisMonthOfferings sums offerings dated in the current calendar month.
func (d *Dashboard) ThisMonthOfferings() decimal.Decimal {
	total := decimal.Zero
	for _, o := range d.data.Offerings {
		if d.inCurrentMonth(o.Date) {
			total = total.Add(o.Amount)
		}
	}
	return total
}

// LastOffering is the first, most recent, offering.
func (d *Dashboard) LastOffering() *Offering {
	if len(d.data.Offerings) == 0 {
		return nil
	}
	o := d.data.Offerings[0]
	return &o
}

// TotalFundBalance sums every fund balance.
func (d *Dashboard) TotalFundBalance() decimal.Decimal {
	total := decimal.Zero
	for _, f := range d.data.Funds {
		total = total.Add(f.Balance)
	}
	return total
}

// TotalActiveContributors sums contributors across funds.
func (d *Dashboard) TotalActiveContributors() int {
	total := 0
	for _, f := range d.data.Funds {
		total += f.Contributors
	}
	return total
}

// ThisMonthDonationsCount counts donations dated in the current calendar month.
func (d *Dashboard) ThisMonthDonationsCount() int {
	count := 0
	for _, donation := range d.data.Donations {
		if d.inCurrentMonth(donation.Date) {
			count++
		}
	}
	return count
}

// LatestDonation is the first, most recent, donation.
func (d *Dashboard) LatestDonation() *Donation {
	if len(d.data.Donations) == 0 {
		return nil
	}
	donation := d.data.Donations[0]
	return &donation
}

// ChartMaxValue leaves 10% headroom above the tallest bar.
func (d *Dashboard) ChartMaxValue() float64 {
	if len(d.data.Chart) == 0 {
		return 0
	}
	highest := int64(math.MinInt64)
	for _, p := range d.data.Chart {
		if p.Value > highest {
			highest = p.Value
		}
	}
	return float64(highest) * 1.1
}

// UpcomingEventsCount counts birthdays and anniversaries.
func (d *Dashboard) UpcomingEventsCount() int {
	return len(d.data.Birthdays) + len(d.data.Anniversaries)
}

// Navigate answers a request to open a list view. None is built yet, so it
// always returns a not-implemented notice and changes nothing.
func (d *Dashboard) Navigate(target Target) error {
	switch target {
	case TargetOfferings, TargetFunds, TargetDonations:
		title := strings.ToUpper(string(target[:1])) + string(target[1:])
		return errorutil.NewNotImplemented(title+" module will be implemented soon!", map[string]any{"target": string(target)})
	default:
		return errorutil.NewNotFound("dashboard target", map[string]any{"target": string(target)})
	}
}

func (d *Dashboard) inCurrentMonth(date string) bool {
	parsed, err := time.ParseInLocation("2006-01-02", date, d.loc)
	if err != nil {
		return false
	}
	now := d.now().In(d.loc)
	return parsed.Year() == now.Year() && parsed.Month() == now.Month()
}

// CardColorClass maps a card colour to its CSS class, defaulting to blue.
func CardColorClass(color string) string {
	if class, ok := cardColorClasses[color]; ok {
		return class
	}
	return "card-blue"
}

// TrendIcon picks the arrow icon for a trend.
func TrendIcon(isPositive bool) string {
	if isPositive {
		return "trending_up"
	}
	return "trending_down"
}

// TrendClass picks the CSS class for a trend.
func TrendClass(isPositive bool) string {
	if isPositive {
		return "trend-positive"
	}
	return "trend-negative"
}
