// Package dashboard assembles the church administrator's overview: static
// summary widgets plus figures derived from the sample offerings, donations
// and funds.
package dashboard

import "github.com/shopspring/decimal"

// Trend is the week-over-week change shown on a summary card.
type Trend struct {
	Value      float64 `json:"value"`
	IsPositive bool    `json:"isPositive"`
}

// SummaryCard is one of the headline tiles.
type SummaryCard struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	ColorClass string `json:"colorClass"`
	Trend      *Trend `json:"trend,omitempty"`
	TrendIcon  string `json:"trendIcon,omitempty"`
	TrendClass string `json:"trendClass,omitempty"`
}

// ChartPoint is a bar of the weekly offerings chart.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Birthday is an upcoming member birthday.
type Birthday struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
	Age  int    `json:"age,omitempty"`
}

// Anniversary is an upcoming wedding anniversary.
type Anniversary struct {
	ID          int    `json:"id"`
	CoupleNames string `json:"coupleNames"`
	Date        string `json:"date"`
	Years       int    `json:"years,omitempty"`
}

// Offering is a service collection.
type Offering struct {
	ID     int             `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
	Type   string          `json:"type"`
}

// Donation is a recorded gift with an estimated value.
type Donation struct {
	ID    int             `json:"id"`
	Item  string          `json:"item"`
	Value decimal.Decimal `json:"value"`
	Date  string          `json:"date"`
	Donor string          `json:"donor"`
}

// Fund is a designated fund balance.
type Fund struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Balance      decimal.Decimal `json:"balance"`
	Contributors int             `json:"contributors"`
}

// QuickStats are the year-to-date headline numbers.
type QuickStats struct {
	TotalOfferingsYTD   decimal.Decimal `json:"totalOfferingsYTD"`
	TotalDonationsValue decimal.Decimal `json:"totalDonationsValue"`
	NumberOfMembers     int             `json:"numberOfMembers"`
}
