package dashboard

import "github.com/shopspring/decimal"

// Data is the raw content behind the dashboard.
type Data struct {
	ChurchName    string
	SummaryCards  []SummaryCard
	Chart         []ChartPoint
	Birthdays     []Birthday
	Anniversaries []Anniversary
	Offerings     []Offering
	Donations     []Donation
	Funds         []Fund
	QuickStats    QuickStats
}

// SampleData returns the static widgets the console ships with.
func SampleData(churchName string) Data {
	return Data{
		ChurchName: churchName,
		SummaryCards: []SummaryCard{
			{Title: "Last Week Sunday Offering", Value: "₹45,200", Icon: "monetization_on", Color: "blue", Trend: &Trend{Value: 12.5, IsPositive: true}},
			{Title: "This Month Offering", Value: "₹1,85,400", Icon: "account_balance_wallet", Color: "green", Trend: &Trend{Value: 8.2, IsPositive: true}},
			{Title: "Total Members", Value: "1,247", Icon: "group", Color: "purple", Trend: &Trend{Value: 3.1, IsPositive: true}},
			{Title: "Active Events", Value: "8", Icon: "event", Color: "orange", Trend: &Trend{Value: 2, IsPositive: false}},
		},
		Chart: []ChartPoint{
			{Name: "Week 1", Value: 42000},
			{Name: "Week 2", Value: 38000},
			{Name: "Week 3", Value: 45200},
			{Name: "Week 4", Value: 41000},
			{Name: "Week 5", Value: 48500},
			{Name: "Week 6", Value: 52000},
		},
		Birthdays: []Birthday{
			{ID: 1, Name: "Sarah Johnson", Date: "2024-01-20", Age: 28},
			{ID: 2, Name: "Michael Chen", Date: "2024-01-22", Age: 35},
			{ID: 3, Name: "Emily Davis", Date: "2024-01-24", Age: 42},
			{ID: 4, Name: "David Wilson", Date: "2024-01-25", Age: 31},
		},
		Anniversaries: []Anniversary{
			{ID: 1, CoupleNames: "John & Mary Smith", Date: "2024-01-21", Years: 15},
			{ID: 2, CoupleNames: "Robert & Lisa Brown", Date: "2024-01-23", Years: 8},
			{ID: 3, CoupleNames: "James & Jennifer Taylor", Date: "2024-01-26", Years: 22},
		},
		Offerings: []Offering{
			{ID: 1, Amount: decimal.NewFromInt(2500), Date: "2024-01-15", Type: "Sunday Service"},
			{ID: 2, Amount: decimal.NewFromInt(1800), Date: "2024-01-08", Type: "Sunday Service"},
			{ID: 3, Amount: decimal.NewFromInt(3200), Date: "2024-01-01", Type: "New Year Service"},
			{ID: 4, Amount: decimal.NewFromInt(2100), Date: "2023-12-25", Type: "Christmas Service"},
		},
		Donations: []Donation{
			{ID: 1, Item: "Church Benches", Value: decimal.NewFromInt(5000), Date: "2024-01-10", Donor: "John Smith"},
			{ID: 2, Item: "Food Items", Value: decimal.NewFromInt(300), Date: "2024-01-08", Donor: "Mary Johnson"},
			{ID: 3, Item: "Cash Donation", Value: decimal.NewFromInt(1000), Date: "2024-01-05", Donor: "David Wilson"},
			{ID: 4, Item: "Sound Equipment", Value: decimal.NewFromInt(2500), Date: "2024-01-03", Donor: "Sarah Brown"},
		},
		Funds: []Fund{
			{ID: 1, Name: "Building Fund", Balance: decimal.NewFromInt(45000), Contributors: 25},
			{ID: 2, Name: "Mission Fund", Balance: decimal.NewFromInt(12000), Contributors: 18},
			{ID: 3, Name: "Youth Fund", Balance: decimal.NewFromInt(8500), Contributors: 12},
			{ID: 4, Name: "Emergency Fund", Balance: decimal.NewFromInt(15000), Contributors: 30},
		},
		QuickStats: QuickStats{
			TotalOfferingsYTD:   decimal.NewFromInt(125000),
			TotalDonationsValue: decimal.NewFromInt(45000),
			NumberOfMembers:     156,
		},
	}
}
