package dashboard

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offerly/console/pkg/util/errorutil"
)

func newTestDashboard(now time.Time) *Dashboard {
	return New(SampleData("Grace Community Church"), func() time.Time { return now }, time.UTC)
}

func TestOverviewInJanuary2024(t *testing.T) {
	d := newTestDashboard(time.Date(2024, 1, 18, 9, 0, 0, 0, time.UTC))

	assert.True(t, d.ThisMonthOfferings().Equal(decimal.NewFromInt(7500)))
	assert.Equal(t, 4, d.ThisMonthDonationsCount())

	o := d.Overview()
	assert.Equal(t, "Grace Community Church", o.ChurchName)
	assert.Equal(t, "Thursday, January 18, 2024", o.CurrentDate)
	assert.Equal(t, "$7,500.00", o.ThisMonthOfferings)
	assert.Equal(t, "$80,500.00", o.TotalFundBalance)
	assert.Equal(t, 85, o.TotalActiveContributors)
	assert.Equal(t, 7, o.UpcomingEventsCount)
	assert.InDelta(t, 57200, o.ChartMaxValue, 0.001)
	require.NotNil(t, o.LastOffering)
	assert.Equal(t, 1, o.LastOffering.ID)
	require.NotNil(t, o.LatestDonation)
	assert.Equal(t, "Church Benches", o.LatestDonation.Item)
}

func TestOverviewOutsideSampleMonth(t *testing.T) {
	d := newTestDashboard(time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC))

	assert.True(t, d.ThisMonthOfferings().IsZero())
	assert.Equal(t, 0, d.ThisMonthDonationsCount())
}

func TestSummaryCardDecorations(t *testing.T) {
	o := newTestDashboard(time.Now()).Overview()

	require.Len(t, o.SummaryCards, 4)
	assert.Equal(t, "card-green", o.SummaryCards[1].ColorClass)
	assert.Equal(t, "trending_up", o.SummaryCards[0].TrendIcon)
	assert.Equal(t, "trend-negative", o.SummaryCards[3].TrendClass)
	assert.Equal(t, "card-blue", CardColorClass("teal"))
}

func TestEmptyData(t *testing.T) {
	d := New(Data{}, nil, nil)

	assert.Nil(t, d.LastOffering())
	assert.Nil(t, d.LatestDonation())
	assert.Zero(t, d.ChartMaxValue())
}

func TestNavigateIsStubbed(t *testing.T) {
	d := newTestDashboard(time.Now())

	tests := []struct {
		target  Target
		message string
	}{
		{target: TargetOfferings, message: "Offerings module will be implemented soon!"},
		{target: TargetFunds, message: "Funds module will be implemented soon!"},
		{target: TargetDonations, message: "Donations module will be implemented soon!"},
	}
	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			var de *errorutil.DomainError
			require.True(t, errors.As(d.Navigate(tt.target), &de))
			assert.Equal(t, "NOT_IMPLEMENTED", de.Code)
			assert.Equal(t, http.StatusNotImplemented, de.HTTPStatus)
			assert.Equal(t, tt.message, de.Message)
		})
	}

	var de *errorutil.DomainError
	require.True(t, errors.As(d.Navigate("events"), &de))
	assert.Equal(t, "NOT_FOUND", de.Code)
}
