package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eveneto/sistema-crm-simples-sub001/internal/domain"
)

func TestBuildRevenueData(t *testing.T) {
	deals := []domain.Deal{
		wonDeal("D1", "1000", day(2024, 3, 1), time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)),
		wonDeal("D2", "500.25", day(2024, 3, 1), time.Date(2024, 3, 14, 18, 0, 0, 0, time.UTC)),
		wonDeal("D3", "300", day(2024, 2, 20), time.Date(2024, 3, 8, 11, 0, 0, 0, time.UTC)),
		lostDeal("D4", "800", time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)),
		openDeal("D5", "STG1", "1000", intPtr(50), timePtr(day(2024, 3, 8))),
		openDeal("D6", "STG1", "700", nil, timePtr(day(2024, 3, 15))),
		openDeal("D7", "STG1", "999", intPtr(100), timePtr(day(2024, 3, 16))),
		openDeal("D8", "STG2", "200", intPtr(25), timePtr(day(2024, 3, 15))),
		openDeal("D9", "STG2", "400", intPtr(90), nil),
	}

	result, err := BuildRevenueData(deals, domain.Period7Days, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, domain.Period7Days, result.Period)
	assert.Equal(t, fixedNow, result.Range.End)
	assert.Equal(t, "1500.25", result.Realized.String())
	assert.Equal(t, "550", result.Expected.String())

	assert.Equal(t, "1500.25", result.Trend.Current.String())
	assert.Equal(t, "300", result.Trend.Previous.String())
	assert.Equal(t, int64(400), result.Trend.TrendPercent)

	require.Len(t, result.Series, 8)
	assert.Equal(t, "2024-03-08", result.Series[0].Date)
	assert.Equal(t, "0", result.Series[0].Revenue.String())
	assert.Equal(t, "2024-03-10", result.Series[2].Date)
	assert.Equal(t, "1000", result.Series[2].Revenue.String())
	assert.Equal(t, 1, result.Series[2].Deals)
	assert.Equal(t, "2024-03-14", result.Series[6].Date)
	assert.Equal(t, "500.25", result.Series[6].Revenue.String())
	assert.Equal(t, "2024-03-15", result.Series[7].Date)
}

func TestBuildRevenueData_SeriesCoversEveryDayOnce(t *testing.T) {
	for _, period := range []domain.Period{domain.Period7Days, domain.Period30Days, domain.Period90Days} {
		t.Run(string(period), func(t *testing.T) {
			result, err := BuildRevenueData(nil, period, fixedNow)
			require.NoError(t, err)

			days, _ := PeriodDays(period)
			require.Len(t, result.Series, days+1)

			seen := make(map[string]bool, len(result.Series))
			for i, point := range result.Series {
				assert.False(t, seen[point.Date], "dia repetido %s", point.Date)
				seen[point.Date] = true
				assert.True(t, point.Revenue.IsZero())
				if i > 0 {
					prev, _ := time.Parse("2006-01-02", result.Series[i-1].Date)
					assert.Equal(t, prev.AddDate(0, 0, 1).Format("2006-01-02"), point.Date)
				}
			}
		})
	}
}

func TestBuildRevenueData_EmptyDataset(t *testing.T) {
	result, err := BuildRevenueData([]domain.Deal{}, domain.Period30Days, fixedNow)
	require.NoError(t, err)

	assert.True(t, result.Realized.IsZero())
	assert.True(t, result.Expected.IsZero())
	assert.Equal(t, int64(0), result.Trend.TrendPercent)
}

func TestBuildRevenueData_InvalidPeriod(t *testing.T) {
	result, err := BuildRevenueData(nil, domain.Period("365d"), fixedNow)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestDailyRevenueSeries_MidnightBoundaries(t *testing.T) {
	r := domain.DateRange{Start: day(2024, 3, 1), End: day(2024, 3, 3)}
	deals := []domain.Deal{
		wonDeal("D1", "10", day(2024, 2, 1), day(2024, 3, 1)),
		wonDeal("D2", "20", day(2024, 2, 1), day(2024, 3, 3)),
	}

	series := DailyRevenueSeries(deals, r)

	require.Len(t, series, 2)
	assert.Equal(t, "10", series[0].Revenue.String())
	assert.Equal(t, "0", series[1].Revenue.String())
}
