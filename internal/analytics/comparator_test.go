package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTrendPercent(t *testing.T) {
	tests := []struct {
		name     string
		current  string
		previous string
		want     int64
	}{
		{name: "período anterior zerado", current: "500", previous: "0", want: 0},
		{name: "ambos zerados", current: "0", previous: "0", want: 0},
		{name: "crescimento de 50%", current: "150", previous: "100", want: 50},
		{name: "queda de 20%", current: "80", previous: "100", want: -20},
		{name: "estável", current: "100", previous: "100", want: 0},
		{name: "arredonda metade para longe do zero (positivo)", current: "100.5", previous: "100", want: 1},
		{name: "arredonda metade para longe do zero (negativo)", current: "99.5", previous: "100", want: -1},
		{name: "dízima", current: "200", previous: "300", want: -33},
		{name: "queda total", current: "0", previous: "250", want: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTrendPercent(dec(tt.current), dec(tt.previous)))
		})
	}
}

func TestBuildMetricWithTrend(t *testing.T) {
	metric := BuildMetricWithTrend(dec("150"), dec("100"))

	assert.Equal(t, "150", metric.Current.String())
	assert.Equal(t, "100", metric.Previous.String())
	assert.Equal(t, int64(50), metric.TrendPercent)
}
