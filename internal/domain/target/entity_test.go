package target

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAchievementPercent(t *testing.T) {
	tests := []struct {
		name     string
		set      string
		achieved string
		want     int
	}{
		{"no target set", "0", "50000", 0},
		{"nothing achieved", "100000", "0", 0},
		{"fully achieved", "100000", "100000", 100},
		{"overachieved", "100000", "125000", 125},
		{"rounds to nearest", "30000", "20000", 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tgt := Target{
				TargetSet:      decimal.RequireFromString(tt.set),
				TargetAchieved: decimal.RequireFromString(tt.achieved),
			}
			assert.Equal(t, tt.want, tgt.AchievementPercent())
		})
	}
}
