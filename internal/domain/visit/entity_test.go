package visit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCompliance(t *testing.T) {
	tests := []struct {
		name   string
		visits []Visit
		want   Compliance
	}{
		{
			name: "no visits",
			want: Compliance{},
		},
		{
			name: "all completed",
			visits: []Visit{
				{Status: VisitStatusCompleted},
				{Status: VisitStatusCompleted},
			},
			want: Compliance{Planned: 2, Completed: 2, Rate: 100},
		},
		{
			name: "mixed month",
			visits: []Visit{
				{Status: VisitStatusCompleted},
				{Status: VisitStatusCompleted},
				{Status: VisitStatusMissed},
				{Status: VisitStatusPlanned},
			},
			want: Compliance{Planned: 4, Completed: 2, Missed: 1, Rate: 50},
		},
		{
			name: "rounds to nearest",
			visits: []Visit{
				{Status: VisitStatusCompleted},
				{Status: VisitStatusCompleted},
				{Status: VisitStatusMissed},
			},
			// 2/3 = 66.7% -> 67
			want: Compliance{Planned: 3, Completed: 2, Missed: 1, Rate: 67},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCompliance(tt.visits))
		})
	}
}
