package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		name      string
		completed []int
		total     int
		want      int
	}{
		{"no lessons", nil, 0, 0},
		{"none completed", nil, 4, 0},
		{"half", []int{1, 2}, 4, 50},
		{"rounds up", []int{1, 2}, 3, 67},
		{"rounds down", []int{1}, 3, 33},
		{"all", []int{1, 2, 3}, 3, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Progress{CompletedLessons: tc.completed, TotalLessons: tc.total}
			assert.Equal(t, tc.want, p.Percent())
		})
	}
}

func TestProgressCompleted(t *testing.T) {
	p := Progress{CompletedLessons: []int{5, 9}}

	assert.True(t, p.Completed(5))
	assert.True(t, p.Completed(9))
	assert.False(t, p.Completed(1))
	assert.False(t, Progress{}.Completed(5))
}

func TestCourseDisplayStatus(t *testing.T) {
	assert.Equal(t, "approved", Course{Status: "approved"}.DisplayStatus())
	assert.Equal(t, "Pending", Course{}.DisplayStatus())
}
