package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(ms []Milestone) float64 {
	var total float64
	for _, m := range ms {
		total += m.Amount
	}
	return roundCents(total)
}

func TestDefaultMilestones_FixedThousand(t *testing.T) {
	ms := DefaultMilestones(1000)
	require.Len(t, ms, 3)
	assert.Equal(t, 300.0, ms[0].Amount)
	assert.Equal(t, 500.0, ms[1].Amount)
	assert.Equal(t, 200.0, ms[2].Amount)
	assert.Equal(t, 1000.0, sum(ms))
}

func TestDefaultMilestones_RemainderGoesToLast(t *testing.T) {
	ms := DefaultMilestones(1234.56)
	require.Len(t, ms, 3)
	assert.Equal(t, 370.37, ms[0].Amount)
	assert.Equal(t, 617.28, ms[1].Amount)
	assert.Equal(t, 246.91, ms[2].Amount)
	assert.Equal(t, 1234.56, sum(ms))
}

func TestDefaultMilestones_Zero(t *testing.T) {
	ms := DefaultMilestones(0)
	require.Len(t, ms, 3)
	assert.Equal(t, 0.0, sum(ms))
}

func TestScaleMilestones_KeepsProportions(t *testing.T) {
	ms := ScaleMilestones(DefaultMilestones(1000), 800)
	require.Len(t, ms, 3)
	assert.Equal(t, 240.0, ms[0].Amount)
	assert.Equal(t, 400.0, ms[1].Amount)
	assert.Equal(t, 160.0, ms[2].Amount)
	assert.Equal(t, "Core development", ms[1].Name)
}

func TestScaleMilestones_EmptyFallsBackToDefault(t *testing.T) {
	ms := ScaleMilestones(nil, 100)
	assert.Equal(t, 100.0, sum(ms))
	assert.Len(t, ms, 3)
}

func TestProgress(t *testing.T) {
	ms := DefaultMilestones(1000)
	assert.Equal(t, 0, Progress(ms))

	ms[0].Completed = true
	assert.Equal(t, 30, Progress(ms))

	ms[1].Completed = true
	ms[2].Completed = true
	assert.Equal(t, 100, Progress(ms))

	assert.Equal(t, 0, Progress(nil))
	assert.Equal(t, 50, Progress([]Milestone{{Completed: true}, {}}))
}
