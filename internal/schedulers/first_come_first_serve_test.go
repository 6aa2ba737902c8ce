package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"os-scheduler-sim/internal/core"
)

func TestFirstComeFirstServeGolden(t *testing.T) {
	events, processes, _ := runEngine(FirstComeFirstServe{}, 10,
		job("A", 0, 3), job("B", 1, 2), job("C", 8, 1))

	assertEvents(t, []core.Event{
		core.Arrived(0, "A"),
		core.Selected(0, "A", 3),
		core.Arrived(1, "B"),
		core.Finished(3, "A"),
		core.Selected(3, "B", 2),
		core.Finished(5, "B"),
		core.Idle(5),
		core.Idle(6),
		core.Idle(7),
		core.Arrived(8, "C"),
		core.Selected(8, "C", 1),
		core.Finished(9, "C"),
		core.Idle(9),
	}, events)

	p := byName(processes)
	assert.Equal(t, 3, p["B"].StartTime)
	assert.Equal(t, 5, p["B"].FinishTime)
	assert.Equal(t, 0, p["C"].Remaining)
}

func TestFirstComeFirstServeStableOnEqualArrival(t *testing.T) {
	events, _, _ := runEngine(FirstComeFirstServe{}, 5, job("A", 0, 2), job("B", 0, 1))

	assertEvents(t, []core.Event{
		core.Arrived(0, "A"),
		core.Arrived(0, "B"),
		core.Selected(0, "A", 2),
		core.Finished(2, "A"),
		core.Selected(2, "B", 1),
		core.Finished(3, "B"),
		core.Idle(3),
		core.Idle(4),
	}, events)
}

func TestFirstComeFirstServeHorizonCutoff(t *testing.T) {
	events, processes, _ := runEngine(FirstComeFirstServe{}, 3, job("A", 0, 4), job("B", 1, 1), job("C", 5, 1))

	assertEvents(t, []core.Event{
		core.Arrived(0, "A"),
		core.Selected(0, "A", 4),
		core.Arrived(1, "B"),
	}, events)

	p := byName(processes)
	assert.Equal(t, 0, p["A"].StartTime)
	assert.False(t, p["A"].Finished())
	assert.Equal(t, 1, p["A"].Remaining)
	assert.False(t, p["B"].Started())
	assert.False(t, p["C"].Started())
}

func TestFirstComeFirstServeFinishOnHorizon(t *testing.T) {
	events, processes, _ := runEngine(FirstComeFirstServe{}, 3, job("A", 0, 3))

	assertEvents(t, []core.Event{
		core.Arrived(0, "A"),
		core.Selected(0, "A", 3),
		core.Finished(3, "A"),
	}, events)
	assert.Equal(t, 3, processes[0].FinishTime)
}

func TestFirstComeFirstServeOrderPreserving(t *testing.T) {
	_, processes, _ := runEngine(FirstComeFirstServe{}, 100,
		job("D", 9, 2), job("A", 0, 5), job("C", 4, 7), job("B", 1, 1))

	sorted := sortByArrival(processes)
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].FinishTime, sorted[i].StartTime,
			"%s must finish before %s starts", sorted[i-1].Name, sorted[i].Name)
	}
}
