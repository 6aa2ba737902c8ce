package util

import "os-scheduler-sim/internal/responses"

// CalculateAverage averages the metrics of completed processes only. With no
// completed process every average is zero.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64
	var proccessCount float64

	for _, proccess := range proccessDetails {
		if !proccess.Completed() {
			continue
		}
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
		proccessCount++
	}

	if proccessCount == 0 {
		return
	}

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTimeAroundTime = turnAroundTimeSum / proccessCount
	return
}
