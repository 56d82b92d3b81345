package metrics

import (
	"github.com/x-xyz/ensapi/base/log"
)

// LogClient writes metrics to the debug log. It stands in for dogstatsd
// when no agent is configured, so resolution counters stay visible locally.
type LogClient struct{}

func (lc *LogClient) emit(kind, name string, value interface{}, tags []string) {
	log.Log().WithFields(log.Fields{
		"metric": name,
		"kind":   kind,
		"val":    value,
		"tags":   tags,
	}).Debug("metric")
}

func (lc *LogClient) Gauge(name string, value float64, tags []string, rate float64) error {
	lc.emit("gauge", name, value, tags)
	return nil
}

func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	lc.emit("count", name, value, tags)
	return nil
}

func (lc *LogClient) Histogram(name string, value float64, tags []string, rate float64) error {
	lc.emit("histogram", name, value, tags)
	return nil
}

// TimeInMilliseconds is logged as a histogram of milliseconds, as dogstatsd treats it.
func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	lc.emit("time_ms", name, value, tags)
	return nil
}
