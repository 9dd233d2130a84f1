package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// NamesCollector tracks the name store operations.
type NamesCollector struct {
	picks    *prometheus.CounterVec
	added    prometheus.Counter
	rejected prometheus.Counter
	stored   prometheus.Gauge
}

// NewNamesCollector creates the collectors and registers them on reg.
func NewNamesCollector(reg prometheus.Registerer) (*NamesCollector, error) {
	c := &NamesCollector{
		picks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "names",
			Name:      "picks_total",
			Help:      "Random name picks by outcome.",
		}, []string{"outcome"}),
		added: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "names",
			Name:      "added_total",
			Help:      "Names appended to the store.",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "names",
			Name:      "rejected_total",
			Help:      "Names rejected by validation.",
		}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "names",
			Name:      "stored",
			Help:      "Names currently held by the store.",
		}),
	}

	for _, col := range []prometheus.Collector{c.picks, c.added, c.rejected, c.stored} {
		if err := reg.Register(col); err != nil {
			return nil, errors.Join(ErrRegister, err)
		}
	}
	return c, nil
}

func (c *NamesCollector) NamePicked() {
	c.picks.WithLabelValues("found").Inc()
}

func (c *NamesCollector) PickMissed() {
	c.picks.WithLabelValues("empty").Inc()
}

// NameAdded counts an append and records the new store size.
func (c *NamesCollector) NameAdded(total int) {
	c.added.Inc()
	c.stored.Set(float64(total))
}

func (c *NamesCollector) NameRejected() {
	c.rejected.Inc()
}

// StoreSize records the store size without counting an append.
func (c *NamesCollector) StoreSize(total int) {
	c.stored.Set(float64(total))
}
