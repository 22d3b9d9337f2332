package observe

import (
	"github.com/prometheus/client_golang/prometheus"

	"nyxventure/pkg/types"
)

var (
	modelEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nyx",
			Subsystem: "model",
			Name:      "events_total",
			Help:      "Total number of model events observed",
		},
		[]string{"channel", "kind"},
	)

	bubbleDepth = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "nyx",
			Subsystem: "model",
			Name:      "bubble_depth",
			Help:      "Hops between the game and the origin of bubble events",
			Buckets:   prometheus.LinearBuckets(0, 1, 6),
		},
	)

	streamSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "nyx",
			Subsystem: "stream",
			Name:      "subscribers",
			Help:      "Live event subscribers",
		},
	)

	streamDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "nyx",
			Subsystem: "stream",
			Name:      "dropped_total",
			Help:      "Events dropped because a subscriber buffer was full",
		},
	)
)

func init() {
	prometheus.MustRegister(modelEventsTotal, bubbleDepth, streamSubscribers, streamDroppedTotal)
}

// Metrics counts events by channel and kind and records bubble depth.
type Metrics struct{}

func (Metrics) Publish(ev types.Event) {
	modelEventsTotal.WithLabelValues(ev.Channel, ev.Kind).Inc()
	if ev.Channel == types.ChannelBubble {
		bubbleDepth.Observe(float64(ev.Depth))
	}
}
