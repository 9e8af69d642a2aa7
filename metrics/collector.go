// Package metrics exposes live view activity as Prometheus metrics.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/rocket-range/engine"
	"github.com/lixenwraith/rocket-range/events"
)

// SceneCollector bundles the scene metrics and counts them from routed
// scene events. It is registered on every page's live view.
type SceneCollector struct {
	gatherer prometheus.Gatherer

	Launches     *prometheus.CounterVec
	Removals     *prometheus.CounterVec
	Added        prometheus.Counter
	Crashes      prometheus.Counter
	Collisions   prometheus.Counter
	Pages        prometheus.Counter
	Pending      prometheus.Gauge
	PageDuration prometheus.Histogram
}

// NewSceneCollector registers scene metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewSceneCollector(reg prometheus.Registerer) (*SceneCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	launches, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rockets_launches_total",
		Help: "Launched sprites, labeled by catalog object.",
	}, []string{"object"}), "rockets_launches_total")
	if err != nil {
		return nil, err
	}
	removals, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rockets_removals_total",
		Help: "Objects taken out of the view, labeled by how they left (disappear or haul).",
	}, []string{"mode"}), "rockets_removals_total")
	if err != nil {
		return nil, err
	}
	added, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rockets_objects_added_total",
		Help: "Static objects placed into the view.",
	}), "rockets_objects_added_total")
	if err != nil {
		return nil, err
	}
	crashes, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rockets_crashes_total",
		Help: "Rocket crash effects shown.",
	}), "rockets_crashes_total")
	if err != nil {
		return nil, err
	}
	collisions, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rockets_collisions_total",
		Help: "Missile collision bursts shown.",
	}), "rockets_collisions_total")
	if err != nil {
		return nil, err
	}
	pages, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rockets_pages_completed_total",
		Help: "Pages played to completion.",
	}), "rockets_pages_completed_total")
	if err != nil {
		return nil, err
	}
	pending, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rockets_pending_transitions",
		Help: "Scheduled transitions that have not completed yet.",
	}), "rockets_pending_transitions")
	if err != nil {
		return nil, err
	}
	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rockets_page_duration_seconds",
		Help:    "Scene time from page start until its last transition completed.",
		Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 120},
	}), "rockets_page_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &SceneCollector{
		gatherer:     gatherer,
		Launches:     launches,
		Removals:     removals,
		Added:        added,
		Crashes:      crashes,
		Collisions:   collisions,
		Pages:        pages,
		Pending:      pending,
		PageDuration: duration,
	}, nil
}

// Attach registers c on lv and mirrors its barrier count into the pending gauge
func (c *SceneCollector) Attach(lv *engine.LiveView) {
	lv.Register(c)
	lv.SetCountHook(c.SetPending)
	c.SetPending(lv.Pending())
}

// SetPending sets the pending transition gauge
func (c *SceneCollector) SetPending(n int) {
	if c == nil || c.Pending == nil {
		return
	}
	c.Pending.Set(float64(n))
}

// HandleEvent counts one scene event
func (c *SceneCollector) HandleEvent(_ *engine.LiveView, ev events.SceneEvent) {
	if c == nil {
		return
	}
	switch ev.Type {
	case events.EventObjectAdded:
		c.Added.Inc()
	case events.EventLaunched:
		object := "unknown"
		if p, ok := ev.Payload.(*events.LaunchPayload); ok {
			object = p.Object.String()
		}
		c.Launches.WithLabelValues(object).Inc()
	case events.EventCrash:
		c.Crashes.Inc()
	case events.EventCollision:
		c.Collisions.Inc()
	case events.EventDisappear:
		c.Removals.WithLabelValues("disappear").Inc()
	case events.EventRemoved:
		c.Removals.WithLabelValues("haul").Inc()
	case events.EventPageDone:
		c.Pages.Inc()
		c.PageDuration.Observe(ev.At.Seconds())
	}
}

// EventTypes returns the counted events
func (c *SceneCollector) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventObjectAdded,
		events.EventLaunched,
		events.EventCrash,
		events.EventCollision,
		events.EventDisappear,
		events.EventRemoved,
		events.EventPageDone,
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SceneCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
