// Package journal logs the latency and outcome of weather lookups.
package journal

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"weathergrip/internal/domain"
	"weathergrip/internal/eventbus"
)

// record is the half-seen state of one request. The bus runs handlers
// concurrently, so the completion can arrive before the start.
type record struct {
	city      string
	started   time.Time
	finished  time.Time
	status    domain.RequestStatus
	message   string
	hasStart  bool
	hasFinish bool
}

// Stats summarises the lookups seen so far
type Stats struct {
	Succeeded int64
	Failed    int64
	Errors    int64 // ErrorEvents outside lookups
}

// Journal pairs request and completion events
type Journal struct {
	mu          sync.Mutex
	records     *cache.Cache
	unsubscribe []func()

	succeeded atomic.Int64
	failed    atomic.Int64
	errors    atomic.Int64
}

// New subscribes a journal to the bus. Unpaired records expire after ttl.
func New(bus eventbus.EventBus, ttl time.Duration) *Journal {
	j := &Journal{
		records: cache.New(ttl, 2*ttl),
	}
	j.unsubscribe = append(j.unsubscribe,
		bus.Subscribe(eventbus.EventWeatherRequested, j.handleRequested),
		bus.Subscribe(eventbus.EventWeatherCompleted, j.handleCompleted),
		bus.Subscribe(eventbus.EventError, j.handleError),
		bus.Subscribe(eventbus.EventConfigLoaded, j.handleConfig),
		bus.Subscribe(eventbus.EventConfigSaved, j.handleConfig),
	)
	return j
}

func recordKey(id uint64) string {
	return fmt.Sprintf("request:%d", id)
}

func (j *Journal) handleRequested(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.WeatherRequestedEvent)
	if !ok {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	r := j.get(event.RequestID)
	r.city = event.City
	r.started = event.At
	r.hasStart = true
	j.settle(event.RequestID, r)
}

func (j *Journal) handleCompleted(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.WeatherCompletedEvent)
	if !ok {
		return
	}

	switch event.Status {
	case domain.StatusSuccess:
		j.succeeded.Add(1)
	case domain.StatusFailed:
		j.failed.Add(1)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	r := j.get(event.RequestID)
	if r.city == "" {
		r.city = event.City
	}
	r.finished = event.At
	r.status = event.Status
	r.message = event.Message
	r.hasFinish = true
	j.settle(event.RequestID, r)
}

func (j *Journal) handleError(e eventbus.DomainEvent) {
	event, ok := e.(eventbus.ErrorEvent)
	if !ok {
		return
	}
	j.errors.Add(1)
	if event.Err != nil {
		log.Printf("journal: error: %s: %v", event.Message, event.Err)
		return
	}
	log.Printf("journal: error: %s", event.Message)
}

func (j *Journal) handleConfig(e eventbus.DomainEvent) {
	switch event := e.(type) {
	case eventbus.ConfigLoadedEvent:
		log.Printf("journal: config loaded from %s (endpoint %s)", event.Path, event.Endpoint)
	case eventbus.ConfigSavedEvent:
		log.Printf("journal: config saved to %s", event.Path)
	}
}

// get must be called with mu held
func (j *Journal) get(id uint64) record {
	if v, found := j.records.Get(recordKey(id)); found {
		return v.(record)
	}
	return record{}
}

// settle logs and forgets a complete record, or stores a partial one.
// Must be called with mu held.
func (j *Journal) settle(id uint64, r record) {
	if !(r.hasStart && r.hasFinish) {
		j.records.Set(recordKey(id), r, cache.DefaultExpiration)
		return
	}
	j.records.Delete(recordKey(id))

	took := r.finished.Sub(r.started)
	if r.status == domain.StatusFailed {
		log.Printf("journal: request %d for %q failed after %s: %s", id, r.city, took, r.message)
		return
	}
	log.Printf("journal: request %d for %q succeeded in %s", id, r.city, took)
}

// Pending returns the number of requests seen only half-way
func (j *Journal) Pending() int {
	return j.records.ItemCount()
}

// Stats returns outcome counters
func (j *Journal) Stats() Stats {
	return Stats{Succeeded: j.succeeded.Load(), Failed: j.failed.Load(), Errors: j.errors.Load()}
}

// Close unsubscribes from the bus and logs a summary
func (j *Journal) Close() {
	for _, unsubscribe := range j.unsubscribe {
		unsubscribe()
	}
	j.unsubscribe = nil

	s := j.Stats()
	log.Printf("journal: %d lookups succeeded, %d failed, %d unpaired", s.Succeeded, s.Failed, j.Pending())
}
