package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirene/bombeiros-api/internal/api/metrics"
	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	writeTimeout   = 5 * time.Second
)

// ErrQueueFull is returned by Record when the worker channel has no room.
var ErrQueueFull = errors.New("audit queue full")

// ErrStopped is returned by Record after Stop.
var ErrStopped = errors.New("audit dispatcher stopped")

// Dispatcher writes audit entries in the background. Entries are sharded by
// militar id so one militar's entries are persisted in order.
type Dispatcher struct {
	workers []chan domain.LogAuditoria
	repo    ports.AuditRepository
	log     zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

var _ ports.AuditRecorder = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.LogAuditoria, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.LogAuditoria, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers drain their channel and exit
// after Stop.
func (d *Dispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Stop closes the channels and waits for pending entries to be written or for
// ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		for _, ch := range d.workers {
			close(ch)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Record hands the entry to the worker owning its militar id without waiting.
// A full channel drops the entry.
func (d *Dispatcher) Record(entry domain.LogAuditoria) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	idx := d.shardIndex(entry.IDMilitar)
	select {
	case d.workers[idx] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		metrics.AuditEntriesTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("militar_id", entry.IDMilitar).
			Str("acao", entry.Acao).
			Int("worker_id", idx).
			Msg("audit queue full, entry dropped")
		return ErrQueueFull
	}
}

// shardIndex maps a militar id deterministically to a worker index.
func (d *Dispatcher) shardIndex(idMilitar string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(idMilitar))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(id int, ch <-chan domain.LogAuditoria) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for entry := range ch {
		metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
		d.write(id, entry)
	}
}

func (d *Dispatcher) write(worker int, entry domain.LogAuditoria) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	start := time.Now()
	err := d.repo.Insert(ctx, &entry)
	metrics.AuditWriteDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.AuditEntriesTotal.WithLabelValues("failed").Inc()
		d.log.Error().Err(err).
			Str("militar_id", entry.IDMilitar).
			Str("acao", entry.Acao).
			Int("worker_id", worker).
			Msg("audit write failed")
		return
	}
	metrics.AuditEntriesTotal.WithLabelValues("written").Inc()
}
