package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avc/reading-billing/internal/domain"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Options параметры фоновой очистки сессий
type Options struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	MaxDuration  time.Duration
	BatchSize    int
}

// Pool представляет пул воркеров, принудительно завершающих
// сессии, которые превысили максимальную длительность
type Pool struct {
	opts       Options
	queue      chan uuid.UUID
	sessions   domain.SessionRepository
	reading    domain.ReadingService
	clock      domain.Clock
	terminated prometheus.Counter
	logger     *zap.Logger
	wg         sync.WaitGroup
	scannerWG  sync.WaitGroup
}

// NewPool создает новый worker pool
func NewPool(
	opts Options,
	sessions domain.SessionRepository,
	reading domain.ReadingService,
	clock domain.Clock,
	registerer prometheus.Registerer,
	logger *zap.Logger,
) *Pool {
	terminated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reading_sessions_expired_total",
		Help: "Number of reading sessions terminated for exceeding the time limit.",
	})
	if registerer != nil {
		registerer.MustRegister(terminated)
	}

	return &Pool{
		opts:       opts,
		queue:      make(chan uuid.UUID, opts.QueueSize),
		sessions:   sessions,
		reading:    reading,
		clock:      clock,
		terminated: terminated,
		logger:     logger,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.opts.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер просроченных сессий
	p.scannerWG.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool.
// Вызывается после отмены контекста, переданного в Start.
func (p *Pool) Stop() {
	p.scannerWG.Wait()
	close(p.queue)
	p.wg.Wait()
}

// worker завершает сессии из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case sessionID, ok := <-p.queue:
			if !ok {
				return
			}
			p.expireSession(ctx, sessionID)
		}
	}
}

// scanner периодически ищет просроченные сессии
func (p *Pool) scanner(ctx context.Context) {
	defer p.scannerWG.Done()

	ticker := time.NewTicker(p.opts.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanExpiredSessions(ctx)
		}
	}
}

// scanExpiredSessions отправляет просроченные сессии в очередь
func (p *Pool) scanExpiredSessions(ctx context.Context) {
	cutoff := p.clock.Now().Add(-p.opts.MaxDuration)

	ids, err := p.sessions.GetExpiredSessionIDs(ctx, cutoff, p.opts.BatchSize)
	if err != nil {
		p.logger.Error("failed to get expired sessions", zap.Error(err))
		return
	}

	for _, id := range ids {
		select {
		case p.queue <- id:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, сессия попадет в следующий проход
			p.logger.Warn("queue is full, skipping session", zap.Stringer("session_id", id))
		}
	}
}

// expireSession завершает одну сессию
func (p *Pool) expireSession(ctx context.Context, sessionID uuid.UUID) {
	p.logger.Debug("expiring session", zap.Stringer("session_id", sessionID))

	terminated, err := p.reading.ExpireSession(ctx, sessionID, p.opts.MaxDuration)
	if err != nil && !errors.Is(err, domain.ErrDispatchFailure) {
		p.logger.Error("failed to expire session",
			zap.Stringer("session_id", sessionID),
			zap.Error(err),
		)
		return
	}

	if !terminated {
		return
	}

	p.terminated.Inc()
	p.logger.Info("session terminated by timeout",
		zap.Stringer("session_id", sessionID),
		zap.Duration("max_duration", p.opts.MaxDuration),
		zap.NamedError("dispatch_error", err),
	)
}
