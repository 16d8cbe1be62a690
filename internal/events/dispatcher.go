package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc/reading-billing/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// HandlerFunc обрабатывает одно доменное событие
type HandlerFunc func(ctx context.Context, event domain.Event) error

type registration struct {
	name    string
	handler HandlerFunc
}

// Dispatcher доставляет события обработчикам, зарегистрированным по типу события.
// Реестр заполняется при старте приложения, до первого Dispatch.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[domain.EventKind][]registration
	all      []registration
	metrics  *Metrics
	logger   *zap.Logger
}

// NewDispatcher создает пустой диспетчер
func NewDispatcher(logger *zap.Logger, metrics *Metrics) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[domain.EventKind][]registration),
		metrics:  metrics,
		logger:   logger,
	}
}

// Register добавляет обработчик для указанных типов событий
func (d *Dispatcher) Register(name string, handler HandlerFunc, kinds ...domain.EventKind) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, kind := range kinds {
		d.handlers[kind] = append(d.handlers[kind], registration{name: name, handler: handler})
	}
}

// RegisterAll добавляет обработчик для всех типов событий
func (d *Dispatcher) RegisterAll(name string, handler HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.all = append(d.all, registration{name: name, handler: handler})
}

// Dispatch доставляет события по порядку. Обработчики одного события
// выполняются параллельно и изолированно: ошибка или паника одного
// не отменяет остальные. Dispatch ждет завершения всех обработчиков.
// Ошибки всех событий объединяются в *domain.DispatchError.
func (d *Dispatcher) Dispatch(ctx context.Context, events domain.Events) error {
	var errs error
	for _, event := range events {
		if err := d.dispatchOne(ctx, event); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func (d *Dispatcher) dispatchOne(ctx context.Context, event domain.Event) error {
	regs := d.resolve(event.Kind())
	if len(regs) == 0 {
		return nil
	}

	errs := make([]error, len(regs))
	var wg sync.WaitGroup
	for i, reg := range regs {
		wg.Add(1)
		go func(i int, reg registration) {
			defer wg.Done()
			errs[i] = d.invoke(ctx, reg, event)
		}(i, reg)
	}
	wg.Wait()

	combined := multierr.Combine(errs...)
	d.metrics.observe(event.Kind(), len(regs), len(multierr.Errors(combined)))
	if combined == nil {
		return nil
	}

	return &domain.DispatchError{Kind: event.Kind(), Err: combined}
}

func (d *Dispatcher) invoke(ctx context.Context, reg registration, event domain.Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handler %s panicked: %v", reg.name, rec)
		}
		if err != nil {
			d.logger.Error("event handler failed",
				zap.String("handler", reg.name),
				zap.String("event", string(event.Kind())),
				zap.Stringer("aggregate_id", event.AggregateID()),
				zap.Error(err),
			)
		}
	}()

	if err := reg.handler(ctx, event); err != nil {
		return fmt.Errorf("handler %s: %w", reg.name, err)
	}
	return nil
}

func (d *Dispatcher) resolve(kind domain.EventKind) []registration {
	d.mu.RLock()
	defer d.mu.RUnlock()

	regs := make([]registration, 0, len(d.handlers[kind])+len(d.all))
	regs = append(regs, d.handlers[kind]...)
	regs = append(regs, d.all...)
	return regs
}
