package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "fx-service",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до сервиса
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// PayoutWorker - фоновая конвертация выплат в валюту получателя
type PayoutWorker struct {
	Payouts      services.PayoutsService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewPayoutWorker - конструктор обработчика выплат
func NewPayoutWorker(payouts services.PayoutsService, batchSize int, pollInterval time.Duration) *PayoutWorker {
	if batchSize <= 0 {
		batchSize = 10
	}
	if pollInterval <= 0 {
		pollInterval = 5 * time.Second
	}
	return &PayoutWorker{
		Payouts:      payouts,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    batchSize,
		PollInterval: pollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *PayoutWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *PayoutWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *PayoutWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("PayoutWorker signal stop")
			return
		case <-ctx.Done():
			logger.Info("PayoutWorker context done")
			return
		case <-ticker.C:
			w.ProcessPayouts(ctx)
		}
	}
}

// ProcessPayouts - обработка пачки выплат
func (w *PayoutWorker) ProcessPayouts(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), "unavailable. Waiting...")
		return
	}

	payouts, err := w.Payouts.GetProcessingPayouts(ctx, w.BatchSize)
	if err != nil {
		logger.Error("error get payouts for processing", err)
		return
	}

	for i, payout := range payouts {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Payouts.ProcessPayout(ctx, payout)
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			// автомат разомкнулся посреди пачки: необработанные выплаты возвращаются
			logger.Warn(w.Breaker.Name(), "opened, releasing payouts:", len(payouts)-i)
			if err := w.Payouts.ReleasePayouts(ctx, payouts[i:]); err != nil {
				logger.Error("error release payouts", err)
			}
			return
		}
		if err != nil {
			logger.Errorw("Error payout processing", "id", payout.ID, "error", err)
		}
	}
}
