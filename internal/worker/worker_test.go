package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/ya-giftcredits/internal/config"
	"github.com/denmor86/ya-giftcredits/internal/logger"
	"github.com/denmor86/ya-giftcredits/internal/models"
	"github.com/denmor86/ya-giftcredits/internal/services/mocks"
	"github.com/sony/gobreaker"
	"go.uber.org/mock/gomock"
)

func TestPayoutWorker_ProcessPayouts(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		Name          string
		SetupMocks    func(m *mocks.MockPayoutsService)
		ExpectedState gobreaker.State
	}{
		{
			Name: "Error. Failed claim payouts #1",
			SetupMocks: func(m *mocks.MockPayoutsService) {
				m.EXPECT().GetProcessingPayouts(gomock.Any(), 10).Return(nil, errors.New("failed to claim payouts"))
			},
			ExpectedState: gobreaker.StateClosed,
		},
		{
			Name: "Success. All payouts processed #2",
			SetupMocks: func(m *mocks.MockPayoutsService) {
				m.EXPECT().GetProcessingPayouts(gomock.Any(), 10).Return([]models.PayoutData{{ID: "1"}, {ID: "2"}}, nil)
				m.EXPECT().ProcessPayout(gomock.Any(), models.PayoutData{ID: "1"}).Return(nil)
				m.EXPECT().ProcessPayout(gomock.Any(), models.PayoutData{ID: "2"}).Return(nil)
			},
			ExpectedState: gobreaker.StateClosed,
		},
		{
			Name: "Error. Breaker opens after consecutive failures #3",
			SetupMocks: func(m *mocks.MockPayoutsService) {
				batch := []models.PayoutData{
					{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"},
					{ID: "6"}, {ID: "7"}, {ID: "8"}, {ID: "9"}, {ID: "10"},
				}
				m.EXPECT().GetProcessingPayouts(gomock.Any(), 10).Return(batch, nil)
				m.EXPECT().ProcessPayout(gomock.Any(), gomock.Any()).Return(errors.New("fx unavailable")).Times(5)
				// выплаты 6-10 не дошли до сервиса и возвращаются одной пачкой
				m.EXPECT().ReleasePayouts(gomock.Any(), batch[5:]).Return(nil)
			},
			ExpectedState: gobreaker.StateOpen,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockPayouts := mocks.NewMockPayoutsService(ctrl)
			tc.SetupMocks(mockPayouts)

			worker := NewPayoutWorker(mockPayouts, 10, time.Second)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			worker.ProcessPayouts(ctx)

			if worker.Breaker.State() != tc.ExpectedState {
				t.Errorf("Expected breaker state '%v', got: '%v'", tc.ExpectedState, worker.Breaker.State())
			}
		})
	}
}

func TestPayoutWorker_SkipWhenBreakerOpen(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPayouts := mocks.NewMockPayoutsService(ctrl)

	worker := NewPayoutWorker(mockPayouts, 10, time.Second)
	for i := 0; i < 5; i++ {
		_, _ = worker.Breaker.Execute(func() (interface{}, error) {
			return nil, errors.New("fx unavailable")
		})
	}

	// при разомкнутом автомате выплаты не захватываются
	worker.ProcessPayouts(context.Background())
}

func TestPayoutWorker_StartStop(t *testing.T) {
	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPayouts := mocks.NewMockPayoutsService(ctrl)
	mockPayouts.EXPECT().GetProcessingPayouts(gomock.Any(), 5).Return(nil, nil).AnyTimes()

	worker := NewPayoutWorker(mockPayouts, 5, 10*time.Millisecond)
	worker.Start(context.Background())
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		worker.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
