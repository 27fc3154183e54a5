package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"walletpass/internal/domain/entity"
	"walletpass/internal/domain/repository"
	"walletpass/internal/domain/service"
	"walletpass/internal/errors"
	"walletpass/internal/usecase"
	"walletpass/internal/util"
)

type dispatchService struct {
	deviceRepo    repository.DeviceRepository
	gateway       service.PushGateway
	workers       int
	retryAttempts int
	retryDelay    time.Duration
	logger        *slog.Logger
}

// NewDispatchService creates the push dispatch use case instance.
func NewDispatchService(
	deviceRepo repository.DeviceRepository,
	gateway service.PushGateway,
	workers int,
	retryAttempts int,
	retryDelay time.Duration,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	if workers < 1 {
		workers = 1
	}
	if retryAttempts < 1 {
		retryAttempts = 1
	}

	return &dispatchService{
		deviceRepo:    deviceRepo,
		gateway:       gateway,
		workers:       workers,
		retryAttempts: retryAttempts,
		retryDelay:    retryDelay,
		logger:        logger,
	}
}

// Dispatch sends a background push to every device registered to the pass.
// The registration set is read at dispatch time, never cached across calls.
func (s *dispatchService) Dispatch(ctx context.Context, pass *entity.Pass) (*usecase.DispatchReport, error) {
	start := time.Now()

	devices, err := s.deviceRepo.FindDevicesForPass(ctx, pass.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices for pass")
	}

	report := &usecase.DispatchReport{SerialNumber: pass.SerialNumber}

	targets := make([]*entity.Device, 0, len(devices))
	for _, device := range devices {
		if device.PushToken == "" {
			report.Skipped++

			continue
		}
		targets = append(targets, device)
	}

	if len(targets) == 0 {
		return report, nil
	}

	// Unusable credential material means no channel can be opened at all;
	// fail the whole dispatch once instead of once per device.
	if err := s.gateway.Ready(ctx); err != nil {
		return nil, errors.Wrap(err, "push gateway not ready")
	}

	workers := s.workers
	if workers > len(targets) {
		workers = len(targets)
	}

	jobs := make(chan *entity.Device)
	results := make(chan usecase.DeviceOutcome, len(targets))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for device := range jobs {
				results <- s.sendWithRetry(ctx, pass, device)
			}
		}()
	}

	for _, device := range targets {
		jobs <- device
	}
	close(jobs)

	wg.Wait()
	close(results)

	for outcome := range results {
		report.Outcomes = append(report.Outcomes, outcome)
		if outcome.Delivered {
			report.Delivered++
		} else {
			report.Failed++
		}
	}

	s.logger.Info("push dispatch completed",
		slog.String("serial_number", pass.SerialNumber),
		slog.Int("delivered", report.Delivered),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
		slog.String("took", util.FormatDuration(time.Since(start))),
	)

	return report, nil
}

// sendWithRetry pushes to one device, retrying transient transport faults up
// to the configured bound with a fixed delay. Gateway rejections (invalid or
// expired token) are terminal immediately; a permanently invalid token is
// logged but its registration is kept, cleanup stays a policy decision for
// the operator.
func (s *dispatchService) sendWithRetry(ctx context.Context, pass *entity.Pass, device *entity.Device) usecase.DeviceOutcome {
	outcome := usecase.DeviceOutcome{DeviceIdentifier: device.Identifier}

	notification := &service.PushNotification{
		PushToken: device.PushToken,
		Topic:     pass.PassTypeIdentifier,
	}

	for attempt := 1; attempt <= s.retryAttempts; attempt++ {
		outcome.Attempts = attempt

		err := s.gateway.Send(ctx, notification)
		if err == nil {
			outcome.Delivered = true

			return outcome
		}

		outcome.Reason = err.Error()

		if service.IsGatewayRejection(err) {
			s.logger.Warn("push gateway rejected device token",
				slog.String("serial_number", pass.SerialNumber),
				slog.String("device_identifier", device.Identifier),
				slog.Any("error", err),
			)

			return outcome
		}

		if !service.IsTransient(err) {
			return outcome
		}

		if attempt == s.retryAttempts {
			break
		}

		select {
		case <-ctx.Done():
			outcome.Reason = ctx.Err().Error()

			return outcome
		case <-time.After(s.retryDelay):
		}
	}

	return outcome
}
