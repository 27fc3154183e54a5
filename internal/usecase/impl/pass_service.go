package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"time"

	deliverycontext "walletpass/internal/delivery/context"
	"walletpass/internal/domain/entity"
	domainerrors "walletpass/internal/domain/errors"
	"walletpass/internal/domain/repository"
	"walletpass/internal/domain/service"
	"walletpass/internal/errors"
	"walletpass/internal/usecase"
	"walletpass/internal/util"

	"github.com/google/uuid"
)

// authTokenBytes sizes the generated authentication token (hex-encoded).
const authTokenBytes = 16

type passService struct {
	passTypeIdentifier string
	passRepo           repository.PassRepository
	generator          service.PassGenerator
	dispatcher         usecase.DispatchUsecase
	publisher          service.EventPublisher
	logger             *slog.Logger
}

// NewPassService creates the pass use case instance. passTypeIdentifier is
// stamped onto newly materialized passes and doubles as their push topic.
func NewPassService(
	passTypeIdentifier string,
	passRepo repository.PassRepository,
	generator service.PassGenerator,
	dispatcher usecase.DispatchUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.PassUsecase {
	return &passService{
		passTypeIdentifier: passTypeIdentifier,
		passRepo:           passRepo,
		generator:          generator,
		dispatcher:         dispatcher,
		publisher:          publisher,
		logger:             logger,
	}
}

// Materialize finds or creates the pass for (klass, generator). Identity
// fields are generated exactly once and survive every later call.
func (s *passService) Materialize(ctx context.Context, klass string, generator usecase.GeneratorRef, seed map[string]any) (*entity.Pass, error) {
	pass, err := s.passRepo.FindPassByGenerator(ctx, klass, generator.Type, generator.ID)
	if err == nil {
		return s.refreshSeedData(ctx, pass, seed)
	}
	if !errors.Is(err, repository.ErrPassNotFound) {
		return nil, errors.Wrap(err, "failed to find pass by generator")
	}

	token, err := newAuthenticationToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate authentication token")
	}

	now := time.Now().UTC()
	pass = &entity.Pass{
		ID:                  uuid.New(),
		SerialNumber:        uuid.NewString(),
		PassTypeIdentifier:  s.passTypeIdentifier,
		AuthenticationToken: token,
		Klass:               klass,
		GeneratorType:       generator.Type,
		GeneratorID:         generator.ID,
		Data:                maps.Clone(seed),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.passRepo.CreatePass(ctx, pass); err != nil {
		if errors.Is(err, repository.ErrDuplicatePass) {
			// Lost a concurrent materialization race; the winner's identity
			// fields stand.
			existing, findErr := s.passRepo.FindPassByGenerator(ctx, klass, generator.Type, generator.ID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to load concurrently created pass")
			}

			return existing, nil
		}

		return nil, domainerrors.ErrPassCreationFailed.WrapMessage(err.Error())
	}

	return pass, nil
}

// refreshSeedData merges generator-sourced fields into an existing pass.
// updatedAt only advances when a value actually changed, since it drives
// incremental-update queries.
func (s *passService) refreshSeedData(ctx context.Context, pass *entity.Pass, seed map[string]any) (*entity.Pass, error) {
	if len(seed) == 0 {
		return pass, nil
	}

	if pass.Data == nil {
		pass.Data = make(map[string]any, len(seed))
	}

	changed := false
	for key, value := range seed {
		if existing, ok := pass.Data[key]; ok && reflect.DeepEqual(existing, value) {
			continue
		}
		pass.Data[key] = value
		changed = true
	}

	if !changed {
		return pass, nil
	}

	pass.UpdatedAt = advanceTimestamp(pass.UpdatedAt)
	if err := s.passRepo.UpdatePass(ctx, pass); err != nil {
		return nil, errors.Wrap(err, "failed to refresh pass data")
	}

	return pass, nil
}

// Mutate applies changes, advances updatedAt, regenerates the signed bundle,
// and fans out pushes. Push and event failures never fail the mutation.
func (s *passService) Mutate(ctx context.Context, serialNumber string, changes map[string]any) ([]byte, error) {
	pass, err := s.passRepo.FindPassBySerial(ctx, serialNumber)
	if err != nil {
		if errors.Is(err, repository.ErrPassNotFound) {
			return nil, domainerrors.ErrPassNotFound
		}

		return nil, errors.Wrap(err, "failed to find pass by serial")
	}

	if pass.Data == nil {
		pass.Data = make(map[string]any, len(changes))
	}

	changedKeys := slices.Sorted(maps.Keys(changes))
	for key, value := range changes {
		pass.Data[key] = value
	}

	// Every mutation is treated as a content change: updatedAt advances even
	// when the supplied values equal the old ones. Callers own no-op avoidance.
	pass.UpdatedAt = advanceTimestamp(pass.UpdatedAt)

	if err := s.passRepo.UpdatePass(ctx, pass); err != nil {
		return nil, domainerrors.ErrPassUpdateFailed.WrapMessage(err.Error())
	}

	bundle, err := s.generator.GenerateAndSign(ctx, pass)
	if err != nil {
		return nil, domainerrors.ErrBundleGenerationFailed.WrapMessage(err.Error())
	}

	s.notifyDevices(ctx, pass)
	s.publishUpdateEvent(ctx, pass, changedKeys)

	s.logger.Info("pass mutated",
		slog.String("serial_number", pass.SerialNumber),
		slog.Time("updated_at", pass.UpdatedAt),
		slog.String("bundle_size", util.FormatBytes(int64(len(bundle)))),
	)

	return bundle, nil
}

// notifyDevices runs the push dispatch for the pass. Failures are reported to
// operators through logs, never to the mutation's caller.
func (s *passService) notifyDevices(ctx context.Context, pass *entity.Pass) {
	report, err := s.dispatcher.Dispatch(ctx, pass)
	if err != nil {
		s.logger.Error("pass update push dispatch failed",
			slog.String("serial_number", pass.SerialNumber),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("pass update pushes dispatched",
		slog.String("serial_number", pass.SerialNumber),
		slog.Int("delivered", report.Delivered),
		slog.Int("failed", report.Failed),
		slog.Int("skipped", report.Skipped),
	)
}

// publishUpdateEvent emits a pass-update event for async consumers.
func (s *passService) publishUpdateEvent(ctx context.Context, pass *entity.Pass, changedKeys []string) {
	if s.publisher == nil {
		return
	}

	event := &service.PassUpdateEvent{
		RequestID:          deliverycontext.GetRequestIDFromContext(ctx),
		SerialNumber:       pass.SerialNumber,
		PassTypeIdentifier: pass.PassTypeIdentifier,
		UpdatedAt:          pass.UpdatedAt,
		ChangedKeys:        changedKeys,
	}

	if err := s.publisher.PublishPassUpdateEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish pass update event",
			slog.String("serial_number", pass.SerialNumber),
			slog.Any("error", err),
		)
	}
}

// advanceTimestamp returns the current time, nudged forward when the clock has
// not moved past the previous value. updatedAt must be strictly greater after
// every mutation.
func advanceTimestamp(previous time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(previous) {
		return previous.Add(time.Millisecond)
	}

	return now
}

// newAuthenticationToken generates the pass's bearer secret.
func newAuthenticationToken() (string, error) {
	buf := make([]byte, authTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
