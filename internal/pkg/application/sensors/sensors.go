package sensors

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/failure"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/validate"
	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("plant-mgmt/sensors")

const (
	DefaultReadingsLimit = 50
	MaxReadingsLimit     = 500
)

//go:generate moq -rm -out sensorservice_mock.go . Service
type Service interface {
	ConnectModule(ctx context.Context, plantID, moduleID int) (int, error)
	DisconnectModule(ctx context.Context, plantID, userID int) ([]int, error)

	RecordReading(ctx context.Context, plantID int, temperature, humidity float64, timestamp *time.Time, userID int) (types.Registro, error)
	RecordWatering(ctx context.Context, plantID int, timestamp *time.Time, durationSeconds float64, userID int) (types.Registro, error)

	LatestReading(ctx context.Context, plantID, userID int) (types.Registro, error)
	LatestWatering(ctx context.Context, plantID, userID int) (types.Registro, error)
	Readings(ctx context.Context, plantID, userID, limit int) ([]types.Registro, error)
}

//go:generate moq -rm -out storage_mock.go . Storage
type Storage interface {
	GetModule(ctx context.Context, moduleID int) (types.Module, error)
	ModulesForPlant(ctx context.Context, plantID int) ([]int, error)
	PlantExists(ctx context.Context, plantID int) (bool, error)
	Connect(ctx context.Context, moduleID, plantID int) error
	Disconnect(ctx context.Context, plantID int) ([]int, error)
	AddReading(ctx context.Context, plantID int, temperature float64, humidity int, timestamp time.Time) (types.Registro, error)
	AddWatering(ctx context.Context, plantID int, durationSeconds float64, timestamp time.Time) (types.Registro, error)
	LatestReading(ctx context.Context, plantID int) (types.Registro, error)
	LatestWatering(ctx context.Context, plantID int) (types.Registro, error)
	Readings(ctx context.Context, plantID, limit int) ([]types.Registro, error)
}

//go:generate moq -rm -out plantauthorizer_mock.go . PlantAuthorizer
type PlantAuthorizer interface {
	Authorize(ctx context.Context, plantID, userID int) error
}

//go:generate moq -rm -out eventpublisher_mock.go . EventPublisher
type EventPublisher interface {
	PublishOnTopic(ctx context.Context, message messaging.TopicMessage) error
}

type service struct {
	storage   Storage
	plants    PlantAuthorizer
	publisher EventPublisher
	now       func() time.Time
}

// New returns a sensor service. publisher may be nil, in which case no events are sent.
func New(storage Storage, plants PlantAuthorizer, publisher EventPublisher) Service {
	return &service{
		storage:   storage,
		plants:    plants,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *service) ConnectModule(ctx context.Context, plantID, moduleID int) (id int, err error) {
	ctx, span := tracer.Start(ctx, "connect-module")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.Int("plant.id", plantID), attribute.Int("module.id", moduleID))

	if !validate.ID(plantID) || !validate.ID(moduleID) {
		return 0, failure.InvalidInputf("invalid plant or module id")
	}

	module, err := s.storage.GetModule(ctx, moduleID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, failure.NotFoundf("module not found")
		}
		return 0, internal(ctx, err, "could not fetch module")
	}

	if module.Bound() {
		return 0, failure.Conflictf("module already has a plant connected")
	}

	exists, err := s.storage.PlantExists(ctx, plantID)
	if err != nil {
		return 0, internal(ctx, err, "could not fetch plant")
	}
	if !exists {
		return 0, failure.NotFoundf("plant not found")
	}

	bound, err := s.storage.ModulesForPlant(ctx, plantID)
	if err != nil {
		return 0, internal(ctx, err, "could not fetch plant modules")
	}
	if len(bound) > 0 {
		return 0, failure.Conflictf("plant already has a module connected")
	}

	err = s.storage.Connect(ctx, moduleID, plantID)
	if err != nil {
		if errors.Is(err, database.ErrConflict) {
			log := logging.GetFromContext(ctx)
			log.Debug().Int("plant", plantID).Int("module", moduleID).Msg("binding changed before connect")
			return 0, failure.Conflictf("module or plant was connected concurrently")
		}
		return 0, internal(ctx, err, "could not connect module")
	}

	s.publish(ctx, &types.ModuleConnected{
		ModuleID:  moduleID,
		PlantID:   plantID,
		Timestamp: s.now().UTC(),
	})

	return moduleID, nil
}

func (s *service) DisconnectModule(ctx context.Context, plantID, userID int) (ids []int, err error) {
	ctx, span := tracer.Start(ctx, "disconnect-module")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.Int("plant.id", plantID))

	if err = s.plants.Authorize(ctx, plantID, userID); err != nil {
		return nil, err
	}

	ids, err = s.storage.Disconnect(ctx, plantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, failure.NotFoundf("no module connected to plant")
		}
		return nil, internal(ctx, err, "could not disconnect module")
	}

	s.publish(ctx, &types.ModuleDisconnected{
		ModuleIDs: ids,
		PlantID:   plantID,
		Timestamp: s.now().UTC(),
	})

	return ids, nil
}

// RecordReading stores a sensor sample. Humidity is rounded half away from zero.
func (s *service) RecordReading(ctx context.Context, plantID int, temperature, humidity float64, timestamp *time.Time, userID int) (reg types.Registro, err error) {
	ctx, span := tracer.Start(ctx, "record-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.Int("plant.id", plantID))

	if !validate.Number(temperature) || !validate.Number(humidity) {
		return types.Registro{}, failure.InvalidInputf("temperature and humidity must be numbers")
	}

	if !validate.Percentage(humidity) {
		return types.Registro{}, failure.InvalidInputf("humidity must be within 0 and 100")
	}

	if err = s.plants.Authorize(ctx, plantID, userID); err != nil {
		return types.Registro{}, err
	}

	reg, err = s.storage.AddReading(ctx, plantID, temperature, int(math.Round(humidity)), s.timestamp(timestamp))
	if err != nil {
		return types.Registro{}, internal(ctx, err, "could not store reading")
	}

	s.publish(ctx, &types.ReadingRecorded{Registro: reg})

	return reg, nil
}

func (s *service) RecordWatering(ctx context.Context, plantID int, timestamp *time.Time, durationSeconds float64, userID int) (reg types.Registro, err error) {
	ctx, span := tracer.Start(ctx, "record-watering")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.Int("plant.id", plantID))

	if !validate.Number(durationSeconds) || durationSeconds < 0 {
		return types.Registro{}, failure.InvalidInputf("watering duration must be a non-negative number")
	}

	if err = s.plants.Authorize(ctx, plantID, userID); err != nil {
		return types.Registro{}, err
	}

	reg, err = s.storage.AddWatering(ctx, plantID, durationSeconds, s.timestamp(timestamp))
	if err != nil {
		return types.Registro{}, internal(ctx, err, "could not store watering")
	}

	s.publish(ctx, &types.WateringRecorded{Registro: reg})

	return reg, nil
}

func (s *service) LatestReading(ctx context.Context, plantID, userID int) (reg types.Registro, err error) {
	ctx, span := tracer.Start(ctx, "latest-reading")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = s.plants.Authorize(ctx, plantID, userID); err != nil {
		return types.Registro{}, err
	}

	reg, err = s.storage.LatestReading(ctx, plantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return types.Registro{}, failure.NotFoundf("no readings for plant")
		}
		return types.Registro{}, internal(ctx, err, "could not fetch latest reading")
	}

	return reg, nil
}

func (s *service) LatestWatering(ctx context.Context, plantID, userID int) (reg types.Registro, err error) {
	ctx, span := tracer.Start(ctx, "latest-watering")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = s.plants.Authorize(ctx, plantID, userID); err != nil {
		return types.Registro{}, err
	}

	reg, err = s.storage.LatestWatering(ctx, plantID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return types.Registro{}, failure.NotFoundf("no waterings for plant")
		}
		return types.Registro{}, internal(ctx, err, "could not fetch latest watering")
	}

	return reg, nil
}

// Readings returns the most recent rows for a plant, newest first. limit is
// clamped to 1..MaxReadingsLimit, with DefaultReadingsLimit used for anything below 1.
func (s *service) Readings(ctx context.Context, plantID, userID, limit int) (regs []types.Registro, err error) {
	ctx, span := tracer.Start(ctx, "list-readings")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if err = s.plants.Authorize(ctx, plantID, userID); err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = DefaultReadingsLimit
	} else if limit > MaxReadingsLimit {
		limit = MaxReadingsLimit
	}

	regs, err = s.storage.Readings(ctx, plantID, limit)
	if err != nil {
		return nil, internal(ctx, err, "could not fetch readings")
	}

	return regs, nil
}

func (s *service) timestamp(ts *time.Time) time.Time {
	if ts == nil || ts.IsZero() {
		return s.now().UTC().Truncate(time.Microsecond)
	}
	return ts.UTC().Truncate(time.Microsecond)
}

func (s *service) publish(ctx context.Context, msg messaging.TopicMessage) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.PublishOnTopic(ctx, msg)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error().Err(err).Str("topic", msg.TopicName()).Msg("failed to publish event")
	}
}

func internal(ctx context.Context, err error, msg string) error {
	log := logging.GetFromContext(ctx)
	log.Error().Err(err).Msg(msg)
	return failure.Wrap(failure.Internal, msg, err)
}
