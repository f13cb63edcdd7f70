package environments

import (
	"context"
	"errors"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/failure"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/validate"
	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("plant-mgmt/environments")

//go:generate moq -rm -out environmentservice_mock.go . Service
type Service interface {
	Create(ctx context.Context, userID int, name string) (int, error)
	List(ctx context.Context, userID int) ([]types.Environment, error)
	Rename(ctx context.Context, environmentID int, newName string, userID int) (types.Environment, error)
	Update(ctx context.Context, environmentID, userID int, update types.EnvironmentUpdate) (types.Environment, error)
}

//go:generate moq -rm -out storage_mock.go . Storage
type Storage interface {
	Create(ctx context.Context, userID int, name string) (int, error)
	FindByName(ctx context.Context, userID int, name string) (types.Environment, error)
	GetByID(ctx context.Context, environmentID int) (types.Environment, error)
	ListByUser(ctx context.Context, userID int) ([]types.Environment, error)
	Update(ctx context.Context, environmentID, userID int, update types.EnvironmentUpdate) (types.Environment, error)
}

type service struct {
	storage Storage
}

func New(storage Storage) Service {
	return &service{
		storage: storage,
	}
}

func (s *service) Create(ctx context.Context, userID int, name string) (id int, err error) {
	ctx, span := tracer.Start(ctx, "create-environment")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if !validate.ID(userID) {
		return 0, failure.InvalidInputf("invalid user id")
	}

	name, ok := validate.Name(name)
	if !ok {
		return 0, failure.InvalidInputf("environment name must be at least %d characters", validate.MinNameLength)
	}

	_, err = s.storage.FindByName(ctx, userID, name)
	if err == nil {
		return 0, failure.Conflictf("environment %q already exists", name)
	}
	if !errors.Is(err, database.ErrNotFound) {
		return 0, internal(ctx, err, "could not look up environment")
	}

	id, err = s.storage.Create(ctx, userID, name)
	if err != nil {
		if errors.Is(err, database.ErrConflict) {
			return 0, failure.Conflictf("environment %q already exists", name)
		}
		return 0, internal(ctx, err, "could not create environment")
	}

	span.SetAttributes(attribute.Int("environment.id", id))

	return id, nil
}

func (s *service) List(ctx context.Context, userID int) (envs []types.Environment, err error) {
	ctx, span := tracer.Start(ctx, "list-environments")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if !validate.ID(userID) {
		return nil, failure.InvalidInputf("invalid user id")
	}

	envs, err = s.storage.ListByUser(ctx, userID)
	if err != nil {
		return nil, internal(ctx, err, "could not list environments")
	}

	if len(envs) == 0 {
		return nil, failure.NotFoundf("no environments found")
	}

	return envs, nil
}

func (s *service) Rename(ctx context.Context, environmentID int, newName string, userID int) (types.Environment, error) {
	return s.Update(ctx, environmentID, userID, types.EnvironmentUpdate{Name: &newName})
}

// Update applies the set fields of update to an environment owned by userID.
func (s *service) Update(ctx context.Context, environmentID, userID int, update types.EnvironmentUpdate) (env types.Environment, err error) {
	ctx, span := tracer.Start(ctx, "update-environment")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.Int("environment.id", environmentID))

	if !validate.ID(environmentID) || !validate.ID(userID) {
		return types.Environment{}, failure.InvalidInputf("invalid environment or user id")
	}

	if update.IsEmpty() {
		return types.Environment{}, failure.InvalidInputf("nothing to update")
	}

	if update.Name != nil {
		name, ok := validate.Name(*update.Name)
		if !ok {
			return types.Environment{}, failure.InvalidInputf("environment name must be at least %d characters", validate.MinNameLength)
		}
		update.Name = &name
	}

	if update.Temperature != nil && !validate.Number(*update.Temperature) {
		return types.Environment{}, failure.InvalidInputf("temperature must be a number")
	}

	current, err := s.storage.GetByID(ctx, environmentID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return types.Environment{}, failure.NotFoundf("environment not found")
		}
		return types.Environment{}, internal(ctx, err, "could not fetch environment")
	}

	if current.UserID != userID {
		log := logging.GetFromContext(ctx)
		log.Debug().Int("environment", environmentID).Int("user", userID).Msg("environment belongs to another user")
		return types.Environment{}, failure.Forbiddenf("environment belongs to another user")
	}

	if update.Name != nil && *update.Name != current.Name {
		other, err := s.storage.FindByName(ctx, userID, *update.Name)
		if err == nil && other.ID != environmentID {
			return types.Environment{}, failure.Conflictf("environment %q already exists", *update.Name)
		}
		if err != nil && !errors.Is(err, database.ErrNotFound) {
			return types.Environment{}, internal(ctx, err, "could not look up environment")
		}
	}

	env, err = s.storage.Update(ctx, environmentID, userID, update)
	if err != nil {
		if errors.Is(err, database.ErrConflict) {
			return types.Environment{}, failure.Conflictf("environment name already exists")
		}
		if errors.Is(err, database.ErrNotFound) {
			return types.Environment{}, failure.NotFoundf("environment not found")
		}
		return types.Environment{}, internal(ctx, err, "could not update environment")
	}

	return env, nil
}

func internal(ctx context.Context, err error, msg string) error {
	log := logging.GetFromContext(ctx)
	log.Error().Err(err).Msg(msg)
	return failure.Wrap(failure.Internal, msg, err)
}
