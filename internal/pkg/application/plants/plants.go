package plants

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

var tracer = otel.Tracer("plant-mgmt/plants")

//go:generate moq -rm -out plantservice_mock.go . Service
type Service interface {
	Add(ctx context.Context, name, plantType string, environmentID, userID int) (int, error)
	Delete(ctx context.Context, plantID, userID int) error
	UpdatePhoto(ctx context.Context, photo string, plantID, userID int) (string, error)
	List(ctx context.Context, userID int) ([]types.Plant, error)
	Rename(ctx context.Context, plantID int, newName string, userID int) error
	Update(ctx context.Context, plantID, userID int, update types.PlantUpdate) (types.Plant, error)
	Types(ctx context.Context) ([]types.PlantType, error)

	Authorize(ctx context.Context, plantID, userID int) error
}

//go:generate moq -rm -out storage_mock.go . Storage
type Storage interface {
	TypeExists(ctx context.Context, name string) (bool, error)
	Types(ctx context.Context) ([]types.PlantType, error)
	EnvironmentOwned(ctx context.Context, environmentID, userID int) (bool, error)
	Create(ctx context.Context, name, plantType string, environmentID int) (int, error)
	GetOwned(ctx context.Context, plantID, userID int) (types.Plant, error)
	Exists(ctx context.Context, plantID int) (bool, error)
	HasModule(ctx context.Context, plantID int) (bool, error)
	Delete(ctx context.Context, plantID, userID int) error
	Update(ctx context.Context, plantID, userID int, update types.PlantUpdate) (types.Plant, error)
	ListByUser(ctx context.Context, userID int) ([]types.Plant, error)
}

type service struct {
	storage Storage
}

func New(storage Storage) Service {
	return &service{
		storage: storage,
	}
}

func (s *service) Add(ctx context.Context, name, plantType string, environmentID, userID int) (id int, err error) {
	ctx, span := tracer.Start(ctx, "add-plant")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	name, okName := validate.NonEmpty(name)
	plantType, okType := validate.NonEmpty(plantType)
	if !okName || !okType {
		return 0, failure.InvalidInputf("plant name and type are required")
	}

	if !validate.ID(environmentID) || !validate.ID(userID) {
		return 0, failure.InvalidInputf("invalid environment or user id")
	}

	if err = s.checkType(ctx, plantType); err != nil {
		return 0, err
	}

	owned, err := s.storage.EnvironmentOwned(ctx, environmentID, userID)
	if err != nil {
		return 0, internal(ctx, err, "could not check environment")
	}
	if !owned {
		return 0, failure.NotFoundf("environment not found")
	}

	id, err = s.storage.Create(ctx, name, plantType, environmentID)
	if err != nil {
		return 0, internal(ctx, err, "could not create plant")
	}

	span.SetAttributes(attribute.Int("plant.id", id))

	return id, nil
}

func (s *service) Delete(ctx context.Context, plantID, userID int) (err error) {
	ctx, span := tracer.Start(ctx, "delete-plant")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.Int("plant.id", plantID))

	if _, err = s.authorize(ctx, plantID, userID); err != nil {
		return err
	}

	bound, err := s.storage.HasModule(ctx, plantID)
	if err != nil {
		return internal(ctx, err, "could not check plant modules")
	}
	if bound {
		return failure.Conflictf("plant has a connected module")
	}

	err = s.storage.Delete(ctx, plantID, userID)
	if err != nil {
		if errors.Is(err, database.ErrConflict) {
			return failure.Conflictf("plant has a connected module")
		}
		if errors.Is(err, database.ErrNotFound) {
			return failure.NotFoundf("plant not found")
		}
		return internal(ctx, err, "could not delete plant")
	}

	return nil
}

func (s *service) UpdatePhoto(ctx context.Context, photo string, plantID, userID int) (string, error) {
	p, err := s.Update(ctx, plantID, userID, types.PlantUpdate{Photo: &photo})
	if err != nil {
		return "", err
	}

	if p.Photo == nil {
		return "", nil
	}

	return *p.Photo, nil
}

func (s *service) Rename(ctx context.Context, plantID int, newName string, userID int) error {
	_, err := s.Update(ctx, plantID, userID, types.PlantUpdate{Name: &newName})
	return err
}

// Update applies the set fields of update to a plant owned by userID.
func (s *service) Update(ctx context.Context, plantID, userID int, update types.PlantUpdate) (p types.Plant, err error) {
	ctx, span := tracer.Start(ctx, "update-plant")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.Int("plant.id", plantID))

	if update.IsEmpty() {
		return types.Plant{}, failure.InvalidInputf("nothing to update")
	}

	if update.Name != nil {
		name, ok := validate.NonEmpty(*update.Name)
		if !ok {
			return types.Plant{}, failure.InvalidInputf("plant name is required")
		}
		update.Name = &name
	}

	if update.Photo != nil {
		photo, ok := validate.NonEmpty(*update.Photo)
		if !ok {
			return types.Plant{}, failure.InvalidInputf("photo reference is required")
		}
		update.Photo = &photo
	}

	if update.Type != nil {
		plantType, ok := validate.NonEmpty(*update.Type)
		if !ok {
			return types.Plant{}, failure.InvalidInputf("plant type is required")
		}
		update.Type = &plantType
	}

	if _, err = s.authorize(ctx, plantID, userID); err != nil {
		return types.Plant{}, err
	}

	if update.Type != nil {
		if err = s.checkType(ctx, *update.Type); err != nil {
			return types.Plant{}, err
		}
	}

	p, err = s.storage.Update(ctx, plantID, userID, update)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return types.Plant{}, failure.NotFoundf("plant not found")
		}
		return types.Plant{}, internal(ctx, err, "could not update plant")
	}

	return p, nil
}

func (s *service) List(ctx context.Context, userID int) (plants []types.Plant, err error) {
	ctx, span := tracer.Start(ctx, "list-plants")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if !validate.ID(userID) {
		return nil, failure.InvalidInputf("invalid user id")
	}

	plants, err = s.storage.ListByUser(ctx, userID)
	if err != nil {
		return nil, internal(ctx, err, "could not list plants")
	}

	if len(plants) == 0 {
		return nil, failure.NotFoundf("no plants found")
	}

	return plants, nil
}

func (s *service) Types(ctx context.Context) ([]types.PlantType, error) {
	plantTypes, err := s.storage.Types(ctx)
	if err != nil {
		return nil, internal(ctx, err, "could not list plant types")
	}
	return plantTypes, nil
}

// Authorize succeeds when plantID exists and its environment belongs to userID.
// A plant owned by someone else is Forbidden, a missing plant is NotFound.
func (s *service) Authorize(ctx context.Context, plantID, userID int) (err error) {
	ctx, span := tracer.Start(ctx, "authorize-plant")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, err = s.authorize(ctx, plantID, userID)
	return err
}

func (s *service) authorize(ctx context.Context, plantID, userID int) (types.Plant, error) {
	if !validate.ID(plantID) || !validate.ID(userID) {
		return types.Plant{}, failure.InvalidInputf("invalid plant or user id")
	}

	p, err := s.storage.GetOwned(ctx, plantID, userID)
	if err == nil {
		return p, nil
	}

	if !errors.Is(err, database.ErrNotFound) {
		return types.Plant{}, internal(ctx, err, "could not fetch plant")
	}

	exists, err := s.storage.Exists(ctx, plantID)
	if err != nil {
		return types.Plant{}, internal(ctx, err, "could not fetch plant")
	}

	if exists {
		log := logging.GetFromContext(ctx)
		log.Debug().Int("plant", plantID).Int("user", userID).Msg("plant belongs to another user")
		return types.Plant{}, failure.Forbiddenf("plant belongs to another user")
	}

	return types.Plant{}, failure.NotFoundf("plant not found")
}

func (s *service) checkType(ctx context.Context, plantType string) error {
	ok, err := s.storage.TypeExists(ctx, plantType)
	if err != nil {
		return internal(ctx, err, "could not check plant type")
	}
	if !ok {
		return failure.InvalidInputf("invalid plant type %q", plantType)
	}
	return nil
}

func internal(ctx context.Context, err error, msg string) error {
	log := logging.GetFromContext(ctx)
	log.Error().Err(err).Msg(msg)
	return failure.Wrap(failure.Internal, msg, err)
}
