package plants

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/failure"
	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestAddValidatesInput(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	_, err := svc.Add(ctx, " ", "Hierba", 1, 1)
	is.Equal(failure.InvalidInput, failure.KindOf(err))

	_, err = svc.Add(ctx, "Albahaca", "Hierba", 0, 1)
	is.Equal(failure.InvalidInput, failure.KindOf(err))

	_, err = svc.Add(ctx, "Albahaca", "NoExiste", 1, 1)
	is.Equal(failure.InvalidInput, failure.KindOf(err))

	is.Equal(0, len(storage.CreateCalls()))
}

func TestAddToForeignEnvironmentIsNotFound(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	_, err := svc.Add(ctx, "Albahaca", "Hierba", 2, 1)
	is.Equal(failure.NotFound, failure.KindOf(err))
	is.Equal(0, len(storage.CreateCalls()))
}

func TestAddTrimsAndCreates(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	id, err := svc.Add(ctx, " Albahaca ", "Hierba", 1, 1)
	is.NoErr(err)
	is.Equal(100, id)

	call := storage.CreateCalls()[0]
	is.Equal("Albahaca", call.Name)
	is.Equal("Hierba", call.PlantType)
	is.Equal(1, call.EnvironmentID)
}

func TestAuthorize(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	is.NoErr(svc.Authorize(ctx, 7, 1))

	err := svc.Authorize(ctx, 7, 2)
	is.Equal(failure.Forbidden, failure.KindOf(err))

	err = svc.Authorize(ctx, 8, 1)
	is.Equal(failure.NotFound, failure.KindOf(err))

	err = svc.Authorize(ctx, -1, 1)
	is.Equal(failure.InvalidInput, failure.KindOf(err))
}

func TestDeleteWithBoundModuleIsConflict(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.HasModuleFunc = func(ctx context.Context, plantID int) (bool, error) {
		return true, nil
	}
	svc := New(storage)

	err := svc.Delete(ctx, 7, 1)
	is.Equal(failure.Conflict, failure.KindOf(err))
	is.Equal("plant has a connected module", failure.MessageOf(err))
	is.Equal(0, len(storage.DeleteCalls()))
}

func TestDeleteLosingRaceIsConflict(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.DeleteFunc = func(ctx context.Context, plantID, userID int) error {
		return database.ErrConflict
	}
	svc := New(storage)

	err := svc.Delete(ctx, 7, 1)
	is.Equal(failure.Conflict, failure.KindOf(err))
}

func TestDeleteForeignPlantIsForbidden(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	err := svc.Delete(ctx, 7, 2)
	is.Equal(failure.Forbidden, failure.KindOf(err))
	is.Equal(0, len(storage.DeleteCalls()))

	is.NoErr(svc.Delete(ctx, 7, 1))
	is.Equal(1, len(storage.DeleteCalls()))
}

func TestUpdatePhotoAndRename(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	photo, err := svc.UpdatePhoto(ctx, " https://img.example.org/a.png ", 7, 1)
	is.NoErr(err)
	is.Equal("https://img.example.org/a.png", photo)

	is.NoErr(svc.Rename(ctx, 7, "Albahaca genovesa", 1))
	is.Equal("Albahaca genovesa", *storage.UpdateCalls()[1].Update.Name)

	err = svc.Rename(ctx, 7, "  ", 1)
	is.Equal(failure.InvalidInput, failure.KindOf(err))

	err = svc.Rename(ctx, 7, "Robada", 2)
	is.Equal(failure.Forbidden, failure.KindOf(err))

	is.Equal(2, len(storage.UpdateCalls()))
}

func TestUpdateRevalidatesType(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	plantType := "NoExiste"
	_, err := svc.Update(ctx, 7, 1, types.PlantUpdate{Type: &plantType})
	is.Equal(failure.InvalidInput, failure.KindOf(err))

	_, err = svc.Update(ctx, 7, 1, types.PlantUpdate{})
	is.Equal(failure.InvalidInput, failure.KindOf(err))

	is.Equal(0, len(storage.UpdateCalls()))
}

func TestListWithoutPlantsIsNotFound(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	_, err := svc.List(ctx, 1)
	is.Equal(failure.NotFound, failure.KindOf(err))
}

func TestStoreFailureIsInternal(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.GetOwnedFunc = func(ctx context.Context, plantID, userID int) (types.Plant, error) {
		return types.Plant{}, database.ErrRepositoryError
	}
	svc := New(storage)

	err := svc.Authorize(ctx, 7, 1)
	is.Equal(failure.Internal, failure.KindOf(err))
}

func TestRejectionsAndStoreFailuresAreLogged(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	buf := &bytes.Buffer{}
	ctx = logging.NewContextWithLogger(ctx, zerolog.New(buf))

	err := svc.Authorize(ctx, 7, 2)
	is.Equal(failure.Forbidden, failure.KindOf(err))
	is.True(strings.Contains(buf.String(), `"level":"debug"`))
	is.True(strings.Contains(buf.String(), "plant belongs to another user"))

	buf.Reset()
	storage.GetOwnedFunc = func(ctx context.Context, plantID, userID int) (types.Plant, error) {
		return types.Plant{}, database.ErrRepositoryError
	}

	err = svc.Authorize(ctx, 7, 1)
	is.Equal(failure.Internal, failure.KindOf(err))
	is.True(strings.Contains(buf.String(), `"level":"error"`))
	is.True(strings.Contains(buf.String(), "could not fetch plant"))
}

// testSetup returns a storage where user 1 owns environment 1 and plant 7.
func testSetup(t *testing.T) (*is.I, context.Context, *StorageMock) {
	is := is.New(t)
	ctx := context.Background()

	storage := &StorageMock{
		TypeExistsFunc: func(ctx context.Context, name string) (bool, error) {
			return name == "Hierba", nil
		},
		TypesFunc: func(ctx context.Context) ([]types.PlantType, error) {
			return []types.PlantType{{Name: "Hierba", Group: "Aromáticas"}}, nil
		},
		EnvironmentOwnedFunc: func(ctx context.Context, environmentID, userID int) (bool, error) {
			return environmentID == 1 && userID == 1, nil
		},
		CreateFunc: func(ctx context.Context, name, plantType string, environmentID int) (int, error) {
			return 100, nil
		},
		GetOwnedFunc: func(ctx context.Context, plantID, userID int) (types.Plant, error) {
			if plantID == 7 && userID == 1 {
				return types.Plant{ID: 7, Name: "Albahaca", Type: "Hierba", EnvironmentID: 1}, nil
			}
			return types.Plant{}, database.ErrNotFound
		},
		ExistsFunc: func(ctx context.Context, plantID int) (bool, error) {
			return plantID == 7, nil
		},
		HasModuleFunc: func(ctx context.Context, plantID int) (bool, error) {
			return false, nil
		},
		DeleteFunc: func(ctx context.Context, plantID, userID int) error {
			return nil
		},
		UpdateFunc: func(ctx context.Context, plantID, userID int, update types.PlantUpdate) (types.Plant, error) {
			p := types.Plant{ID: plantID, Name: "Albahaca", Type: "Hierba", EnvironmentID: 1, Photo: update.Photo}
			if update.Name != nil {
				p.Name = *update.Name
			}
			return p, nil
		},
		ListByUserFunc: func(ctx context.Context, userID int) ([]types.Plant, error) {
			return []types.Plant{}, nil
		},
	}

	return is, ctx, storage
}
