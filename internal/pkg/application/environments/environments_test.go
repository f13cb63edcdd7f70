package environments

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/failure"
	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestCreateTrimsAndValidatesName(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	_, err := svc.Create(ctx, 1, "  ab  ")
	is.Equal(failure.InvalidInput, failure.KindOf(err))
	is.Equal(0, len(storage.CreateCalls()))

	id, err := svc.Create(ctx, 1, "  Balcón ")
	is.NoErr(err)
	is.Equal(10, id)
	is.Equal("Balcón", storage.CreateCalls()[0].Name)
}

func TestCreateDuplicateIsConflict(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.FindByNameFunc = func(ctx context.Context, userID int, name string) (types.Environment, error) {
		return types.Environment{ID: 3, Name: name, UserID: userID}, nil
	}
	svc := New(storage)

	_, err := svc.Create(ctx, 1, "Balcón")
	is.Equal(failure.Conflict, failure.KindOf(err))
	is.Equal(0, len(storage.CreateCalls()))
}

func TestCreateRaceIsConflict(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.CreateFunc = func(ctx context.Context, userID int, name string) (int, error) {
		return 0, database.ErrConflict
	}
	svc := New(storage)

	_, err := svc.Create(ctx, 1, "Balcón")
	is.True(errors.Is(err, failure.ErrConflict))
}

func TestStoreFailureIsInternal(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.CreateFunc = func(ctx context.Context, userID int, name string) (int, error) {
		return 0, database.ErrRepositoryError
	}
	svc := New(storage)

	_, err := svc.Create(ctx, 1, "Balcón")
	is.Equal(failure.Internal, failure.KindOf(err))
	is.True(errors.Is(err, database.ErrRepositoryError))
}

func TestListWithoutEnvironmentsIsNotFound(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	_, err := svc.List(ctx, 1)
	is.Equal(failure.NotFound, failure.KindOf(err))
}

func TestListReturnsOwnedEnvironments(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.ListByUserFunc = func(ctx context.Context, userID int) ([]types.Environment, error) {
		return []types.Environment{{ID: 1, Name: "Balcón", UserID: userID, Plants: []string{}}}, nil
	}
	svc := New(storage)

	envs, err := svc.List(ctx, 7)
	is.NoErr(err)
	is.Equal(1, len(envs))
	is.Equal(7, storage.ListByUserCalls()[0].UserID)
}

func TestRenameOwnership(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.GetByIDFunc = func(ctx context.Context, environmentID int) (types.Environment, error) {
		if environmentID != 5 {
			return types.Environment{}, database.ErrNotFound
		}
		return types.Environment{ID: 5, Name: "Balcón", UserID: 1}, nil
	}
	svc := New(storage)

	_, err := svc.Rename(ctx, 6, "Terraza", 1)
	is.Equal(failure.NotFound, failure.KindOf(err))

	_, err = svc.Rename(ctx, 5, "Terraza", 2)
	is.Equal(failure.Forbidden, failure.KindOf(err))

	_, err = svc.Rename(ctx, 5, "no", 1)
	is.Equal(failure.InvalidInput, failure.KindOf(err))

	is.Equal(0, len(storage.UpdateCalls()))

	env, err := svc.Rename(ctx, 5, " Terraza ", 1)
	is.NoErr(err)
	is.Equal("Terraza", env.Name)
	is.Equal("Terraza", *storage.UpdateCalls()[0].Update.Name)
}

func TestRenameToTakenNameIsConflict(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.GetByIDFunc = func(ctx context.Context, environmentID int) (types.Environment, error) {
		return types.Environment{ID: environmentID, Name: "Cocina", UserID: 1}, nil
	}
	storage.FindByNameFunc = func(ctx context.Context, userID int, name string) (types.Environment, error) {
		return types.Environment{ID: 9, Name: name, UserID: userID}, nil
	}
	svc := New(storage)

	_, err := svc.Rename(ctx, 5, "Balcón", 1)
	is.Equal(failure.Conflict, failure.KindOf(err))
}

func TestUpdateRejectsEmptyAndNonFinite(t *testing.T) {
	is, ctx, storage := testSetup(t)
	svc := New(storage)

	_, err := svc.Update(ctx, 5, 1, types.EnvironmentUpdate{})
	is.Equal(failure.InvalidInput, failure.KindOf(err))

	nan := math.NaN()
	_, err = svc.Update(ctx, 5, 1, types.EnvironmentUpdate{Temperature: &nan})
	is.Equal(failure.InvalidInput, failure.KindOf(err))
}

func TestRejectionsAndStoreFailuresAreLogged(t *testing.T) {
	is, ctx, storage := testSetup(t)
	storage.GetByIDFunc = func(ctx context.Context, environmentID int) (types.Environment, error) {
		if environmentID == 5 {
			return types.Environment{ID: 5, Name: "Cocina", UserID: 2}, nil
		}
		return types.Environment{}, database.ErrRepositoryError
	}
	svc := New(storage)

	buf := &bytes.Buffer{}
	ctx = logging.NewContextWithLogger(ctx, zerolog.New(buf))

	_, err := svc.Rename(ctx, 5, "Terraza", 1)
	is.Equal(failure.Forbidden, failure.KindOf(err))
	is.True(strings.Contains(buf.String(), `"level":"debug"`))
	is.True(strings.Contains(buf.String(), "environment belongs to another user"))

	buf.Reset()

	_, err = svc.Rename(ctx, 6, "Terraza", 1)
	is.Equal(failure.Internal, failure.KindOf(err))
	is.True(strings.Contains(buf.String(), `"level":"error"`))
	is.True(strings.Contains(buf.String(), "could not fetch environment"))
}

func testSetup(t *testing.T) (*is.I, context.Context, *StorageMock) {
	is := is.New(t)
	ctx := context.Background()

	storage := &StorageMock{
		CreateFunc: func(ctx context.Context, userID int, name string) (int, error) {
			return 10, nil
		},
		FindByNameFunc: func(ctx context.Context, userID int, name string) (types.Environment, error) {
			return types.Environment{}, database.ErrNotFound
		},
		GetByIDFunc: func(ctx context.Context, environmentID int) (types.Environment, error) {
			return types.Environment{}, database.ErrNotFound
		},
		ListByUserFunc: func(ctx context.Context, userID int) ([]types.Environment, error) {
			return []types.Environment{}, nil
		},
		UpdateFunc: func(ctx context.Context, environmentID, userID int, update types.EnvironmentUpdate) (types.Environment, error) {
			return types.Environment{ID: environmentID, Name: *update.Name, UserID: userID}, nil
		},
	}

	return is, ctx, storage
}
