package environments

import (
	"context"
	"errors"
	"testing"

	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func TestCreateAndFindByName(t *testing.T) {
	is, ctx, r, _ := testSetup(t)

	id, err := r.Create(ctx, 1, "Balcón")
	is.NoErr(err)
	is.True(id > 0)

	env, err := r.FindByName(ctx, 1, "Balcón")
	is.NoErr(err)
	is.Equal(id, env.ID)
	is.Equal(1, env.UserID)

	_, err = r.FindByName(ctx, 2, "Balcón")
	is.Equal(database.ErrNotFound, err)
}

func TestCreateDuplicateNameIsConflict(t *testing.T) {
	is, ctx, r, _ := testSetup(t)

	_, err := r.Create(ctx, 1, "Balcón")
	is.NoErr(err)

	_, err = r.Create(ctx, 1, "Balcón")
	is.True(errors.Is(err, database.ErrConflict))

	_, err = r.Create(ctx, 2, "Balcón")
	is.NoErr(err)
}

func TestListByUserIncludesPlantNames(t *testing.T) {
	is, ctx, r, db := testSetup(t)

	terraza, _ := r.Create(ctx, 1, "Terraza")
	balcon, _ := r.Create(ctx, 1, "Balcón")
	_, _ = r.Create(ctx, 2, "Jardín")

	is.NoErr(db.Create(&database.Planta{Nombre: "Romero ", Tipo: "Hierba", IDAmbiente: balcon}).Error)
	is.NoErr(db.Create(&database.Planta{Nombre: "Albahaca", Tipo: "Hierba", IDAmbiente: balcon}).Error)

	envs, err := r.ListByUser(ctx, 1)
	is.NoErr(err)
	is.Equal(2, len(envs))

	is.Equal("Balcón", envs[0].Name)
	is.Equal([]string{"Albahaca", "Romero"}, envs[0].Plants)

	is.Equal(terraza, envs[1].ID)
	is.Equal(0, len(envs[1].Plants))
	is.True(envs[1].Plants != nil)

	envs, err = r.ListByUser(ctx, 3)
	is.NoErr(err)
	is.Equal(0, len(envs))
}

func TestUpdateIsGuardedByOwner(t *testing.T) {
	is, ctx, r, _ := testSetup(t)

	id, _ := r.Create(ctx, 1, "Balcón")

	name := "Balcón norte"
	temp := 18.5

	_, err := r.Update(ctx, id, 2, types.EnvironmentUpdate{Name: &name})
	is.Equal(database.ErrNotFound, err)

	env, err := r.Update(ctx, id, 1, types.EnvironmentUpdate{Name: &name, Temperature: &temp})
	is.NoErr(err)
	is.Equal("Balcón norte", env.Name)
	is.Equal(18.5, *env.Temperature)
}

func TestUpdateToExistingNameIsConflict(t *testing.T) {
	is, ctx, r, _ := testSetup(t)

	_, _ = r.Create(ctx, 1, "Balcón")
	id, _ := r.Create(ctx, 1, "Cocina")

	name := "Balcón"
	_, err := r.Update(ctx, id, 1, types.EnvironmentUpdate{Name: &name})
	is.True(errors.Is(err, database.ErrConflict))
}

func testSetup(t *testing.T) (*is.I, context.Context, *Repository, *gorm.DB) {
	is := is.New(t)
	ctx := context.Background()

	db, err := database.Open(ctx, database.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	return is, ctx, New(db), db
}
