package plants

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func TestTypeExists(t *testing.T) {
	is, ctx, r, db := testSetup(t)

	is.NoErr(database.SeedPlantTypes(ctx, db, []types.PlantType{
		{Name: "Tomate", Group: "Hortalizas"},
		{Name: "Albahaca", Group: "Aromáticas"},
	}))

	ok, err := r.TypeExists(ctx, "Tomate")
	is.NoErr(err)
	is.True(ok)

	ok, err = r.TypeExists(ctx, "Cactus")
	is.NoErr(err)
	is.True(!ok)

	all, err := r.Types(ctx)
	is.NoErr(err)
	is.Equal(2, len(all))
	is.Equal("Albahaca", all[0].Name)
}

func TestCreateAndGetOwned(t *testing.T) {
	is, ctx, r, db := testSetup(t)
	envID := createEnvironment(is, db, 1, "Balcón")

	owned, err := r.EnvironmentOwned(ctx, envID, 1)
	is.NoErr(err)
	is.True(owned)

	owned, err = r.EnvironmentOwned(ctx, envID, 2)
	is.NoErr(err)
	is.True(!owned)

	id, err := r.Create(ctx, "Tomatera", "Tomate", envID)
	is.NoErr(err)
	is.True(id > 0)

	p, err := r.GetOwned(ctx, id, 1)
	is.NoErr(err)
	is.Equal("Tomatera", p.Name)
	is.Equal(envID, p.EnvironmentID)
	is.True(p.Photo == nil)

	_, err = r.GetOwned(ctx, id, 2)
	is.Equal(database.ErrNotFound, err)

	exists, err := r.Exists(ctx, id)
	is.NoErr(err)
	is.True(exists)

	exists, err = r.Exists(ctx, id+100)
	is.NoErr(err)
	is.True(!exists)
}

func TestDeleteIsBlockedByBoundModule(t *testing.T) {
	is, ctx, r, db := testSetup(t)
	envID := createEnvironment(is, db, 1, "Balcón")

	id, _ := r.Create(ctx, "Tomatera", "Tomate", envID)

	is.NoErr(database.SeedModules(ctx, db, []int{5}))
	is.NoErr(db.Model(&database.Modulo{}).Where(`"ID" = ?`, 5).Update("IdPlanta", id).Error)

	humidity := 40
	is.NoErr(db.Create(&database.Registro{IDPlanta: id, HumedadDsp: &humidity, Fecha: time.Now().UTC()}).Error)

	bound, err := r.HasModule(ctx, id)
	is.NoErr(err)
	is.True(bound)

	err = r.Delete(ctx, id, 1)
	is.True(errors.Is(err, database.ErrConflict))

	is.NoErr(db.Model(&database.Modulo{}).Where(`"ID" = ?`, 5).Update("IdPlanta", nil).Error)

	err = r.Delete(ctx, id, 2)
	is.Equal(database.ErrNotFound, err)

	is.NoErr(r.Delete(ctx, id, 1))

	var count int64
	is.NoErr(db.Model(&database.Registro{}).Where(`"IdPlanta" = ?`, id).Count(&count).Error)
	is.Equal(int64(0), count)

	err = r.Delete(ctx, id, 1)
	is.Equal(database.ErrNotFound, err)
}

func TestUpdateIsGuardedByOwner(t *testing.T) {
	is, ctx, r, db := testSetup(t)
	envID := createEnvironment(is, db, 1, "Balcón")

	id, _ := r.Create(ctx, "Tomatera", "Tomate", envID)

	name := "Tomatera cherry"
	photo := "https://img.example.org/tomatera.png"

	_, err := r.Update(ctx, id, 2, types.PlantUpdate{Name: &name})
	is.Equal(database.ErrNotFound, err)

	p, err := r.Update(ctx, id, 1, types.PlantUpdate{Name: &name, Photo: &photo})
	is.NoErr(err)
	is.Equal("Tomatera cherry", p.Name)
	is.Equal(photo, *p.Photo)
	is.Equal("Tomate", p.Type)
}

func TestListByUserIncludesEnvironmentName(t *testing.T) {
	is, ctx, r, db := testSetup(t)

	balcon := createEnvironment(is, db, 1, "Balcón")
	cocina := createEnvironment(is, db, 1, "Cocina")
	ajeno := createEnvironment(is, db, 2, "Jardín")

	first, _ := r.Create(ctx, "Tomatera", "Tomate", balcon)
	second, _ := r.Create(ctx, "Albahaca", "Albahaca", cocina)
	_, _ = r.Create(ctx, "Rosal", "Rosa", ajeno)

	list, err := r.ListByUser(ctx, 1)
	is.NoErr(err)
	is.Equal(2, len(list))

	is.Equal(first, list[0].ID)
	is.Equal("Balcón", list[0].Environment)
	is.Equal(second, list[1].ID)
	is.Equal("Cocina", list[1].Environment)

	list, err = r.ListByUser(ctx, 3)
	is.NoErr(err)
	is.Equal(0, len(list))
}

func createEnvironment(is *is.I, db *gorm.DB, userID int, name string) int {
	a := database.Ambiente{Nombre: name, IDUsuario: userID}
	is.NoErr(db.Create(&a).Error)
	return a.ID
}

func testSetup(t *testing.T) (*is.I, context.Context, *Repository, *gorm.DB) {
	is := is.New(t)
	ctx := context.Background()

	db, err := database.Open(ctx, database.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	return is, ctx, New(db), db
}
