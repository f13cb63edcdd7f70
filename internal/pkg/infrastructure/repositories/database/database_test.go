package database

import (
	"context"
	"errors"
	"testing"

	"github.com/huertapp/plant-mgmt/pkg/types"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func TestSeedIsIdempotent(t *testing.T) {
	is, ctx, db := setup(t)

	plantTypes := []types.PlantType{
		{Name: "Hierba", Group: "Aromáticas"},
		{Name: " Suculenta ", Group: "Crasas"},
		{Name: "Hierba", Group: "Duplicada"},
	}

	is.NoErr(SeedPlantTypes(ctx, db, plantTypes))
	is.NoErr(SeedPlantTypes(ctx, db, plantTypes))

	var count int64
	is.NoErr(db.Model(&TipoEspecifico{}).Count(&count).Error)
	is.Equal(int64(2), count)

	var suculenta TipoEspecifico
	is.NoErr(db.Where(`"Nombre" = ?`, "Suculenta").Take(&suculenta).Error)
	is.Equal("Crasas", suculenta.Grupo)

	is.NoErr(SeedModules(ctx, db, []int{1, 2, 2, 3}))
	is.NoErr(SeedModules(ctx, db, []int{3}))
	is.NoErr(db.Model(&Modulo{}).Count(&count).Error)
	is.Equal(int64(3), count)
}

func TestSeedRejectsBadInput(t *testing.T) {
	is, ctx, db := setup(t)

	is.True(SeedPlantTypes(ctx, db, []types.PlantType{{Name: "  "}}) != nil)
	is.True(SeedModules(ctx, db, []int{0}) != nil)
}

func TestModuleBindingIsUnique(t *testing.T) {
	is, ctx, db := setup(t)

	is.NoErr(SeedModules(ctx, db, []int{1, 2}))

	plantID := 7
	is.NoErr(db.Model(&Modulo{}).Where(`"ID" = ?`, 1).Update("IdPlanta", plantID).Error)

	err := db.Model(&Modulo{}).Where(`"ID" = ?`, 2).Update("IdPlanta", plantID).Error
	is.True(errors.Is(Classify(err), ErrConflict))
}

func TestPlantOwnedByScope(t *testing.T) {
	is, _, db := setup(t)

	is.NoErr(db.Create(&Ambiente{ID: 1, Nombre: "Balcón", IDUsuario: 10}).Error)
	is.NoErr(db.Create(&Ambiente{ID: 2, Nombre: "Cocina", IDUsuario: 20}).Error)
	is.NoErr(db.Create(&Planta{ID: 1, Nombre: "Albahaca", Tipo: "Hierba", IDAmbiente: 1}).Error)
	is.NoErr(db.Create(&Planta{ID: 2, Nombre: "Romero", Tipo: "Hierba", IDAmbiente: 2}).Error)

	var owned []Planta
	is.NoErr(db.Scopes(PlantOwnedBy(10)).Find(&owned).Error)
	is.Equal(1, len(owned))
	is.Equal("Albahaca", owned[0].Nombre)

	var p Planta
	err := db.Scopes(PlantOwnedBy(10), PlantWithID(2)).Take(&p).Error
	is.Equal(ErrNotFound, Classify(err))
}

func TestClassify(t *testing.T) {
	is := is.New(t)

	is.Equal(nil, Classify(nil))
	is.Equal(ErrNotFound, Classify(gorm.ErrRecordNotFound))
	is.True(errors.Is(Classify(gorm.ErrDuplicatedKey), ErrConflict))
	is.True(errors.Is(Classify(errors.New("disk full")), ErrRepositoryError))
}

func setup(t *testing.T) (*is.I, context.Context, *gorm.DB) {
	is := is.New(t)
	ctx := context.Background()

	db, err := Open(ctx, NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	return is, ctx, db
}
