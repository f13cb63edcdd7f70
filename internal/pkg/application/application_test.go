package application

import (
	"context"
	"strings"
	"testing"

	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const configYaml string = `
planttypes:
  - name: Albahaca
    group: Aromáticas
  - name: Tomate
    group: Hortalizas
modules: [1, 2, 3]
notifications:
  - id: riegos
    name: Riegos registrados
    type: plant.wateringRecorded
    subscribers:
    - endpoint: http://api-notification:8990
`

func TestConfig(t *testing.T) {
	is, _, _ := setupTest(t)

	cfg, err := LoadConfiguration(strings.NewReader(configYaml))
	is.NoErr(err)

	is.Equal(2, len(cfg.PlantTypes))
	is.Equal("Hortalizas", cfg.PlantTypes[1].Group)
	is.Equal([]int{1, 2, 3}, cfg.Modules)
	is.Equal(1, len(cfg.Events().Notifications))
	is.Equal("riegos", cfg.Events().Notifications[0].ID)
	is.Equal("http://api-notification:8990", cfg.Events().Notifications[0].Subscribers[0].Endpoint)
}

func TestSeedAndServe(t *testing.T) {
	is, ctx, db := setupTest(t)

	cfg, err := LoadConfiguration(strings.NewReader(configYaml))
	is.NoErr(err)

	is.NoErr(Seed(ctx, db, cfg))
	is.NoErr(Seed(ctx, db, cfg))

	app := New(db, nil)

	envID, err := app.Environments.Create(ctx, 1, "Huerto")
	is.NoErr(err)

	plantID, err := app.Plants.Add(ctx, "Tomatera", "Tomate", envID, 1)
	is.NoErr(err)

	moduleID, err := app.Sensors.ConnectModule(ctx, plantID, 3)
	is.NoErr(err)
	is.Equal(3, moduleID)
}

func TestSeedWithoutConfig(t *testing.T) {
	is, ctx, db := setupTest(t)
	is.NoErr(Seed(ctx, db, nil))
}

func setupTest(t *testing.T) (*is.I, context.Context, *gorm.DB) {
	is := is.New(t)
	ctx := context.Background()

	db, err := database.Open(ctx, database.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	return is, ctx, db
}
