package application

import (
	"context"
	"fmt"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/environments"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/events"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/plants"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/sensors"
	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	envdb "github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database/environments"
	plantdb "github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database/plants"
	sensordb "github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database/sensors"
	"gorm.io/gorm"
)

type App struct {
	Environments environments.Service
	Plants       plants.Service
	Sensors      sensors.Service
}

// New wires the services on top of db. sender may be nil.
func New(db *gorm.DB, sender events.EventSender) App {
	plantSvc := plants.New(plantdb.New(db))

	var publisher sensors.EventPublisher
	if sender != nil {
		publisher = sender
	}

	return App{
		Environments: environments.New(envdb.New(db)),
		Plants:       plantSvc,
		Sensors:      sensors.New(sensordb.New(db), plantSvc, publisher),
	}
}

// Seed loads the reference plant types and the known modules from cfg.
func Seed(ctx context.Context, db *gorm.DB, cfg *Config) error {
	if cfg == nil {
		return nil
	}

	log := logging.GetFromContext(ctx)

	if err := database.SeedPlantTypes(ctx, db, cfg.PlantTypes); err != nil {
		return fmt.Errorf("could not seed plant types, %w", err)
	}

	if err := database.SeedModules(ctx, db, cfg.Modules); err != nil {
		return fmt.Errorf("could not seed modules, %w", err)
	}

	log.Info().Int("planttypes", len(cfg.PlantTypes)).Int("modules", len(cfg.Modules)).Msg("reference data seeded")

	return nil
}
