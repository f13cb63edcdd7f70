package sensors

import (
	"context"
	"errors"
	"time"

	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetModule(ctx context.Context, moduleID int) (types.Module, error) {
	var m database.Modulo

	err := r.db.WithContext(ctx).Where(`"ID" = ?`, moduleID).Take(&m).Error
	if err != nil {
		return types.Module{}, database.Classify(err)
	}

	return types.Module{ID: m.ID, PlantID: m.IDPlanta}, nil
}

func (r *Repository) ModulesForPlant(ctx context.Context, plantID int) ([]int, error) {
	return modulesForPlant(r.db.WithContext(ctx), plantID)
}

func (r *Repository) PlantExists(ctx context.Context, plantID int) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&database.Planta{}).
		Scopes(database.PlantWithID(plantID)).
		Count(&count).Error
	if err != nil {
		return false, database.Classify(err)
	}

	return count > 0, nil
}

// Connect binds moduleID to plantID with a single conditional update. The update
// only matches while the module is unbound, no other module is bound to the plant
// and the plant exists. ErrConflict is returned when nothing matched.
func (r *Repository) Connect(ctx context.Context, moduleID, plantID int) error {
	result := r.db.WithContext(ctx).
		Model(&database.Modulo{}).
		Where(`"ID" = ? AND "IdPlanta" IS NULL`, moduleID).
		Where(`NOT EXISTS (SELECT 1 FROM "Modulo" AS "bound" WHERE "bound"."IdPlanta" = ?)`, plantID).
		Where(`EXISTS (SELECT 1 FROM "Planta" WHERE "Planta"."ID" = ?)`, plantID).
		Update("IdPlanta", plantID)
	if result.Error != nil {
		return database.Classify(result.Error)
	}

	if result.RowsAffected == 0 {
		return database.ErrConflict
	}

	return nil
}

// Disconnect clears every binding to plantID and returns the ids of the modules
// that were released. ErrNotFound is returned when no module was bound.
func (r *Repository) Disconnect(ctx context.Context, plantID int) ([]int, error) {
	var released []int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids, err := modulesForPlant(tx, plantID)
		if err != nil {
			return err
		}

		if len(ids) == 0 {
			return database.ErrNotFound
		}

		err = tx.Model(&database.Modulo{}).
			Where(`"ID" IN ? AND "IdPlanta" = ?`, ids, plantID).
			Update("IdPlanta", nil).Error
		if err != nil {
			return err
		}

		released = ids
		return nil
	})
	if err != nil {
		return nil, database.Classify(err)
	}

	return released, nil
}

func modulesForPlant(db *gorm.DB, plantID int) ([]int, error) {
	var modulos []database.Modulo

	err := db.Where(`"IdPlanta" = ?`, plantID).Order(`"ID" ASC`).Find(&modulos).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	return lo.Map(modulos, func(m database.Modulo, _ int) int { return m.ID }), nil
}

// AddReading stores a sensor sample. HumedadAntes is taken from the latest sample
// for the same plant at or before timestamp, or 0 when there is none. The lookup
// and the insert share one transaction.
func (r *Repository) AddReading(ctx context.Context, plantID int, temperature float64, humidity int, timestamp time.Time) (types.Registro, error) {
	reg := database.Registro{
		IDPlanta:    plantID,
		Temperatura: &temperature,
		HumedadDsp:  &humidity,
		Fecha:       timestamp,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var previous []database.Registro

		err := tx.
			Where(`"IdPlanta" = ? AND "HumedadDsp" IS NOT NULL AND "Fecha" <= ?`, plantID, timestamp).
			Order(`"Fecha" DESC, "ID" DESC`).
			Limit(1).
			Find(&previous).Error
		if err != nil {
			return err
		}

		before := 0
		if len(previous) > 0 && previous[0].HumedadDsp != nil {
			before = *previous[0].HumedadDsp
		}
		reg.HumedadAntes = &before

		return tx.Create(&reg).Error
	})
	if err != nil {
		return types.Registro{}, database.Classify(err)
	}

	return toRegistro(reg), nil
}

func (r *Repository) AddWatering(ctx context.Context, plantID int, durationSeconds float64, timestamp time.Time) (types.Registro, error) {
	before := 0
	reg := database.Registro{
		IDPlanta:      plantID,
		Fecha:         timestamp,
		HumedadAntes:  &before,
		DuracionRiego: &durationSeconds,
	}

	err := r.db.WithContext(ctx).Create(&reg).Error
	if err != nil {
		return types.Registro{}, database.Classify(err)
	}

	return toRegistro(reg), nil
}

// LatestReading returns the most recent row for plantID, sample or watering.
func (r *Repository) LatestReading(ctx context.Context, plantID int) (types.Registro, error) {
	return latest(r.db.WithContext(ctx).Where(`"IdPlanta" = ?`, plantID))
}

func (r *Repository) LatestWatering(ctx context.Context, plantID int) (types.Registro, error) {
	return latest(r.db.WithContext(ctx).Where(`"IdPlanta" = ? AND "DuracionRiego" IS NOT NULL`, plantID))
}

func latest(query *gorm.DB) (types.Registro, error) {
	var reg database.Registro

	err := query.Order(`"Fecha" DESC, "ID" DESC`).Take(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.Registro{}, database.ErrNotFound
		}
		return types.Registro{}, database.Classify(err)
	}

	return toRegistro(reg), nil
}

// Readings returns up to limit rows for plantID, newest first.
func (r *Repository) Readings(ctx context.Context, plantID, limit int) ([]types.Registro, error) {
	var rows []database.Registro

	err := r.db.WithContext(ctx).
		Where(`"IdPlanta" = ?`, plantID).
		Order(`"Fecha" DESC, "ID" DESC`).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	return lo.Map(rows, func(reg database.Registro, _ int) types.Registro { return toRegistro(reg) }), nil
}

func toRegistro(reg database.Registro) types.Registro {
	return types.Registro{
		ID:               reg.ID,
		PlantID:          reg.IDPlanta,
		Temperature:      reg.Temperatura,
		Humidity:         reg.HumedadDsp,
		HumidityBefore:   reg.HumedadAntes,
		WateringDuration: reg.DuracionRiego,
		Timestamp:        reg.Fecha.UTC(),
	}
}
