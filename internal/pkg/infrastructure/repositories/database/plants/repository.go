package plants

import (
	"context"

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

func (r *Repository) TypeExists(ctx context.Context, name string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&database.TipoEspecifico{}).
		Where(`"Nombre" = ?`, name).
		Count(&count).Error
	if err != nil {
		return false, database.Classify(err)
	}

	return count > 0, nil
}

func (r *Repository) Types(ctx context.Context) ([]types.PlantType, error) {
	var tipos []database.TipoEspecifico

	err := r.db.WithContext(ctx).Order(`"Grupo" ASC, "Nombre" ASC`).Find(&tipos).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	return lo.Map(tipos, func(t database.TipoEspecifico, _ int) types.PlantType {
		return types.PlantType{Name: t.Nombre, Group: t.Grupo}
	}), nil
}

func (r *Repository) EnvironmentOwned(ctx context.Context, environmentID, userID int) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&database.Ambiente{}).
		Where(`"ID" = ? AND "IdUsuario" = ?`, environmentID, userID).
		Count(&count).Error
	if err != nil {
		return false, database.Classify(err)
	}

	return count > 0, nil
}

func (r *Repository) Create(ctx context.Context, name, plantType string, environmentID int) (int, error) {
	p := database.Planta{
		Nombre:     name,
		Tipo:       plantType,
		IDAmbiente: environmentID,
	}

	err := r.db.WithContext(ctx).Create(&p).Error
	if err != nil {
		return 0, database.Classify(err)
	}

	return p.ID, nil
}

func (r *Repository) GetOwned(ctx context.Context, plantID, userID int) (types.Plant, error) {
	var p database.Planta

	err := r.db.WithContext(ctx).
		Scopes(database.PlantWithID(plantID), database.PlantOwnedBy(userID)).
		Take(&p).Error
	if err != nil {
		return types.Plant{}, database.Classify(err)
	}

	return toPlant(p), nil
}

func (r *Repository) Exists(ctx context.Context, plantID int) (bool, error) {
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

func (r *Repository) HasModule(ctx context.Context, plantID int) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&database.Modulo{}).
		Where(`"IdPlanta" = ?`, plantID).
		Count(&count).Error
	if err != nil {
		return false, database.Classify(err)
	}

	return count > 0, nil
}

// Delete removes an owned plant and its readings. The delete only matches while
// no module is bound to the plant; ErrConflict is returned when a module is bound.
func (r *Repository) Delete(ctx context.Context, plantID, userID int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Scopes(database.PlantWithID(plantID), database.PlantOwnedBy(userID)).
			Where(`NOT EXISTS (SELECT 1 FROM "Modulo" WHERE "Modulo"."IdPlanta" = ?)`, plantID).
			Delete(&database.Planta{})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			var bound int64
			err := tx.Model(&database.Modulo{}).Where(`"IdPlanta" = ?`, plantID).Count(&bound).Error
			if err != nil {
				return err
			}
			if bound > 0 {
				return database.ErrConflict
			}
			return database.ErrNotFound
		}

		return tx.Where(`"IdPlanta" = ?`, plantID).Delete(&database.Registro{}).Error
	})

	return database.Classify(err)
}

// Update applies the fields set in update to a plant owned by userID.
func (r *Repository) Update(ctx context.Context, plantID, userID int, update types.PlantUpdate) (types.Plant, error) {
	fields := map[string]any{}

	if update.Name != nil {
		fields["Nombre"] = *update.Name
	}
	if update.Type != nil {
		fields["Tipo"] = *update.Type
	}
	if update.Photo != nil {
		fields["Foto"] = *update.Photo
	}

	if len(fields) > 0 {
		result := r.db.WithContext(ctx).
			Model(&database.Planta{}).
			Scopes(database.PlantWithID(plantID), database.PlantOwnedBy(userID)).
			Updates(fields)
		if result.Error != nil {
			return types.Plant{}, database.Classify(result.Error)
		}
		if result.RowsAffected == 0 {
			return types.Plant{}, database.ErrNotFound
		}
	}

	return r.GetOwned(ctx, plantID, userID)
}

type plantRow struct {
	ID         int     `gorm:"column:ID"`
	Nombre     string  `gorm:"column:Nombre"`
	Tipo       string  `gorm:"column:Tipo"`
	IDAmbiente int     `gorm:"column:IdAmbiente"`
	Foto       *string `gorm:"column:Foto"`
	Ambiente   string  `gorm:"column:Ambiente"`
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]types.Plant, error) {
	var rows []plantRow

	err := r.db.WithContext(ctx).
		Model(&database.Planta{}).
		Select(`"Planta"."ID", "Planta"."Nombre", "Planta"."Tipo", "Planta"."IdAmbiente", "Planta"."Foto", "Ambiente"."Nombre" AS "Ambiente"`).
		Joins(`INNER JOIN "Ambiente" ON "Ambiente"."ID" = "Planta"."IdAmbiente"`).
		Scopes(database.PlantOwnedBy(userID)).
		Order(`"Planta"."ID" ASC`).
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	return lo.Map(rows, func(p plantRow, _ int) types.Plant {
		return types.Plant{
			ID:            p.ID,
			Name:          p.Nombre,
			Type:          p.Tipo,
			EnvironmentID: p.IDAmbiente,
			Environment:   p.Ambiente,
			Photo:         p.Foto,
		}
	}), nil
}

func toPlant(p database.Planta) types.Plant {
	return types.Plant{
		ID:            p.ID,
		Name:          p.Nombre,
		Type:          p.Tipo,
		EnvironmentID: p.IDAmbiente,
		Photo:         p.Foto,
	}
}
