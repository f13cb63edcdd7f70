package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/huertapp/plant-mgmt/pkg/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedPlantTypes inserts the reference plant types. Existing names are left untouched.
func SeedPlantTypes(ctx context.Context, db *gorm.DB, plantTypes []types.PlantType) error {
	rows := make([]TipoEspecifico, 0, len(plantTypes))

	for idx, pt := range plantTypes {
		name := strings.TrimSpace(pt.Name)
		if name == "" {
			return fmt.Errorf("plant type %d has no name", idx+1)
		}
		rows = append(rows, TipoEspecifico{Nombre: name, Grupo: strings.TrimSpace(pt.Group)})
	}

	rows = lo.UniqBy(rows, func(t TipoEspecifico) string { return t.Nombre })

	if len(rows) == 0 {
		return nil
	}

	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// SeedModules registers known physical modules as unbound. Modules that already
// exist keep their current binding.
func SeedModules(ctx context.Context, db *gorm.DB, moduleIDs []int) error {
	ids := lo.Uniq(moduleIDs)

	rows := make([]Modulo, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("module id %d is not positive", id)
		}
		rows = append(rows, Modulo{ID: id})
	}

	if len(rows) == 0 {
		return nil
	}

	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
