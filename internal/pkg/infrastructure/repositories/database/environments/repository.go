package environments

import (
	"context"
	"strings"

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

func (r *Repository) Create(ctx context.Context, userID int, name string) (int, error) {
	a := database.Ambiente{
		Nombre:    name,
		IDUsuario: userID,
	}

	err := r.db.WithContext(ctx).Create(&a).Error
	if err != nil {
		return 0, database.Classify(err)
	}

	return a.ID, nil
}

func (r *Repository) FindByName(ctx context.Context, userID int, name string) (types.Environment, error) {
	var a database.Ambiente

	err := r.db.WithContext(ctx).
		Where(`"IdUsuario" = ? AND "Nombre" = ?`, userID, name).
		Take(&a).Error
	if err != nil {
		return types.Environment{}, database.Classify(err)
	}

	return toEnvironment(a, nil), nil
}

func (r *Repository) GetByID(ctx context.Context, environmentID int) (types.Environment, error) {
	var a database.Ambiente

	err := r.db.WithContext(ctx).Where(`"ID" = ?`, environmentID).Take(&a).Error
	if err != nil {
		return types.Environment{}, database.Classify(err)
	}

	return toEnvironment(a, nil), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int) ([]types.Environment, error) {
	var ambientes []database.Ambiente

	err := r.db.WithContext(ctx).
		Where(`"IdUsuario" = ?`, userID).
		Order(`"Nombre" ASC`).
		Find(&ambientes).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	if len(ambientes) == 0 {
		return []types.Environment{}, nil
	}

	ids := lo.Map(ambientes, func(a database.Ambiente, _ int) int { return a.ID })

	var plantas []database.Planta
	err = r.db.WithContext(ctx).
		Where(`"IdAmbiente" IN ?`, ids).
		Order(`"Nombre" ASC`).
		Find(&plantas).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	byEnvironment := lo.GroupBy(plantas, func(p database.Planta) int { return p.IDAmbiente })

	return lo.Map(ambientes, func(a database.Ambiente, _ int) types.Environment {
		return toEnvironment(a, byEnvironment[a.ID])
	}), nil
}

// Update applies the fields set in update to an environment owned by userID.
func (r *Repository) Update(ctx context.Context, environmentID, userID int, update types.EnvironmentUpdate) (types.Environment, error) {
	fields := map[string]any{}

	if update.Name != nil {
		fields["Nombre"] = *update.Name
	}
	if update.Temperature != nil {
		fields["Temperatura"] = *update.Temperature
	}

	if len(fields) > 0 {
		result := r.db.WithContext(ctx).
			Model(&database.Ambiente{}).
			Where(`"ID" = ? AND "IdUsuario" = ?`, environmentID, userID).
			Updates(fields)
		if result.Error != nil {
			return types.Environment{}, database.Classify(result.Error)
		}
		if result.RowsAffected == 0 {
			return types.Environment{}, database.ErrNotFound
		}
	}

	return r.GetByID(ctx, environmentID)
}

func toEnvironment(a database.Ambiente, plantas []database.Planta) types.Environment {
	names := lo.Map(plantas, func(p database.Planta, _ int) string { return strings.TrimSpace(p.Nombre) })

	return types.Environment{
		ID:          a.ID,
		Name:        a.Nombre,
		Temperature: a.Temperatura,
		UserID:      a.IDUsuario,
		Plants:      names,
	}
}
