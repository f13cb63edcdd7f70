package sensors

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/repositories/database"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func TestConnectIsGuardedInBothDirections(t *testing.T) {
	is, ctx, r, db := testSetup(t)

	p1 := createPlant(is, db, "Albahaca")
	p2 := createPlant(is, db, "Romero")
	is.NoErr(database.SeedModules(ctx, db, []int{1, 2}))

	is.NoErr(r.Connect(ctx, 1, p1))

	m, err := r.GetModule(ctx, 1)
	is.NoErr(err)
	is.True(m.Bound())
	is.Equal(p1, *m.PlantID)

	err = r.Connect(ctx, 1, p2)
	is.True(errors.Is(err, database.ErrConflict)) // module already bound

	err = r.Connect(ctx, 2, p1)
	is.True(errors.Is(err, database.ErrConflict)) // plant already bound

	err = r.Connect(ctx, 2, p2+100)
	is.True(errors.Is(err, database.ErrConflict)) // plant missing

	is.NoErr(r.Connect(ctx, 2, p2))
}

func TestDisconnectReleasesModule(t *testing.T) {
	is, ctx, r, db := testSetup(t)

	p1 := createPlant(is, db, "Albahaca")
	p2 := createPlant(is, db, "Romero")
	is.NoErr(database.SeedModules(ctx, db, []int{1}))

	_, err := r.Disconnect(ctx, p1)
	is.Equal(database.ErrNotFound, err)

	is.NoErr(r.Connect(ctx, 1, p1))

	ids, err := r.ModulesForPlant(ctx, p1)
	is.NoErr(err)
	is.Equal([]int{1}, ids)

	ids, err = r.Disconnect(ctx, p1)
	is.NoErr(err)
	is.Equal([]int{1}, ids)

	m, err := r.GetModule(ctx, 1)
	is.NoErr(err)
	is.True(!m.Bound())

	is.NoErr(r.Connect(ctx, 1, p2))
}

func TestGetUnknownModule(t *testing.T) {
	is, ctx, r, _ := testSetup(t)

	_, err := r.GetModule(ctx, 42)
	is.Equal(database.ErrNotFound, err)
}

func TestReadingCarriesPreviousHumidity(t *testing.T) {
	is, ctx, r, db := testSetup(t)

	plant := createPlant(is, db, "Albahaca")
	other := createPlant(is, db, "Romero")
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, err := r.AddReading(ctx, other, 20.0, 90, t0)
	is.NoErr(err)

	a, err := r.AddReading(ctx, plant, 21.5, 40, t0)
	is.NoErr(err)
	is.Equal(0, *a.HumidityBefore)

	_, err = r.AddWatering(ctx, plant, 30, t0.Add(30*time.Minute))
	is.NoErr(err)

	b, err := r.AddReading(ctx, plant, 22.0, 55, t0.Add(time.Hour))
	is.NoErr(err)
	is.Equal(40, *b.HumidityBefore)
	is.Equal(55, *b.Humidity)
	is.True(b.Timestamp.Equal(t0.Add(time.Hour)))
}

func TestLatestReadingAndWatering(t *testing.T) {
	is, ctx, r, db := testSetup(t)

	plant := createPlant(is, db, "Albahaca")
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, err := r.LatestReading(ctx, plant)
	is.Equal(database.ErrNotFound, err)
	_, err = r.LatestWatering(ctx, plant)
	is.Equal(database.ErrNotFound, err)

	_, _ = r.AddReading(ctx, plant, 20.0, 40, t0)
	_, _ = r.AddReading(ctx, plant, 21.0, 45, t0.Add(time.Hour))
	w, err := r.AddWatering(ctx, plant, 12.5, t0.Add(2*time.Hour))
	is.NoErr(err)
	is.Equal(0, *w.HumidityBefore)
	is.True(w.Humidity == nil)
	is.True(w.IsWatering())

	latest, err := r.LatestReading(ctx, plant)
	is.NoErr(err)
	is.Equal(w.ID, latest.ID)
	is.True(latest.IsWatering())

	watering, err := r.LatestWatering(ctx, plant)
	is.NoErr(err)
	is.Equal(12.5, *watering.WateringDuration)

	rows, err := r.Readings(ctx, plant, 2)
	is.NoErr(err)
	is.Equal(2, len(rows))
	is.True(rows[0].IsWatering())
	is.Equal(45, *rows[1].Humidity)
}

func TestLatestReadingReturnsWateringRecordedAfterSample(t *testing.T) {
	is, ctx, r, db := testSetup(t)

	plant := createPlant(is, db, "Tomate")
	t0 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	a, err := r.AddReading(ctx, plant, 20.0, 40, t0)
	is.NoErr(err)

	latest, err := r.LatestReading(ctx, plant)
	is.NoErr(err)
	is.Equal(a.ID, latest.ID)

	w, err := r.AddWatering(ctx, plant, 30, t0.Add(time.Minute))
	is.NoErr(err)

	latest, err = r.LatestReading(ctx, plant)
	is.NoErr(err)
	is.Equal(w.ID, latest.ID)
	is.Equal(30.0, *latest.WateringDuration)
	is.True(latest.Humidity == nil)
}

func createPlant(is *is.I, db *gorm.DB, name string) int {
	a := database.Ambiente{Nombre: "Ambiente " + name, IDUsuario: 1}
	is.NoErr(db.Create(&a).Error)

	p := database.Planta{Nombre: name, Tipo: "Hierba", IDAmbiente: a.ID}
	is.NoErr(db.Create(&p).Error)

	return p.ID
}

func testSetup(t *testing.T) (*is.I, context.Context, *Repository, *gorm.DB) {
	is := is.New(t)
	ctx := context.Background()

	db, err := database.Open(ctx, database.NewSQLiteConnector(zerolog.Nop()))
	is.NoErr(err)

	return is, ctx, New(db), db
}
