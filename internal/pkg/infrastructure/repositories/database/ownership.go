package database

import "gorm.io/gorm"

// PlantOwnedBy limits a statement on "Planta" to plants whose environment belongs
// to userID. Plants carry no user column; ownership is only ever decided through
// "Ambiente", and every plant read, update and delete goes through this scope.
func PlantOwnedBy(userID int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`"Planta"."IdAmbiente" IN (SELECT "Ambiente"."ID" FROM "Ambiente" WHERE "Ambiente"."IdUsuario" = ?)`, userID)
	}
}

func PlantWithID(plantID int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`"Planta"."ID" = ?`, plantID)
	}
}
