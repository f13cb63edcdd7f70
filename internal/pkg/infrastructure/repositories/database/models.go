package database

import (
	"time"
)

// The table and column names below are shared with an existing store and must stay
// exactly as they are, including case.

type Usuario struct {
	ID        int    `gorm:"column:ID;primaryKey"`
	Nombre    string `gorm:"column:Nombre"`
	Email     string `gorm:"column:Email;uniqueIndex"`
	Password  string `gorm:"column:Password"`
	Direccion string `gorm:"column:Direccion"`
}

func (Usuario) TableName() string { return "Usuario" }

type Ambiente struct {
	ID          int      `gorm:"column:ID;primaryKey"`
	Nombre      string   `gorm:"column:Nombre;not null;uniqueIndex:idx_ambiente_usuario_nombre,priority:2"`
	Temperatura *float64 `gorm:"column:Temperatura"`
	IDUsuario   int      `gorm:"column:IdUsuario;not null;uniqueIndex:idx_ambiente_usuario_nombre,priority:1"`
}

func (Ambiente) TableName() string { return "Ambiente" }

type Planta struct {
	ID         int     `gorm:"column:ID;primaryKey"`
	Nombre     string  `gorm:"column:Nombre;not null"`
	Tipo       string  `gorm:"column:Tipo;not null"`
	IDAmbiente int     `gorm:"column:IdAmbiente;not null;index"`
	Foto       *string `gorm:"column:Foto"`
}

func (Planta) TableName() string { return "Planta" }

type TipoEspecifico struct {
	Nombre string `gorm:"column:Nombre;primaryKey"`
	Grupo  string `gorm:"column:Grupo"`
}

func (TipoEspecifico) TableName() string { return "TipoEspecifico" }

// Modulo.IDPlanta is unique, so a plant can be bound by at most one module.
// NULLs do not collide, so any number of modules can be unbound.
type Modulo struct {
	ID       int  `gorm:"column:ID;primaryKey"`
	IDPlanta *int `gorm:"column:IdPlanta;uniqueIndex"`
}

func (Modulo) TableName() string { return "Modulo" }

type Registro struct {
	ID            int       `gorm:"column:ID;primaryKey"`
	IDPlanta      int       `gorm:"column:IdPlanta;not null;index:idx_registro_planta_fecha,priority:1"`
	Temperatura   *float64  `gorm:"column:Temperatura"`
	HumedadDsp    *int      `gorm:"column:HumedadDsp"`
	Fecha         time.Time `gorm:"column:Fecha;not null;index:idx_registro_planta_fecha,priority:2"`
	HumedadAntes  *int      `gorm:"column:HumedadAntes"`
	DuracionRiego *float64  `gorm:"column:DuracionRiego"`
}

func (Registro) TableName() string { return "Registro" }

func AllModels() []any {
	return []any{&Usuario{}, &Ambiente{}, &Planta{}, &TipoEspecifico{}, &Modulo{}, &Registro{}}
}
