package types

import (
	"time"
)

type Environment struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Temperature *float64 `json:"temperature,omitempty"`
	UserID      int      `json:"userID"`
	Plants      []string `json:"plants"`
}

type EnvironmentUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

func (u EnvironmentUpdate) IsEmpty() bool {
	return u.Name == nil && u.Temperature == nil
}

type Plant struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	EnvironmentID int     `json:"environmentID,omitempty"`
	Environment   string  `json:"environment,omitempty"`
	Photo         *string `json:"photo,omitempty"`
}

type PlantUpdate struct {
	Name  *string `json:"name,omitempty"`
	Type  *string `json:"type,omitempty"`
	Photo *string `json:"photo,omitempty"`
}

func (u PlantUpdate) IsEmpty() bool {
	return u.Name == nil && u.Type == nil && u.Photo == nil
}

type PlantType struct {
	Name  string `json:"name" yaml:"name"`
	Group string `json:"group" yaml:"group"`
}

type Module struct {
	ID      int  `json:"id"`
	PlantID *int `json:"plantID,omitempty"`
}

func (m Module) Bound() bool {
	return m.PlantID != nil
}

// Registro is either a sensor sample (Temperature/Humidity set) or a watering
// event (WateringDuration set).
type Registro struct {
	ID               int       `json:"id"`
	PlantID          int       `json:"plantID"`
	Temperature      *float64  `json:"temperature,omitempty"`
	Humidity         *int      `json:"humidity,omitempty"`
	HumidityBefore   *int      `json:"humidityBefore,omitempty"`
	WateringDuration *float64  `json:"wateringDuration,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

func (r Registro) IsWatering() bool {
	return r.WateringDuration != nil
}
