package types

import "time"

const (
	TopicModuleConnected    = "plant.moduleConnected"
	TopicModuleDisconnected = "plant.moduleDisconnected"
	TopicReadingRecorded    = "plant.readingRecorded"
	TopicWateringRecorded   = "plant.wateringRecorded"
)

type ModuleConnected struct {
	ModuleID  int       `json:"moduleID"`
	PlantID   int       `json:"plantID"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *ModuleConnected) ContentType() string {
	return "application/json"
}
func (m *ModuleConnected) TopicName() string {
	return TopicModuleConnected
}

type ModuleDisconnected struct {
	ModuleIDs []int     `json:"moduleIDs"`
	PlantID   int       `json:"plantID"`
	Timestamp time.Time `json:"timestamp"`
}

func (m *ModuleDisconnected) ContentType() string {
	return "application/json"
}
func (m *ModuleDisconnected) TopicName() string {
	return TopicModuleDisconnected
}

type ReadingRecorded struct {
	Registro
}

func (r *ReadingRecorded) ContentType() string {
	return "application/json"
}
func (r *ReadingRecorded) TopicName() string {
	return TopicReadingRecorded
}

type WateringRecorded struct {
	Registro
}

func (w *WateringRecorded) ContentType() string {
	return "application/json"
}
func (w *WateringRecorded) TopicName() string {
	return TopicWateringRecorded
}
