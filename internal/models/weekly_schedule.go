package models

import "time"

// WeeklySchedule é a agenda própria de um barbeiro para um dia da semana.
// No máximo uma linha por (barbeiro, dia). A semântica é assimétrica de
// propósito: um barbeiro sem nenhuma linha segue o horário da barbearia em
// todos os dias; a partir da primeira linha, qualquer dia sem linha fica
// totalmente fechado para ele.
type WeeklySchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_schedule_barber_weekday" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:idx_schedule_barber_weekday" json:"weekday"`

	// Horário local "HH:MM"; StartTime < EndTime.
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
