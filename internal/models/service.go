package models

import "time"

// Service é um item do catálogo. Duração e preço são mutáveis; no momento
// da reserva os valores são congelados em AppointmentService, então editar
// o catálogo nunca altera agendamentos já criados.
type Service struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `gorm:"type:decimal(10,2)" json:"price"`
	MemberOnly  bool    `gorm:"default:false" json:"member_only"`
	Active      bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
