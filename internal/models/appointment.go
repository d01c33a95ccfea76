package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// PublicID é o identificador exposto ao widget público; o ID numérico
	// fica restrito ao painel do barbeiro.
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	BarbershopID uint       `json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint `gorm:"index" json:"barber_id"`
	Barber   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	// Intervalo meio-aberto [StartTime, EndTime) em UTC. EndTime é derivado
	// da soma das durações dos serviços.
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	TotalDurationMin int     `json:"total_duration_min"`
	FullPrice        float64 `gorm:"type:decimal(10,2)" json:"full_price"`
	ChargeableAmount float64 `gorm:"type:decimal(10,2)" json:"chargeable_amount"`

	Services []AppointmentService `gorm:"constraint:OnDelete:CASCADE" json:"services"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentService é a fotografia de um serviço no momento da reserva.
// Nome, duração e preço nunca mudam depois de criados, mesmo que o
// catálogo seja editado.
type AppointmentService struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`

	ServiceID     uint    `json:"service_id"`
	Name          string  `gorm:"size:100" json:"name"`
	DurationMin   int     `json:"duration_min"`
	Price         float64 `gorm:"type:decimal(10,2)" json:"price"`
	CoveredByPlan bool    `json:"covered_by_plan"`
}
