package models

import "time"

// Plano de assinatura da barbearia. Os serviços cobertos ficam em
// PlanService; a cobertura efetiva de um cliente é derivada na hora da
// reserva a partir da assinatura ativa e não vencida.
type MembershipPlan struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	Name   string  `gorm:"size:100;not null" json:"name"`
	Price  float64 `gorm:"type:decimal(10,2)" json:"price"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlanService struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PlanID    uint `gorm:"uniqueIndex:idx_plan_service" json:"plan_id"`
	ServiceID uint `gorm:"uniqueIndex:idx_plan_service" json:"service_id"`
}

// CustomerPlan é a assinatura de um cliente.
type CustomerPlan struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	CustomerID uint `gorm:"index" json:"customer_id"`
	PlanID     uint `json:"plan_id"`

	ExpiresAt time.Time `json:"expires_at"`
	Active    bool      `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
}
