package models

import "time"

// UnavailabilityBlock marca um intervalo meio-aberto [StartTime, EndTime)
// em que o barbeiro não atende (folga, compromisso). Instantes em UTC.
// Blocos podem se sobrepor entre si; só são confrontados com reservas.
type UnavailabilityBlock struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
