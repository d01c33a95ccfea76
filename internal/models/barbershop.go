package models

import "time"

// Barbershop é o tenant. As configurações do calendário (abertura,
// fechamento, passo dos slots e dias habilitados) moram aqui e valem para
// todo barbeiro que não tenha agenda semanal própria.
type Barbershop struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	OpenHour          int    `gorm:"default:8" json:"open_hour"`
	CloseHour         int    `gorm:"default:20" json:"close_hour"`
	SlotStrideMinutes int    `gorm:"default:30" json:"slot_stride_minutes"`
	EnabledWeekdays   string `gorm:"size:20;default:'1,2,3,4,5,6'" json:"enabled_weekdays"`

	// Antecedência mínima (em minutos) para o cliente cancelar sozinho.
	CancelMinNoticeMinutes int `gorm:"default:120" json:"cancel_min_notice_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
