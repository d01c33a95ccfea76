package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/navalha-app/agenda-api/internal/models"
)

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	PublicID         uuid.UUID `json:"public_id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	CustomerName     string    `json:"customer_name"`
	Services         []string  `json:"services"`
	FullPrice        float64   `json:"full_price"`
	ChargeableAmount float64   `json:"chargeable_amount"`
}

func FromAppointments(appointments []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		names := make([]string, 0, len(ap.Services))
		for _, line := range ap.Services {
			names = append(names, line.Name)
		}
		out = append(out, AppointmentListDTO{
			ID:               ap.ID,
			PublicID:         ap.PublicID,
			StartTime:        ap.StartTime,
			EndTime:          ap.EndTime,
			Status:           ap.Status,
			CustomerName:     ap.Customer.Name,
			Services:         names,
			FullPrice:        ap.FullPrice,
			ChargeableAmount: ap.ChargeableAmount,
		})
	}
	return out
}
