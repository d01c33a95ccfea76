package appointment

import "github.com/navalha-app/agenda-api/internal/models"

// BookingTotals acumula os valores derivados das linhas de serviço.
// ChargeableAmount + CoveredAmount == FullPrice, sempre.
type BookingTotals struct {
	DurationMin      int
	FullPrice        float64
	CoveredAmount    float64
	ChargeableAmount float64
}

// BuildServiceLines congela nome, duração e preço de cada serviço no
// momento da reserva e marca as linhas cobertas pelo plano do cliente.
// O preço cheio é mantido só para exibição; o cliente paga apenas a soma
// das linhas não cobertas.
func BuildServiceLines(services []models.Service, covered map[uint]bool) ([]models.AppointmentService, BookingTotals) {
	lines := make([]models.AppointmentService, 0, len(services))
	var totals BookingTotals

	for _, svc := range services {
		line := models.AppointmentService{
			ServiceID:     svc.ID,
			Name:          svc.Name,
			DurationMin:   svc.DurationMin,
			Price:         svc.Price,
			CoveredByPlan: covered[svc.ID],
		}

		totals.DurationMin += svc.DurationMin
		totals.FullPrice += svc.Price
		if line.CoveredByPlan {
			totals.CoveredAmount += svc.Price
		} else {
			totals.ChargeableAmount += svc.Price
		}

		lines = append(lines, line)
	}

	return lines, totals
}
