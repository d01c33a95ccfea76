package appointment

import (
	"time"

	"github.com/navalha-app/agenda-api/internal/models"
)

// Overlaps testa interseção entre dois intervalos meio-abertos
// [aStart, aEnd) e [bStart, bEnd). Encostar exatamente na borda não é
// conflito: um slot pode começar onde outro agendamento termina.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasBlockConflict informa se o candidato cruza algum bloqueio do barbeiro.
func HasBlockConflict(blocks []models.UnavailabilityBlock, start, end time.Time) bool {
	for _, b := range blocks {
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// HasAppointmentConflict confronta o candidato com o intervalo completo
// [StartTime, EndTime) de cada agendamento que ainda ocupa horário, de modo
// que reservas com vários serviços bloqueiem a duração inteira. Cancelados
// liberam o slot na hora.
func HasAppointmentConflict(existing []models.Appointment, start, end time.Time) bool {
	for _, ap := range existing {
		if !Occupies(Status(ap.Status)) {
			continue
		}
		if Overlaps(start, end, ap.StartTime, ap.EndTime) {
			return true
		}
	}
	return false
}
