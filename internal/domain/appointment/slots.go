package appointment

import (
	"time"

	"github.com/navalha-app/agenda-api/internal/models"
	"github.com/navalha-app/agenda-api/internal/timezone"
)

// SlotRequest descreve uma consulta de disponibilidade para um dia.
type SlotRequest struct {
	Shop *models.Barbershop
	// Day é a meia-noite local do dia consultado.
	Day time.Time
	// DurationMin é a soma das durações dos serviços pedidos; nenhum
	// arredondamento é aplicado.
	DurationMin int
	Now         time.Time
}

// BarberDay reúne o que o gerador precisa sobre um barbeiro no dia:
// a agenda semanal completa (o resolver olha todas as linhas, não só a do
// dia), os bloqueios e os agendamentos que tocam o dia.
type BarberDay struct {
	Barber       models.User
	Schedules    []models.WeeklySchedule
	Blocks       []models.UnavailabilityBlock
	Appointments []models.Appointment
}

// GenerateSlots enumera, em ordem, os horários "HH:MM" em que pelo menos um
// dos barbeiros consegue atender a duração pedida. Os candidatos andam da
// abertura ao fechamento da barbearia no passo configurado — passos de
// 15, 45 ou 90 minutos funcionam igual, nada é amarrado à hora cheia.
func GenerateSlots(req SlotRequest, barbers []BarberDay) []string {
	stride := req.Shop.SlotStrideMinutes
	if stride <= 0 {
		stride = 30
	}

	openMin := req.Shop.OpenHour * 60
	closeMin := req.Shop.CloseHour * 60
	weekday := timezone.Weekday(req.Day)
	sameDay := timezone.DateKey(req.Now) == timezone.DateKey(req.Day)

	slots := make([]string, 0)

	for cur := openMin; cur < closeMin; cur += stride {
		start := req.Day.Add(time.Duration(cur) * time.Minute)

		// hoje, horários que já passaram (ou são agora) ficam de fora
		if sameDay && !start.After(req.Now) {
			continue
		}

		end := start.Add(time.Duration(req.DurationMin) * time.Minute)
		endMin := cur + req.DurationMin

		for _, day := range barbers {
			if BarberFree(req.Shop, day, weekday, cur, endMin, start, end) {
				slots = append(slots, timezone.FormatHM(cur))
				break
			}
		}
	}

	return slots
}

// BarberFree aplica, na ordem, o resolver de expediente e os testes de
// bloqueio e de conflito. É o mesmo filtro usado na revalidação da escrita,
// para que leitura e reserva sigam exatamente as mesmas regras.
func BarberFree(shop *models.Barbershop, day BarberDay, weekday, startMin, endMin int, start, end time.Time) bool {
	hours := ResolveBarberHours(shop, day.Schedules, weekday)
	if !hours.Contains(startMin, endMin) {
		return false
	}
	if HasBlockConflict(day.Blocks, start, end) {
		return false
	}
	if HasAppointmentConflict(day.Appointments, start, end) {
		return false
	}
	return true
}
