package appointment

import (
	"strconv"
	"strings"
	"time"

	"github.com/navalha-app/agenda-api/internal/models"
)

// ===============================
// Expediente efetivo
// ===============================

// HoursSource identifica de onde saiu o expediente resolvido.
type HoursSource int

const (
	// HoursShopDefault: barbeiro sem agenda própria; vale o horário da barbearia.
	HoursShopDefault HoursSource = iota
	// HoursExplicit: linha de agenda própria para o dia, usada literalmente.
	HoursExplicit
	// HoursClosed: dia fechado para o barbeiro.
	HoursClosed
)

// BarberHours é o intervalo de atendimento resolvido para um par
// (barbeiro, dia da semana), em minutos do dia local.
type BarberHours struct {
	Source      HoursSource
	StartMinute int
	EndMinute   int
}

func (h BarberHours) Open() bool {
	return h.Source != HoursClosed
}

// Contains informa se o intervalo [startMin, endMin) cabe no expediente.
func (h BarberHours) Contains(startMin, endMin int) bool {
	return h.Open() && startMin >= h.StartMinute && endMin <= h.EndMinute
}

// ResolveBarberHours decide o expediente de um barbeiro num dia da semana.
// O desvio de três caminhos precisa ser exatamente este:
//
//  1. Nenhuma linha de agenda própria → o barbeiro segue o horário da
//     barbearia em todo dia habilitado; dia desabilitado na barbearia = fechado.
//  2. Existe agenda própria, mas nenhuma linha para este dia → fechado.
//     A ausência da linha é exclusão explícita, não fallback para a barbearia.
//  3. Linha para este dia → horário da linha, literal. Não é intersectado
//     com o horário da barbearia; o barbeiro pode atender fora dele.
func ResolveBarberHours(shop *models.Barbershop, rows []models.WeeklySchedule, weekday int) BarberHours {
	if len(rows) == 0 {
		if !ShopOpenOnWeekday(shop, weekday) {
			return BarberHours{Source: HoursClosed}
		}
		return BarberHours{
			Source:      HoursShopDefault,
			StartMinute: shop.OpenHour * 60,
			EndMinute:   shop.CloseHour * 60,
		}
	}

	for _, row := range rows {
		if row.Weekday != weekday {
			continue
		}
		start, err1 := ParseHM(row.StartTime)
		end, err2 := ParseHM(row.EndTime)
		if err1 != nil || err2 != nil || start >= end {
			return BarberHours{Source: HoursClosed}
		}
		return BarberHours{Source: HoursExplicit, StartMinute: start, EndMinute: end}
	}

	return BarberHours{Source: HoursClosed}
}

// ShopOpenOnWeekday consulta a lista de dias habilitados da barbearia
// ("1,2,3,4,5,6"; 0 = domingo).
func ShopOpenOnWeekday(shop *models.Barbershop, weekday int) bool {
	for _, part := range strings.Split(shop.EnabledWeekdays, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil && d == weekday {
			return true
		}
	}
	return false
}

// ParseHM converte "HH:MM" em minutos do dia.
func ParseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
