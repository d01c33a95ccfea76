package timezone

import (
	"fmt"
	"time"
)

// O Brasil aboliu o horário de verão em 2019, então o deslocamento da
// barbearia em relação ao UTC é fixo. Usamos time.FixedZone para que as
// conversões não dependam do tzdata nem do fuso configurado na máquina
// onde a API roda.
const (
	ZoneName      = "America/Sao_Paulo"
	OffsetSeconds = -3 * 60 * 60
)

var shopZone = time.FixedZone(ZoneName, OffsetSeconds)

func ShopZone() *time.Location {
	return shopZone
}

// Now devolve o instante atual já no horário civil da barbearia.
func Now() time.Time {
	return time.Now().In(shopZone)
}

// ToLocal converte um instante (armazenado em UTC) para o horário civil
// da barbearia. Toda comparação de regra de negócio — dia da semana,
// expediente, "já passou?" — acontece em horário local.
func ToLocal(t time.Time) time.Time {
	return t.In(shopZone)
}

// ToUTC monta o instante UTC correspondente a uma data local ("2006-01-02")
// e hora/minuto locais.
func ToUTC(dateKey string, hour, minute int) (time.Time, error) {
	day, err := ParseDate(dateKey)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, shopZone).UTC(), nil
}

// ParseDate interpreta "2006-01-02" como meia-noite local.
func ParseDate(dateKey string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateKey, shopZone)
}

// ParseDateTime interpreta data e hora locais ("2006-01-02" + "15:04").
func ParseDateTime(dateKey, hourMinute string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", dateKey+" "+hourMinute, shopZone)
}

// DateKey devolve a chave de dia local ("2006-01-02") de um instante.
func DateKey(t time.Time) string {
	return t.In(shopZone).Format("2006-01-02")
}

// Weekday devolve o dia da semana local (0 = domingo ... 6 = sábado).
func Weekday(t time.Time) int {
	return int(t.In(shopZone).Weekday())
}

// MinuteOfDay devolve o minuto do dia local (0..1439).
func MinuteOfDay(t time.Time) int {
	lt := t.In(shopZone)
	return lt.Hour()*60 + lt.Minute()
}

// FormatHM formata um minuto do dia como "HH:MM".
func FormatHM(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}
