package httperr

import "errors"

// Códigos estáveis da taxonomia do motor de agenda. São contrato com os
// consumidores (widget e painel); nunca renomear.
const (
	CodeValidation         = "validation_error"
	CodeServiceNotFound    = "service_not_found"
	CodeNoBarbersAvailable = "no_barbers_available"
	CodeBarberNotAvailable = "barber_not_available"
	CodeSlotConflict       = "slot_conflict"
	CodeDayNotAvailable    = "day_not_available"
	CodeCancelTooLate      = "cancel_too_late"
	CodeInternal           = "internal_error"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de negócio de um erro, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
