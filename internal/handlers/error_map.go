package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/navalha-app/agenda-api/internal/httperr"
)

// Status HTTP por código de negócio do motor de agenda. Conflitos de
// corrida viram 409; regras que o cliente pode corrigir mudando o pedido
// viram 422; entrada malformada vira 400.
var businessStatus = map[string]int{
	httperr.CodeValidation:         http.StatusBadRequest,
	httperr.CodeServiceNotFound:    http.StatusNotFound,
	httperr.CodeDayNotAvailable:    http.StatusUnprocessableEntity,
	httperr.CodeCancelTooLate:      http.StatusUnprocessableEntity,
	httperr.CodeNoBarbersAvailable: http.StatusConflict,
	httperr.CodeBarberNotAvailable: http.StatusConflict,
	httperr.CodeSlotConflict:       http.StatusConflict,
}

var businessMessage = map[string]string{
	httperr.CodeValidation:         "Dados inválidos.",
	httperr.CodeServiceNotFound:    "Serviço não encontrado.",
	httperr.CodeDayNotAvailable:    "A barbearia não atende neste dia.",
	httperr.CodeCancelTooLate:      "O prazo para cancelar este agendamento já passou.",
	httperr.CodeNoBarbersAvailable: "Nenhum barbeiro disponível.",
	httperr.CodeBarberNotAvailable: "O barbeiro escolhido não está disponível neste horário.",
	httperr.CodeSlotConflict:       "Este horário acabou de ser reservado.",
}

// writeBookingError traduz o erro de um use case em resposta HTTP.
// Erros sem código de negócio são internos: logamos e devolvemos 500
// sem vazar detalhe.
func writeBookingError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		status, known := businessStatus[code]
		if !known {
			status = http.StatusBadRequest
		}
		msg := businessMessage[code]
		if msg == "" {
			msg = "Não foi possível completar a operação."
		}
		httperr.Write(c, status, code, msg)
		return
	}

	log.Error().Err(err).
		Str("path", c.Request.URL.Path).
		Msg("erro interno no agendamento")

	httperr.Internal(c, httperr.CodeInternal, "Erro interno.")
}
