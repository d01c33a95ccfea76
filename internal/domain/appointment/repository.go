package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/navalha-app/agenda-api/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Barbers --------
	GetActiveBarber(
		ctx context.Context,
		barbershopID uint,
		barberID uint,
	) (*models.User, error)

	// ListActiveBarbers devolve os barbeiros ativos em ordem estável (id
	// crescente); a atribuição automática pega o primeiro livre.
	ListActiveBarbers(
		ctx context.Context,
		barbershopID uint,
	) ([]models.User, error)

	// -------- Agenda / bloqueios --------
	ListSchedules(
		ctx context.Context,
		barberID uint,
	) ([]models.WeeklySchedule, error)

	ListBlocksInRange(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.UnavailabilityBlock, error)

	// -------- Catálogo / assinatura --------
	GetServices(
		ctx context.Context,
		barbershopID uint,
		ids []uint,
	) ([]models.Service, error)

	// GetMembershipCoverage devolve os IDs de serviço cobertos pela
	// assinatura ativa e não vencida do cliente; mapa vazio caso contrário.
	GetMembershipCoverage(
		ctx context.Context,
		customerID uint,
		now time.Time,
	) (map[uint]bool, error)

	// -------- Customer --------
	GetCustomer(
		ctx context.Context,
		barbershopID uint,
		customerID uint,
	) (*models.Customer, error)

	GetOrCreateCustomer(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Appointment --------

	// ListAppointmentsInRange devolve os agendamentos não cancelados do
	// barbeiro que intersectam [start, end).
	ListAppointmentsInRange(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// CreateAppointment insere o agendamento e suas linhas de serviço como
	// unidade atômica. Violação da constraint de exclusão do banco (outra
	// reserva venceu a corrida) volta como erro de negócio slot_conflict.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByPublicID(
		ctx context.Context,
		barbershopID uint,
		publicID uuid.UUID,
	) (*models.Appointment, error)

	GetAppointmentForBarber(
		ctx context.Context,
		appointmentID uint,
		barberID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListAppointmentsForPeriod é a listagem do painel (qualquer status,
	// com cliente e linhas carregados).
	ListAppointmentsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
