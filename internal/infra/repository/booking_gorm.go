package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/navalha-app/agenda-api/internal/domain/appointment"
	"github.com/navalha-app/agenda-api/internal/httperr"
	"github.com/navalha-app/agenda-api/internal/models"
)

// Códigos do Postgres que significam "outra reserva venceu a corrida":
// violação da constraint de exclusão de intervalo ou de índice único.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BookingGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveBarber(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ? AND active = true", barberID, barbershopID).
		First(&barber).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *BookingGormRepository) ListActiveBarbers(
	ctx context.Context,
	barbershopID uint,
) ([]models.User, error) {

	var barbers []models.User
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND active = true", barbershopID).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Agenda semanal / bloqueios
// --------------------------------------------------

func (r *BookingGormRepository) ListSchedules(
	ctx context.Context,
	barberID uint,
) ([]models.WeeklySchedule, error) {

	var rows []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingGormRepository) ListBlocksInRange(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.UnavailabilityBlock, error) {

	var blocks []models.UnavailabilityBlock
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_time < ? AND end_time > ?",
			barberID, end, start,
		).
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Catálogo / assinatura
// --------------------------------------------------

func (r *BookingGormRepository) GetServices(
	ctx context.Context,
	barbershopID uint,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ? AND barbershop_id = ? AND active = true", ids, barbershopID).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *BookingGormRepository) GetMembershipCoverage(
	ctx context.Context,
	customerID uint,
	now time.Time,
) (map[uint]bool, error) {

	var sub models.CustomerPlan
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND active = true AND expires_at > ?", customerID, now).
		Order("expires_at DESC").
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[uint]bool{}, nil
		}
		return nil, err
	}

	var rows []models.PlanService
	if err := r.db.WithContext(ctx).
		Where("plan_id = ?", sub.PlanID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	covered := make(map[uint]bool, len(rows))
	for _, row := range rows {
		covered[row.ServiceID] = true
	}
	return covered, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetCustomer(
	ctx context.Context,
	barbershopID uint,
	customerID uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ?", customerID, barbershopID).
		First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	barbershopID uint,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND phone = ?", barbershopID, phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsInRange(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "start_time", "end_time", "status").
		Where(
			"barber_id = ? AND status <> 'cancelled' AND start_time < ? AND end_time > ?",
			barberID, end, start,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// CreateAppointment insere agendamento e linhas numa transação; qualquer
// falha desfaz tudo. A checagem de conflito da aplicação é só pré-filtro:
// quem garante o "não há dupla reserva" é a constraint de exclusão criada
// em internal/db, e a violação dela vira slot_conflict aqui — o texto cru
// do banco nunca sobe para o chamador.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(ap).Error
	})
	if err != nil {
		if isConflictViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return err
	}
	return nil
}

func isConflictViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation || pgErr.Code == pgExclusionViolation
}

func (r *BookingGormRepository) GetAppointmentByPublicID(
	ctx context.Context,
	barbershopID uint,
	publicID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Where("public_id = ? AND barbershop_id = ?", publicID, barbershopID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForBarber(
	ctx context.Context,
	appointmentID uint,
	barberID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barber_id = ?", appointmentID, barberID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	// as linhas de serviço são imutáveis; só o registro principal muda
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Services").
		Where(
			"barber_id = ? AND start_time >= ? AND start_time < ?",
			barberID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
