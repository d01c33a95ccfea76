package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/navalha-app/agenda-api/internal/config"
	"github.com/navalha-app/agenda-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao conectar no banco")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao obter sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barbershop{},
		&models.User{},
		&models.Customer{},
		&models.Service{},
		&models.WeeklySchedule{},
		&models.UnavailabilityBlock{},
		&models.MembershipPlan{},
		&models.PlanService{},
		&models.CustomerPlan{},
		&models.Appointment{},
		&models.AppointmentService{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("falha ao migrar schema")
	}

	// Barreira final contra dupla reserva: mesmo que duas transações
	// passem pela checagem da aplicação ao mesmo tempo, o banco só
	// deixa uma delas inserir intervalo sobreposto para o mesmo barbeiro.
	// Agendamentos cancelados ficam fora da constraint.
	if err := db.Exec(
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	).Error; err != nil {
		log.Fatal().Err(err).Msg("falha ao criar extensão btree_gist")
	}

	if err := db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
            ) THEN
                ALTER TABLE appointments
                ADD CONSTRAINT appointments_no_overlap
                EXCLUDE USING gist (
                    barber_id WITH =,
                    tsrange(start_time, end_time) WITH &&
                ) WHERE (status <> 'cancelled');
            END IF;
        END
        $$
    `).Error; err != nil {
		log.Fatal().Err(err).Msg("falha ao criar constraint de exclusão")
	}

	return db
}
