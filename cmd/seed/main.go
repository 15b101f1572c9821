// seed aplica el esquema de base de datos y crea las cuentas iniciales:
// el admin (credenciales desde SEED_ADMIN_*) más un vendedor y tres técnicos
// de demostración. Es idempotente: las cuentas existentes no se tocan.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/taller-api/internal/domain/entity"
	"github.com/jhoicas/taller-api/internal/domain/repository"
	"github.com/jhoicas/taller-api/internal/infrastructure/postgres"
	"github.com/jhoicas/taller-api/pkg/config"
	"github.com/jhoicas/taller-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD es obligatorio")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.ApplySchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}
	log.Info().Msg("esquema aplicado")

	userRepo := postgres.NewUserRepository(pool)

	seedUser(ctx, log, userRepo, cfg.Seed.AdminUsername, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, entity.RoleAdmin, "")

	// Cuentas de demostración, solo fuera de producción.
	if cfg.App.Env != "production" {
		demoPass := "demo1234"
		seedUser(ctx, log, userRepo, "vendedor1", "vendedor1@taller.local", demoPass, entity.RoleSeller, "")
		seedUser(ctx, log, userRepo, "tec.electronica", "tec.electronica@taller.local", demoPass, entity.RoleTechnician, entity.SectionElectronics)
		seedUser(ctx, log, userRepo, "tec.sistemas", "tec.sistemas@taller.local", demoPass, entity.RoleTechnician, entity.SectionSystems)
		seedUser(ctx, log, userRepo, "tec.celulares", "tec.celulares@taller.local", demoPass, entity.RoleTechnician, entity.SectionMobile)
	}

	log.Info().Msg("seed finalizado")
}

func seedUser(ctx context.Context, log *logger.Logger, repo repository.UserRepository, username, email, password string, role entity.Role, section entity.Section) {
	existing, err := repo.GetByUsername(ctx, username)
	if err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("consultar usuario")
	}
	if existing != nil {
		log.Info().Str("username", username).Msg("usuario ya existe, se omite")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("generar hash de contraseña")
	}

	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Section:      section,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatal().Err(err).Str("username", username).Msg("crear usuario")
	}
	log.Info().Str("username", username).Str("role", string(role)).Msg("usuario creado")
}
