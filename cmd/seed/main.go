// seed crea el esquema y siembra los usuarios de demostración
// (employee1 y manager1, ambos con contraseña "password123").
// Las contraseñas se guardan hasheadas con bcrypt.
//
// Uso: go run ./cmd/seed
// La conexión se toma de la misma configuración que cmd/api (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Tareas-api/internal/domain/entity"
	"github.com/jhoicas/Tareas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tareas-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Esquema: %v\n", err)
		os.Exit(1)
	}

	seedUsers := []struct {
		username string
		email    string
		role     string
	}{
		{"employee1", "employee1@example.com", entity.RoleEmployee},
		{"manager1", "manager1@example.com", entity.RoleManager},
	}

	for _, u := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Hash de contraseña: %v\n", err)
			os.Exit(1)
		}
		now := time.Now()
		// Idempotente: re-ejecutar el seed no duplica usuarios.
		_, err = pool.Exec(ctx, `
			INSERT INTO users (username, email, password_hash, role, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (email) DO NOTHING`,
			u.username, u.email, string(hash), u.role, now, now,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Insertar %s: %v\n", u.username, err)
			os.Exit(1)
		}
		fmt.Printf("usuario %s (%s) listo\n", u.username, u.role)
	}
}
