package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Tareas-api/internal/domain"
	"github.com/jhoicas/Tareas-api/internal/domain/entity"
	"github.com/jhoicas/Tareas-api/internal/domain/repository"
	"github.com/jhoicas/Tareas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Tareas-api/pkg/config"
)

// PostgresSuite tests de integración contra un PostgreSQL real levantado con
// testcontainers. Se saltan con -short (requieren Docker).
type PostgresSuite struct {
	suite.Suite
	ctx       context.Context
	container testcontainers.Container
	pool      *pgxpool.Pool
	users     *postgres.UserRepo
	tasks     *postgres.TaskRepo

	employeeID int64
	managerID  int64
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("tests de integración omitidos en modo -short")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	s.ctx = context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "tareas_test",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(s.T(), err)
	s.container = container

	host, err := container.Host(s.ctx)
	require.NoError(s.T(), err)
	port, err := container.MappedPort(s.ctx, "5432")
	require.NoError(s.T(), err)

	pool, err := postgres.NewPool(s.ctx, config.DBConfig{
		DatabaseURL: fmt.Sprintf("postgres://test:test@%s:%s/tareas_test?sslmode=disable", host, port.Port()),
	})
	require.NoError(s.T(), err)
	s.pool = pool

	require.NoError(s.T(), postgres.EnsureSchema(s.ctx, pool))

	s.users = postgres.NewUserRepository(pool)
	s.tasks = postgres.NewTaskRepository(pool)

	// Dos cuentas fijas para toda la suite.
	employee := &entity.User{Username: "Jason", Email: "jason@test.local", PasswordHash: "x", Role: entity.RoleEmployee, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	manager := &entity.User{Username: "Marta", Email: "marta@test.local", PasswordHash: "x", Role: entity.RoleManager, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(s.T(), s.users.Create(s.ctx, employee))
	require.NoError(s.T(), s.users.Create(s.ctx, manager))
	s.employeeID = employee.ID
	s.managerID = manager.ID
}

func (s *PostgresSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresSuite) SetupTest() {
	// Tabla de tareas limpia por test; los usuarios de la suite se conservan.
	_, err := s.pool.Exec(s.ctx, "DELETE FROM tasks")
	require.NoError(s.T(), err)
}

func (s *PostgresSuite) newTask(title string, ownerID int64, date time.Time) *entity.Task {
	now := time.Now()
	return &entity.Task{
		Title:       title,
		Date:        date,
		HoursWorked: decimal.NewFromFloat(2.5),
		Status:      entity.StatusPending,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *PostgresSuite) TestCreateYGetByID() {
	task := s.newTask("alta", s.employeeID, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(s.T(), s.tasks.Create(s.ctx, task))
	assert.NotZero(s.T(), task.ID, "el INSERT debe devolver el id generado")

	got, err := s.tasks.GetByID(s.ctx, task.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), "alta", got.Title)
	assert.True(s.T(), got.HoursWorked.Equal(decimal.NewFromFloat(2.5)),
		"hours_worked viaja como NUMERIC exacto, sin redondeo de float")
	assert.Equal(s.T(), entity.StatusPending, got.Status)
}

func (s *PostgresSuite) TestGetByID_Inexistente() {
	got, err := s.tasks.GetByID(s.ctx, 999999)
	require.NoError(s.T(), err, "not-found no es un error del adaptador")
	assert.Nil(s.T(), got)
}

func (s *PostgresSuite) TestUpdate() {
	task := s.newTask("antes", s.employeeID, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(s.T(), s.tasks.Create(s.ctx, task))

	task.Title = "después"
	task.Status = entity.StatusApproved
	task.HoursWorked = decimal.NewFromInt(8)
	task.UpdatedAt = time.Now()
	require.NoError(s.T(), s.tasks.Update(s.ctx, task))

	got, err := s.tasks.GetByID(s.ctx, task.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), "después", got.Title)
	assert.Equal(s.T(), entity.StatusApproved, got.Status)
}

func (s *PostgresSuite) TestDelete() {
	task := s.newTask("efímera", s.employeeID, time.Now())
	require.NoError(s.T(), s.tasks.Create(s.ctx, task))
	require.NoError(s.T(), s.tasks.Delete(s.ctx, task.ID))

	got, err := s.tasks.GetByID(s.ctx, task.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *PostgresSuite) TestList_FiltrosOrdenYTotal() {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	marker := fmt.Sprintf("lote-%d", time.Now().UnixNano())
	for i := 0; i < 3; i++ {
		task := s.newTask(fmt.Sprintf("%s empleado %d", marker, i), s.employeeID, base.AddDate(0, 0, i))
		require.NoError(s.T(), s.tasks.Create(s.ctx, task))
	}
	otra := s.newTask(marker+" del manager", s.managerID, base.AddDate(0, 0, 10))
	otra.Status = entity.StatusApproved
	require.NoError(s.T(), s.tasks.Create(s.ctx, otra))

	// Alcance por dueño: solo las del empleado.
	rows, total, err := s.tasks.List(s.ctx, repository.TaskFilter{
		OwnerID: &s.employeeID, Limit: 10, Offset: 0,
	})
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), total, 3)
	for _, r := range rows {
		assert.Equal(s.T(), s.employeeID, r.UserID)
		assert.Equal(s.T(), "Jason", r.EmployeeName, "el join resuelve el nombre del dueño")
	}

	// Orden: fecha descendente.
	for i := 1; i < len(rows); i++ {
		assert.False(s.T(), rows[i-1].Date.Before(rows[i].Date))
	}

	// Filtro de estado exacto.
	status := entity.StatusApproved
	rows, _, err = s.tasks.List(s.ctx, repository.TaskFilter{
		Status: &status, Limit: 50, Offset: 0,
	})
	require.NoError(s.T(), err)
	for _, r := range rows {
		assert.Equal(s.T(), entity.StatusApproved, r.Status)
	}

	// ILIKE: substring del nombre sin distinguir mayúsculas.
	rows, total, err = s.tasks.List(s.ctx, repository.TaskFilter{
		EmployeeName: "MART", Limit: 50, Offset: 0,
	})
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), total, 1)
	for _, r := range rows {
		assert.Equal(s.T(), "Marta", r.EmployeeName)
	}
}

func (s *PostgresSuite) TestList_TotalPrevioALaPagina() {
	base := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	owner := &entity.User{Username: "Paginado", Email: fmt.Sprintf("pag-%d@test.local", time.Now().UnixNano()), PasswordHash: "x", Role: entity.RoleEmployee, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(s.T(), s.users.Create(s.ctx, owner))

	for i := 0; i < 7; i++ {
		task := s.newTask(fmt.Sprintf("p%d", i), owner.ID, base.AddDate(0, 0, i))
		require.NoError(s.T(), s.tasks.Create(s.ctx, task))
	}

	rows, total, err := s.tasks.List(s.ctx, repository.TaskFilter{
		OwnerID: &owner.ID, Limit: 5, Offset: 5,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 7, total, "el COUNT se calcula antes de LIMIT/OFFSET")
	assert.Len(s.T(), rows, 2)
}

func (s *PostgresSuite) TestUserRepo_EmailDuplicado() {
	email := fmt.Sprintf("dup-%d@test.local", time.Now().UnixNano())
	u1 := &entity.User{Username: "a", Email: email, PasswordHash: "x", Role: entity.RoleEmployee, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(s.T(), s.users.Create(s.ctx, u1))

	u2 := &entity.User{Username: "b", Email: email, PasswordHash: "x", Role: entity.RoleEmployee, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	err := s.users.Create(s.ctx, u2)
	assert.ErrorIs(s.T(), err, domain.ErrEmailAlreadyExists)
}

func (s *PostgresSuite) TestUserRepo_GetByEmail() {
	got, err := s.users.GetByEmail(s.ctx, "jason@test.local")
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	assert.Equal(s.T(), s.employeeID, got.ID)

	got, err = s.users.GetByEmail(s.ctx, "nadie@test.local")
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}
