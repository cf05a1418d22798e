package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Tareas-api/internal/domain"
	"github.com/jhoicas/Tareas-api/internal/domain/entity"
	"github.com/jhoicas/Tareas-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación del puerto TaskRepository sobre PostgreSQL.
type TaskRepo struct {
	pool *pgxpool.Pool
}

// NewTaskRepository construye el adaptador de persistencia para tareas.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepo {
	return &TaskRepo{pool: pool}
}

// Create persiste una tarea nueva y asigna el ID generado.
func (r *TaskRepo) Create(ctx context.Context, task *entity.Task) error {
	query := `
		INSERT INTO tasks (title, date, hours_worked, status, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		task.Title, task.Date, task.HoursWorked, string(task.Status), task.UserID,
		task.CreatedAt, task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID. Devuelve (nil, nil) si no existe.
func (r *TaskRepo) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	query := `
		SELECT id, title, date, hours_worked, status, user_id, created_at, updated_at
		FROM tasks WHERE id = $1`
	var t entity.Task
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Date, &t.HoursWorked, &t.Status, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	return &t, nil
}

// Update sobreescribe los campos mutables de la tarea (contenido y status).
// El dueño nunca cambia. Sin check optimista: last write wins.
func (r *TaskRepo) Update(ctx context.Context, task *entity.Task) error {
	query := `
		UPDATE tasks SET title = $2, date = $3, hours_worked = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		task.ID, task.Title, task.Date, task.HoursWorked, string(task.Status), task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete elimina una tarea por ID.
func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// List devuelve la página de tareas que cumple el filtro, junto con el total
// de coincidencias previo a LIMIT/OFFSET. El nombre del dueño se resuelve en
// el mismo roundtrip via join; el filtro de nombre usa ILIKE (substring
// case-insensitive). Orden: fecha descendente, desempate estable por id.
func (r *TaskRepo) List(ctx context.Context, f repository.TaskFilter) ([]*entity.TaskWithOwner, int, error) {
	where := `
		WHERE ($1::bigint IS NULL OR t.user_id = $1)
		  AND ($2::text IS NULL OR t.status = $2)
		  AND ($3::text = '' OR u.username ILIKE '%' || $3 || '%')`

	var status *string
	if f.Status != nil {
		s := string(*f.Status)
		status = &s
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM tasks t JOIN users u ON u.id = t.user_id` + where
	if err := r.pool.QueryRow(ctx, countQuery, f.OwnerID, status, f.EmployeeName).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query := `
		SELECT t.id, t.title, t.date, t.hours_worked, t.status, t.user_id,
		       t.created_at, t.updated_at, u.username
		FROM tasks t JOIN users u ON u.id = t.user_id` + where + `
		ORDER BY t.date DESC, t.id ASC
		LIMIT $4 OFFSET $5`
	rows, err := r.pool.Query(ctx, query, f.OwnerID, status, f.EmployeeName, f.Limit, f.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var list []*entity.TaskWithOwner
	for rows.Next() {
		var row entity.TaskWithOwner
		if err := rows.Scan(
			&row.ID, &row.Title, &row.Date, &row.HoursWorked, &row.Status, &row.UserID,
			&row.CreatedAt, &row.UpdatedAt, &row.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, &row)
	}
	return list, total, rows.Err()
}
