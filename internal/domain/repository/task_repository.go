package repository

import (
	"context"

	"github.com/jhoicas/Tareas-api/internal/domain/entity"
)

// TaskFilter criterios de consulta para listados de tareas.
// OwnerID nil = sin restricción de dueño; Status nil = sin filtro de estado;
// EmployeeName vacío = sin filtro de nombre (si no, substring case-insensitive
// sobre el username del dueño).
type TaskFilter struct {
	OwnerID      *int64
	Status       *entity.Status
	EmployeeName string
	Limit        int
	Offset       int
}

// TaskRepository define el puerto de persistencia para Task (DIP).
// GetByID devuelve (nil, nil) cuando la tarea no existe. List devuelve la
// página ordenada por fecha descendente (desempate estable por id) y el
// total de coincidencias antes de paginar.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter TaskFilter) ([]*entity.TaskWithOwner, int, error)
}
