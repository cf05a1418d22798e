package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Tareas-api/internal/application/dto"
	"github.com/jhoicas/Tareas-api/internal/domain"
	"github.com/jhoicas/Tareas-api/internal/domain/entity"
	"github.com/jhoicas/Tareas-api/internal/domain/policy"
	"github.com/jhoicas/Tareas-api/internal/domain/repository"
)

// TaskUseCase ciclo de vida de las tareas: alta, edición, disposición de
// estado, borrado y consultas paginadas. El actor (id + rol) llega siempre
// como parámetro explícito; nunca se lee de estado ambiente. Cada operación
// es un read-then-write simple sin check optimista: last write wins, la
// serialización la da el store.
type TaskUseCase struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo, userRepo: userRepo}
}

// Create registra una tarea nueva para el actor. Solo un Employee crea
// tareas y el dueño se fuerza al actor, nunca lo decide el cliente.
// Estado inicial: Pending. Title y HoursWorked se aceptan tal cual llegan
// (minimalismo deliberado del contrato, no una omisión).
func (uc *TaskUseCase) Create(ctx context.Context, actorID int64, role string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if !policy.Allowed(policy.OpCreate, role, actorID, 0) {
		return nil, domain.ErrUnauthorized
	}
	owner, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}
	now := time.Now()
	task := &entity.Task{
		Title:       in.Title,
		Date:        in.Date,
		HoursWorked: in.HoursWorked,
		Status:      entity.StatusPending,
		UserID:      actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return toTaskResponse(task, owner.Username), nil
}

// GetByID devuelve la vista hidratada de una tarea. Un Employee solo ve las
// suyas; un Manager cualquiera. El not-found tiene precedencia sobre la
// autorización: sin cargar la tarea no hay dueño que evaluar.
func (uc *TaskUseCase) GetByID(ctx context.Context, actorID int64, role string, taskID int64) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.Allowed(policy.OpView, role, actorID, task.UserID) {
		return nil, domain.ErrUnauthorized
	}
	return uc.hydrate(ctx, task)
}

// Update sobreescribe los tres campos de contenido (title, date, hours) de
// una tarea propia. No altera status ni dueño. Un Manager nunca edita
// contenido.
func (uc *TaskUseCase) Update(ctx context.Context, actorID int64, role string, taskID int64, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.Allowed(policy.OpUpdate, role, actorID, task.UserID) {
		return nil, domain.ErrUnauthorized
	}
	task.Title = in.Title
	task.Date = in.Date
	task.HoursWorked = in.HoursWorked
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return uc.hydrate(ctx, task)
}

// Transition cambia solo el campo status (disposición de un Manager).
// Cualquier miembro de la enumeración es destino válido; no hay grafo de
// transiciones. Un valor fuera del conjunto falla con ErrInvalidStatus.
func (uc *TaskUseCase) Transition(ctx context.Context, actorID int64, role string, taskID int64, requested string) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.Allowed(policy.OpTransition, role, actorID, task.UserID) {
		return nil, domain.ErrUnauthorized
	}
	status, ok := entity.ParseStatus(requested)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}
	task.Status = status
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return uc.hydrate(ctx, task)
}

// Delete elimina una tarea propia. Un segundo delete sobre el mismo id
// devuelve ErrNotFound, nunca un éxito silencioso.
func (uc *TaskUseCase) Delete(ctx context.Context, actorID int64, role string, taskID int64) error {
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	if !policy.Allowed(policy.OpDelete, role, actorID, task.UserID) {
		return domain.ErrUnauthorized
	}
	return uc.taskRepo.Delete(ctx, taskID)
}

// List devuelve una página de tareas visibles para el actor: un Employee
// solo las suyas, un Manager todas. Filtros opcionales: substring
// case-insensitive sobre el nombre del dueño y match exacto de estado.
// Un filtro de estado fuera de la enumeración falla con ErrInvalidStatus.
// Orden: fecha descendente, desempate estable por id. TotalCount se calcula
// antes de paginar.
func (uc *TaskUseCase) List(ctx context.Context, actorID int64, role string, in dto.ListTasksRequest) (*dto.TaskListResponse, error) {
	in.Normalize()

	filter := repository.TaskFilter{
		OwnerID:      policy.OwnerScope(role, actorID),
		EmployeeName: in.EmployeeName,
		Limit:        in.PageSize,
		Offset:       in.Offset(),
	}
	if in.Status != "" {
		status, ok := entity.ParseStatus(in.Status)
		if !ok {
			return nil, domain.ErrInvalidStatus
		}
		filter.Status = &status
	}

	rows, total, err := uc.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaskResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, *toTaskResponse(&row.Task, row.EmployeeName))
	}
	return &dto.TaskListResponse{
		Items:      items,
		TotalCount: total,
		Page:       in.Page,
		PageSize:   in.PageSize,
	}, nil
}

// hydrate resuelve el nombre del dueño en lectura para la vista.
func (uc *TaskUseCase) hydrate(ctx context.Context, task *entity.Task) (*dto.TaskResponse, error) {
	owner, err := uc.userRepo.GetByID(ctx, task.UserID)
	if err != nil {
		return nil, err
	}
	name := ""
	if owner != nil {
		name = owner.Username
	}
	return toTaskResponse(task, name), nil
}

func toTaskResponse(t *entity.Task, employeeName string) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Date:         t.Date,
		HoursWorked:  t.HoursWorked,
		Status:       string(t.Status),
		UserID:       t.UserID,
		EmployeeName: employeeName,
	}
}
