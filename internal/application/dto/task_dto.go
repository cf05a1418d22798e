package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTaskRequest alta de tarea por un Employee. El dueño no viaja en el
// cuerpo: se toma siempre del token del actor.
type CreateTaskRequest struct {
	Title       string          `json:"title"`
	Date        time.Time       `json:"date"`
	HoursWorked decimal.Decimal `json:"hoursWorked"`
}

// UpdateTaskRequest edición de los tres campos mutables de contenido.
// No permite tocar status ni dueño.
type UpdateTaskRequest struct {
	Title       string          `json:"title"`
	Date        time.Time       `json:"date"`
	HoursWorked decimal.Decimal `json:"hoursWorked"`
}

// UpdateTaskStatusRequest disposición de un Manager sobre la tarea.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// ListTasksRequest criterios de listado: paginación más filtros opcionales.
type ListTasksRequest struct {
	PageRequest
	EmployeeName string `query:"searchEmployeeName"`
	Status       string `query:"status"`
}

// TaskResponse vista hidratada de una tarea: incluye el nombre del dueño
// resuelto en lectura, nunca desnormalizado.
type TaskResponse struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	Date         time.Time       `json:"date"`
	HoursWorked  decimal.Decimal `json:"hoursWorked"`
	Status       string          `json:"status"`
	UserID       int64           `json:"userId"`
	EmployeeName string          `json:"employeeName"`
}

// TaskListResponse página de tareas con el total previo a la paginación.
type TaskListResponse struct {
	Items      []TaskResponse `json:"items"`
	TotalCount int            `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
}
