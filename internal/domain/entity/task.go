package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status de una tarea. Enumeración cerrada: ningún otro valor se persiste.
// Pending es el estado inicial; no hay grafo de transiciones, cualquier
// miembro puede pasar a cualquier otro (la disposición la decide un Manager).
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusApproved   Status = "Approved"
	StatusRejected   Status = "Rejected"
)

var statuses = []Status{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusApproved,
	StatusRejected,
}

// ParseStatus resuelve un string al miembro canónico de la enumeración
// (case-insensitive). Devuelve false si el valor no pertenece al conjunto.
func ParseStatus(s string) (Status, bool) {
	for _, st := range statuses {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

// Task representa una tarea de trabajo registrada por un Employee.
// UserID es el dueño; se fija en la creación y nunca cambia.
type Task struct {
	ID          int64
	Title       string
	Date        time.Time
	HoursWorked decimal.Decimal
	Status      Status
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskWithOwner es una fila de listado: la tarea más el nombre del dueño
// resuelto en lectura (join, no desnormalización).
type TaskWithOwner struct {
	Task
	EmployeeName string
}
