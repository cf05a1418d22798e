// Package policy concentra las reglas de autorización sobre tareas:
// qué actor (id + rol) puede ejecutar qué operación sobre qué tarea.
// Es lógica pura: el not-found se resuelve antes de consultar aquí,
// porque el ownership no se puede evaluar sin haber cargado la tarea.
package policy

import "github.com/jhoicas/Tareas-api/internal/domain/entity"

// Op identifica la operación solicitada sobre una tarea.
type Op int

const (
	OpList Op = iota
	OpView
	OpCreate
	OpUpdate
	OpDelete
	OpTransition
)

// Allowed decide si el actor puede ejecutar op sobre una tarea cuyo dueño
// es ownerID. Para OpCreate y OpTransition el ownerID es irrelevante.
//
//   - OpView: Employee solo su tarea; Manager cualquiera.
//   - OpCreate: solo Employee (el dueño se fuerza al actor, nunca lo da el cliente).
//   - OpUpdate, OpDelete: solo el Employee dueño; Manager nunca edita contenido.
//   - OpTransition: solo Manager, sin importar el dueño.
//   - OpList: siempre permitido; la restricción es de alcance (ver OwnerScope).
func Allowed(op Op, role string, actorID, ownerID int64) bool {
	switch op {
	case OpList:
		return true
	case OpView:
		return role == entity.RoleManager || actorID == ownerID
	case OpCreate:
		return role == entity.RoleEmployee
	case OpUpdate, OpDelete:
		return role == entity.RoleEmployee && actorID == ownerID
	case OpTransition:
		return role == entity.RoleManager
	}
	return false
}

// OwnerScope devuelve la restricción de ownership para listados: para un
// Employee el resultado se limita a sus propias tareas (devuelve su id);
// para un Manager no hay restricción (devuelve nil).
func OwnerScope(role string, actorID int64) *int64 {
	if role == entity.RoleEmployee {
		return &actorID
	}
	return nil
}
