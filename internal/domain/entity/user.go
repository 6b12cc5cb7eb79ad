package entity

// Roles de los portales (admin, técnico, cliente).
const (
	RoleAdmin   = "admin"
	RoleTecnico = "tecnico"
	RoleCliente = "cliente"
)

// Actor usuario autenticado que ejecuta una operación.
// ClientID solo aplica al rol cliente: identifica el cliente al que pertenece.
type Actor struct {
	UserID   string
	ClientID string
	Role     string
}

// CanWrite indica si el actor puede crear o modificar estados de cuenta.
func (a Actor) CanWrite() bool { return a.Role == RoleAdmin }

// CanRead indica si el actor puede consultar el estado de cuenta del cliente dado.
func (a Actor) CanRead(clientID string) bool {
	switch a.Role {
	case RoleAdmin, RoleTecnico:
		return true
	case RoleCliente:
		return a.ClientID != "" && a.ClientID == clientID
	default:
		return false
	}
}
