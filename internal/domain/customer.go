package domain

// Customer is a login record from the customer directory. The credential
// columns are written by the peer system that owns the shared store; this
// service only reads them. ID doubles as the ownership key on orders.
type Customer struct {
	ID           string
	Name         string
	Username     string
	PasswordHash string
	Active       bool
}
