package entity

// Customer representa el cliente de una factura. Pertenece a la factura; no se comparte.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
