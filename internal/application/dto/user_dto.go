package dto

// CreateUserRequest alta de usuario dentro de la empresa del solicitante.
type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// UpdateUserRequest edición de usuario. Los campos permitidos son exactamente
// firstName, lastName, email, role y status; cualquier otro campo en el body
// rechaza la petición completa con 400.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Role      *string `json:"role"`
	Status    *string `json:"status"`
}
