package dto

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of the customer and admin login endpoints.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of the admin user update endpoint. Empty
// fields are left unchanged.
type UpdateUserRequest struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RemoveUserRequest is the body of the admin user removal endpoint.
type RemoveUserRequest struct {
	ID string `json:"_id"`
}

// RemoveProductRequest is the body of the admin product removal endpoint.
type RemoveProductRequest struct {
	ID string `json:"_id"`
}
