package dto

import (
	"time"

	"github.com/digishoplabs/digishop/internal/domain/model"
)

// Response is the uniform envelope returned by every endpoint.
type Response struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message,omitempty"`
	Token    string            `json:"token,omitempty"`
	Total    *int              `json:"total,omitempty"`
	User     *UserResponse     `json:"user,omitempty"`
	Users    []UserResponse    `json:"users,omitempty"`
	Product  *ProductResponse  `json:"product,omitempty"`
	Products []ProductResponse `json:"products,omitempty"`
	Order    *OrderResponse    `json:"order,omitempty"`
	Orders   []OrderResponse   `json:"orders,omitempty"`
}

// OK builds a success envelope with an optional message.
func OK(message string) Response {
	return Response{Success: true, Message: message}
}

// Fail builds a failure envelope with the given message.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// UserResponse is the public view of a user. The password hash never leaves
// the service.
type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts the domain user into its public view.
func ToUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponses converts a slice of domain users.
func ToUserResponses(users []model.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, ToUserResponse(u))
	}
	return result
}
