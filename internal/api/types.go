package api

import "time"

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// User is the backend's representation of an account. The backend owns this
// shape; the client caches a copy and replaces it wholesale after mutations.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	DOB       string    `json:"dob,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// User roles as the backend reports them.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileUpdate is the PUT /auth/profile body for the general tab. The whole
// form is sent each time; the backend returns the updated user.
type ProfileUpdate struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	DOB       string `json:"dob"`
	AvatarURL string `json:"avatarUrl"`
}

// NewUser is the POST /auth/register body.
type NewUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserUpdate is the PUT /auth/users/:id body. Password is optional; an empty
// value leaves the current password in place.
type UserUpdate struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// Category is a product grouping shown on the dashboard.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
}

// Product is a stocked item within a category.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	LowStock  float64 `json:"lowStock"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// HistoryEntry is a recorded stock movement.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Product   string    `json:"product"`
	Action    string    `json:"action"` // "in" or "out"
	Quantity  float64   `json:"quantity"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"createdAt"`
}
