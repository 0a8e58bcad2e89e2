package models

import "time"

// RoleAdmin on a user profile is the sole authorization gate for the admin
// console and the pending-order surfaces. An ordinary customer has an empty
// role.
const RoleAdmin = "admin"

// User is the profile document at users/{uid}. The document id equals the
// identity provider's principal id.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Doc() map[string]interface{} {
	return map[string]interface{}{
		"name":      u.Name,
		"email":     u.Email,
		"mobile":    u.Mobile,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
	}
}

func UserFromDoc(id string, data map[string]interface{}) User {
	return User{
		ID:        id,
		Name:      docString(data["name"]),
		Email:     docString(data["email"]),
		Mobile:    docString(data["mobile"]),
		Role:      docString(data["role"]),
		CreatedAt: docTime(data["createdAt"]),
	}
}
