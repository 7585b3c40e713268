package domain

// User is the transient session identity captured at sign-in. It lives only
// in memory and is destroyed on sign-out.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
