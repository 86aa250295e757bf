package models

// RegisterRequest is the JSON body of POST /api/user.
type RegisterRequest struct {
	// Email is the raw mail address as typed by the user.
	// It is canonicalized (lowercased) and validated server-side.
	Email string `json:"email"`

	// Password is the raw password. It only ever lives in the request
	// scope; the store receives a bcrypt hash.
	Password string `json:"password"`
}

// ActivateRequest is the JSON body of POST /api/user/activate.
type ActivateRequest struct {
	// Code is the 4-digit activation code delivered by mail.
	Code string `json:"code"`
}
