package models

import "time"

// User is the account aggregate: a validated mail address and password
// plus the activation code generated at construction time. The identity
// is absent until the store assigns it via [User.Register].
//
// The entity never issues SQL itself; [User.Snapshot] is the sole
// channel between the aggregate and the persistence layer.
type User struct {
	id             int64
	email          Email
	password       Password
	activationCode ActivationCode
}

// NewUser builds an unpersisted account from already-validated value
// objects and draws a fresh activation code for it.
func NewUser(email Email, password Password) *User {
	return &User{
		email:          email,
		password:       password,
		activationCode: NewActivationCode(),
	}
}

// Register assigns the store-generated identity and returns the receiver.
// It is meant to be called exactly once, right after the INSERT; calling
// it again is a logic error and is not guarded against.
func (u *User) Register(id int64) *User {
	u.id = id

	return u
}

// ID returns the store-assigned identity, zero until [User.Register].
func (u *User) ID() int64 {
	return u.id
}

func (u *User) Email() Email {
	return u.email
}

func (u *User) ActivationCode() ActivationCode {
	return u.activationCode
}

// Snapshot produces the plain record consumed by the persistence layer.
// The password is hashed here, with a fresh salt on every call, so a
// snapshot must be taken exactly once per persisted record.
func (u *User) Snapshot() (UserSnapshot, error) {
	hash, err := u.password.Hash()
	if err != nil {
		return UserSnapshot{}, err
	}

	return UserSnapshot{
		ID:             u.id,
		Email:          u.email.String(),
		PasswordHash:   hash,
		ActivationCode: u.activationCode.String(),
	}, nil
}

// UserSnapshot is the serializable projection of a [User] passed to the
// persistence gateways. It carries the one-way password hash, never the
// raw password.
type UserSnapshot struct {
	ID             int64
	Email          string
	PasswordHash   string
	ActivationCode string
}

// UserRecord is an account row as read back from the store.
// Sensitive fields must never be exposed outside trusted boundaries.
type UserRecord struct {
	// ID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	ID int64 `json:"-"`

	// Email is the canonical lowercased mail address, unique per account.
	Email string `json:"email"`

	// PasswordHash is the salted bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// Activated reports whether the account has redeemed an activation
	// code. Once true it never flips back.
	Activated bool `json:"activated"`

	// CreatedAt is the store-assigned creation timestamp.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the UserRecord model.
func (u UserRecord) TableName() string {
	return "users"
}
