package models

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmailRequired is returned by NewUser when no email address is given.
var ErrEmailRequired = errors.New("email address required")

// User is an account that owns tags, ingredients and recipes.
// Email is the identity key.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Name      string `gorm:"size:255"`
	Password  string `gorm:"not null" json:"-"`
	IsActive  bool   `gorm:"not null;default:true"`
	IsStaff   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser builds an active user with a normalized email and a hashed password.
// It does not persist anything.
func NewUser(email, password, name string) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	user := &User{
		Email:    email,
		Name:     name,
		Password: password,
		IsActive: true,
	}
	if err := user.HashPassword(); err != nil {
		return nil, err
	}
	return user, nil
}

// NormalizeEmail trims the address and lowercases its domain part.
// The local part is left as typed since some mail servers treat it case-sensitively.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// HashPassword replaces the plain text Password with its bcrypt hash
func (u *User) HashPassword() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	u.Password = password
	return u.HashPassword()
}

// CheckPassword reports whether password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// Role maps the staff flag onto the role claim carried in access tokens
func (u *User) Role() string {
	if u.IsStaff {
		return RoleAdmin
	}
	return RoleUser
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
