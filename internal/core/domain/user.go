package domain

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrInvalidLocale      = errors.New("invalid locale tag")
)

const (
	MinPasswordLen = 8
	bcryptCost     = 12
)

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Locale       string    `json:"locale" db:"locale"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func NewUser(id, email string) (*User, error) {
	email = strings.TrimSpace(email)

	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	now := time.Now().UTC()
	return &User{
		ID:        id,
		Email:     strings.ToLower(email),
		Locale:    language.AmericanEnglish.String(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetLocale stores the canonical BCP 47 form of tag, used for dashboard labels.
func (u *User) SetLocale(tag string) error {
	parsed, err := language.Parse(strings.TrimSpace(tag))
	if err != nil {
		return ErrInvalidLocale
	}
	u.Locale = parsed.String()
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *User) SetPassword(plainPassword string) error {
	if utf8.RuneCountInString(plainPassword) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcryptCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (u *User) CheckPassword(plainPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plainPassword)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
