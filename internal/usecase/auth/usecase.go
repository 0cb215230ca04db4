// Package auth is the pluggable login collaborator: a single configured
// admin credential pair exchanged for a signed token. There is no user
// store and no route enforcement here.
package auth

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Usecase struct {
	username string
	password string
	secret   []byte
	now      func() time.Time
}

func NewUsecase(username, password, secret string) *Usecase {
	return &Usecase{username: username, password: password, secret: []byte(secret), now: time.Now}
}

func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type AdminDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type TokenDTO struct {
	Token string   `json:"token"`
	Admin AdminDTO `json:"admin"`
}

// Login checks the configured credential pair and issues an HS256 token
// valid for 24h.
func (u *Usecase) Login(username, password string) (*TokenDTO, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.password)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	now := u.now().UTC()
	claims := jwt.MapClaims{
		"sub": u.username,
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return nil, err
	}
	return &TokenDTO{
		Token: signed,
		Admin: AdminDTO{ID: 1, Username: u.username, Name: "System Administrator"},
	}, nil
}
