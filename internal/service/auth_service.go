package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ibrahimt2325-tech/fitness-tracker/internal/config"
	"github.com/ibrahimt2325-tech/fitness-tracker/internal/util"
)

// AuthService gates the app behind one shared passphrase. A correct passphrase
// exchanges for a short-lived session token; there are no per-user credentials.
type AuthService struct {
	Config *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{Config: cfg}
}

func (s *AuthService) Login(passphrase string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.Config.Auth.PassphraseHash), []byte(passphrase)); err != nil {
		return "", util.ErrBadPassphrase
	}
	return util.GenerateSessionToken(s.Config.Auth.JWTSecret, s.Config.Auth.ExpireTime)
}
