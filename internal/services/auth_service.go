package services

import (
	"errors"
	"strings"
	"time"

	"wildventures/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAdmin           = "admin"
	confirmationSubject = "booking-confirmation"
	adminTokenTTL       = 12 * time.Hour
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrSecretMissing = errors.New("token secret not configured")
)

type confirmationClaims struct {
	Reference string `json:"ref"`
	jwt.RegisteredClaims
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs the confirmation-view tokens and admin session tokens.
type TokenService struct {
	Secret          []byte
	ConfirmationTTL time.Duration
	Now             func() time.Time
}

func (s TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s TokenService) keyFunc(*jwt.Token) (any, error) {
	return s.Secret, nil
}

func (s TokenService) parserOptions() []jwt.ParserOption {
	return []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
}

// IssueConfirmation binds ref into a signed token so the confirmation view
// cannot be reached by guessing references.
func (s TokenService) IssueConfirmation(ref string) (string, error) {
	if len(s.Secret) == 0 {
		return "", ErrSecretMissing
	}
	now := s.now()
	claims := confirmationClaims{
		Reference: ref,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  confirmationSubject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ConfirmationTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ConfirmationTTL))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// VerifyConfirmation checks that token was issued for ref.
func (s TokenService) VerifyConfirmation(ref, token string) error {
	var claims confirmationClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, s.keyFunc, s.parserOptions()...)
	if err != nil || !parsed.Valid {
		return domain.ValidationError{Field: "token", Msg: ErrInvalidToken.Error(), Err: err}
	}
	if claims.Subject != confirmationSubject || claims.Reference != ref {
		return domain.ValidationError{Field: "token", Msg: ErrInvalidToken.Error()}
	}
	return nil
}

func (s TokenService) IssueAdmin(username string) (string, error) {
	if len(s.Secret) == 0 {
		return "", ErrSecretMissing
	}
	now := s.now()
	claims := adminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// ParseAdmin returns the caller carried by an admin token.
func (s TokenService) ParseAdmin(token string) (domain.RequestContext, error) {
	var claims adminClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, s.keyFunc, s.parserOptions()...)
	if err != nil || !parsed.Valid || claims.Role == "" {
		return domain.RequestContext{}, ErrInvalidToken
	}
	return domain.RequestContext{Subject: claims.Subject, Role: claims.Role}, nil
}

// AdminAuth checks the single configured operator account.
type AdminAuth struct {
	Username     string
	PasswordHash string
	Tokens       TokenService
}

// Login returns a signed admin token. An empty PasswordHash disables login.
func (a AdminAuth) Login(username, password string) (string, error) {
	if strings.TrimSpace(a.PasswordHash) == "" {
		return "", domain.ValidationError{Field: "auth", Msg: "admin login is disabled"}
	}
	if strings.TrimSpace(username) != a.Username {
		return "", domain.ValidationError{Field: "auth", Msg: "invalid username or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", domain.ValidationError{Field: "auth", Msg: "invalid username or password"}
	}
	return a.Tokens.IssueAdmin(a.Username)
}
