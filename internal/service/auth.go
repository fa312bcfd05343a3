// Package service contains the business logic for the Rihla API.
// Services validate inputs, enforce business rules, and orchestrate repo
// calls. No SQL lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yalrayes/rihla/internal/domain"
	"github.com/yalrayes/rihla/internal/repo"
)

// Claims is the JWT payload issued on login and register.
type Claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// AuthService implements account registration, login, and token handling.
// Tokens are HS256 JWTs; passwords are stored as bcrypt hashes.
type AuthService struct {
	users    repo.UserRepo
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService constructs an AuthService backed by the provided UserRepo.
func NewAuthService(users repo.UserRepo, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Register creates a new account and returns it together with a fresh token,
// so the client is logged in immediately after registering.
// Returns domain.ErrConflict when the username is taken.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: hash: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Username: reg.Username,
		Password: string(hash),
		FullName: reg.FullName,
		Email:    reg.Email,
	})
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return user, token, nil
}

// Login verifies the credentials and returns the user with a fresh token.
// One error covers both unknown-user and wrong-password so the response
// does not reveal which usernames exist.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", fmt.Errorf("service.AuthService.Login: invalid credentials: %w", domain.ErrUnauthenticated)
		}
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)) != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: invalid credentials: %w", domain.ErrUnauthenticated)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return user, token, nil
}

// GetUser returns the account for the given id.
func (s *AuthService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.GetUser: %w", err)
	}
	return user, nil
}

// ValidateToken parses and verifies a token string and returns the claims.
// Any failure (bad signature, expiry, wrong algorithm) maps to
// domain.ErrUnauthenticated.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("service.AuthService.ValidateToken: %w", domain.ErrUnauthenticated)
	}
	return claims, nil
}

// Authenticate validates a token and returns the user id it was issued to.
// This is the narrow form the auth middleware depends on.
func (s *AuthService) Authenticate(token string) (int64, error) {
	claims, err := s.ValidateToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// issueToken signs a new HS256 token for the user. The jti claim gets a
// fresh UUID so individual tokens stay distinguishable in logs.
func (s *AuthService) issueToken(user domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
