package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/smartchef/smartchef-v4/backend/internal/model"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken covers bad signatures and expired tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrWeakPassword = errors.New("password must be at least 6 characters")
)

const tokenLifetime = 7 * 24 * time.Hour

// TokenClaims are the signed claims carried by every access token.
type TokenClaims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	jwt.RegisteredClaims
}

// AuthService owns password hashing and token issuance/verification.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Signup creates an account and returns it together with a fresh token.
// Email is normalized to lowercase before the uniqueness check.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if len(password) < 6 {
		return nil, "", ErrWeakPassword
	}
	email = strings.ToLower(email)

	var existing model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Avatar:       fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name)),
		Preferences:  model.Preferences{Diet: "none", Allergies: []string{}},
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Login verifies credentials and returns the account with a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// GenerateToken signs a 7-day token for the given user.
func (s *AuthService) GenerateToken(user *model.User) (string, error) {
	claims := TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token string. All verification
// failures, expiry included, collapse into ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
