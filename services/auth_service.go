package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"travel-backend/models"
	"travel-backend/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	IdentifierUsername = "username"
	IdentifierEmail    = "email"
)

// AuthService verifies staff credentials server-side and issues signed,
// expiring session tokens. One service parameterized by identifier field
// replaces the old username-based and email-based login copies.
type AuthService struct {
	DB              *gorm.DB
	Secret          []byte
	IdentifierField string
	TokenTTL        time.Duration
}

func NewAuthService(db *gorm.DB, secret []byte) *AuthService {
	return &AuthService{
		DB:              db,
		Secret:          secret,
		IdentifierField: IdentifierUsername,
		TokenTTL:        12 * time.Hour,
	}
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	Token        string      `json:"token"`
	RedirectPath string      `json:"redirect_path"`
	User         models.User `json:"user"`
}

func dashboardPath(role string) string {
	switch role {
	case models.RoleOwner:
		return "/owner/dashboard"
	case models.RoleStaff:
		return "/staff/dashboard"
	default:
		return "/login"
	}
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// Login compares the credential pair against the users table. Failures are
// always the same generic error so the response never reveals which field
// was wrong.
func (s *AuthService) Login(identifier, password string) (*LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, errors.New("invalid_credentials")
	}

	column := "username"
	if s.IdentifierField == IdentifierEmail {
		column = "email"
		identifier = strings.ToLower(identifier)
	}

	var user models.User
	if err := s.DB.Where(column+" = ?", identifier).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid_credentials")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	stored := user.Password
	valid := false
	if isBcryptHash(stored) {
		valid = bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	} else if stored != "" && stored == password {
		// Legacy plaintext row: accept once and upgrade to a hash.
		valid = true
		if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
			s.DB.Model(&user).Update("password", string(hash))
		}
	}
	if !valid {
		return nil, errors.New("invalid_credentials")
	}

	token, err := s.issueToken(&user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:        token,
		RedirectPath: dashboardPath(user.Role),
		User:         user,
	}, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", user.ID),
		"name": user.FullName,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// SessionClaims is the verified content of a session token.
type SessionClaims struct {
	UserID string
	Name   string
	Role   string
}

// VerifyToken parses and validates a session token.
func (s *AuthService) VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid_or_expired_token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid_or_expired_token")
	}

	sub, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		return nil, errors.New("invalid_or_expired_token")
	}

	return &SessionClaims{UserID: sub, Name: name, Role: role}, nil
}

// ForgotPassword sets a reset token with a one-hour expiry and emails the
// reset link when the account exists. The caller always reports the same
// generic message either way.
func (s *AuthService) ForgotPassword(email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return
	}

	token := uuid.NewString()
	expiry := time.Now().Add(1 * time.Hour)
	if err := s.DB.Model(&user).Updates(map[string]any{
		"reset_token":         token,
		"reset_token_expires": expiry,
	}).Error; err != nil {
		log.Printf("failed to store reset token for %s: %v", utils.MaskEmail(email), err)
		return
	}

	frontend := strings.TrimRight(utils.EnvOrDefault("FRONTEND_URL", "http://localhost:3000"), "/")
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", frontend, token)
	if err := utils.SendPasswordResetEmail(user.Email, resetLink, user.FullName); err != nil {
		log.Printf("failed to send reset email to %s: %v", utils.MaskEmail(email), err)
	}
}

// ResetPassword validates the new password and the reset token, then stores
// the new hash and clears the token.
func (s *AuthService) ResetPassword(token, password string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("validation: token is required")
	}
	if len(password) < 6 {
		return errors.New("validation: password must be at least 6 characters")
	}

	var user models.User
	err := s.DB.
		Where("reset_token = ? AND reset_token_expires > ?", token, time.Now()).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("invalid_or_expired_token")
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.DB.Model(&user).Updates(map[string]any{
		"password":            string(hash),
		"reset_token":         nil,
		"reset_token_expires": nil,
	}).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
