package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/amribrahim/goshop/internal/events"
	"github.com/amribrahim/goshop/internal/hash"
	"github.com/amribrahim/goshop/internal/logging"
	"github.com/amribrahim/goshop/internal/models"
	"github.com/amribrahim/goshop/internal/repo"
)

const accessTokenTTL = 24 * time.Hour

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	Producer  *events.Producer
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Image    string
	Phone    string
	Address  string
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, E(ErrValidation, "name, email and password are required")
	}
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	if _, err := s.Repo.FindUserByEmail(ctx, in.Email); err == nil {
		return nil, E(ErrConflict, "user already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: pwHash,
		Role:         role,
		Image:        in.Image,
		Phone:        in.Phone,
		Address:      in.Address,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	return &user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, E(ErrUnauthorized, "invalid email or password")
		}
		return "", nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "bad credentials")
		return "", nil, E(ErrUnauthorized, "invalid email or password")
	}

	token, err := s.SignAccessToken(user)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return "", nil, err
	}

	s.publish(ctx, map[string]any{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	return token, user, nil
}

func (s *AuthService) SignAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  time.Now().Add(accessTokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.JWTSecret)
}

func (s *AuthService) publish(ctx context.Context, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicUserEvents, eventKey(event), event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "error", err)
	}
}
