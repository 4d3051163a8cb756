// Package auth manages administrator accounts: registration, password login,
// HS256 bearer tokens and password reset tokens.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrSnakeDoc/backoffice/internal/domain"
	"github.com/MrSnakeDoc/backoffice/internal/kv"
	"github.com/MrSnakeDoc/backoffice/internal/logger"
	"github.com/MrSnakeDoc/backoffice/internal/repository/local"
	"github.com/MrSnakeDoc/backoffice/internal/validate"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const (
	DefaultTokenTTL = 24 * time.Hour
	DefaultResetTTL = time.Hour

	resetKeyPrefix = "password_reset:"

	// ForgotPasswordMessage does not reveal whether the account exists.
	ForgotPasswordMessage = "If this email is registered, a reset link has been sent."
)

// ResetSink delivers a password reset token to the account owner.
type ResetSink func(ctx context.Context, email, token string)

type Options struct {
	Secret     []byte
	TokenTTL   time.Duration
	ResetTTL   time.Duration
	BcryptCost int
	Clock      func() time.Time
	Logger     logger.Logger
	ResetSink  ResetSink
}

type Service struct {
	users    *local.Repository[domain.User]
	store    kv.Store
	secret   []byte
	tokenTTL time.Duration
	resetTTL time.Duration
	cost     int
	now      func() time.Time
	log      logger.Logger
	sink     ResetSink

	// serializes register and reset so email uniqueness holds
	mu sync.Mutex
}

type resetTicket struct {
	UserID    int64     `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func New(store kv.Store, opts Options) (*Service, error) {
	if len(opts.Secret) == 0 {
		return nil, errors.New("auth: empty token secret")
	}
	s := &Service{
		store:    store,
		secret:   opts.Secret,
		tokenTTL: opts.TokenTTL,
		resetTTL: opts.ResetTTL,
		cost:     opts.BcryptCost,
		now:      opts.Clock,
		log:      opts.Logger,
		sink:     opts.ResetSink,
	}
	if s.tokenTTL <= 0 {
		s.tokenTTL = DefaultTokenTTL
	}
	if s.resetTTL <= 0 {
		s.resetTTL = DefaultResetTTL
	}
	if s.cost == 0 {
		s.cost = bcrypt.DefaultCost
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.sink == nil {
		s.sink = func(_ context.Context, email, token string) {
			s.log.Info("password reset requested", logger.String("email", email), logger.String("token", token))
		}
	}
	s.users = local.New[domain.User](store, domain.Users.StorageKey, local.WithClock(s.now))
	return s, nil
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return domain.AuthResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.byEmail(ctx, req.Email); err == nil {
		return domain.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, ErrInvalidCredentials) {
		return domain.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.users.Create(ctx, domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    domain.Today(s.now()),
	})
	if err != nil {
		return domain.AuthResponse{}, err
	}
	s.log.Info("user registered", logger.Int64("id", u.ID))
	return s.respond(u, "Registration successful.")
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validate.Struct(req); err != nil {
		return domain.AuthResponse{}, err
	}
	u, err := s.byEmail(ctx, req.Email)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return domain.AuthResponse{}, ErrInvalidCredentials
	}
	return s.respond(u, "Login successful.")
}

// ForgotPassword issues a reset token for a known email. Unknown emails get
// the same answer.
func (s *Service) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) (domain.MessageResponse, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validate.Struct(req); err != nil {
		return domain.MessageResponse{}, err
	}
	resp := domain.MessageResponse{Message: ForgotPasswordMessage}

	u, err := s.byEmail(ctx, req.Email)
	if errors.Is(err, ErrInvalidCredentials) {
		s.log.Debug("password reset for unknown email")
		return resp, nil
	}
	if err != nil {
		return domain.MessageResponse{}, err
	}

	token := uuid.NewString()
	raw, err := json.Marshal(resetTicket{UserID: u.ID, ExpiresAt: s.now().Add(s.resetTTL)})
	if err != nil {
		return domain.MessageResponse{}, fmt.Errorf("encode reset ticket: %w", err)
	}
	if err := s.store.Set(ctx, resetKeyPrefix+token, raw); err != nil {
		return domain.MessageResponse{}, fmt.Errorf("save reset ticket: %w", err)
	}
	s.sink(ctx, u.Email, token)
	return resp, nil
}

// ResetPassword consumes a reset token and signs the user in.
func (s *Service) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) (domain.AuthResponse, error) {
	req.Token = strings.TrimSpace(req.Token)
	if err := validate.Struct(req); err != nil {
		return domain.AuthResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := resetKeyPrefix + req.Token
	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return domain.AuthResponse{}, ErrInvalidToken
	}
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("load reset ticket: %w", err)
	}
	var ticket resetTicket
	if err := json.Unmarshal(raw, &ticket); err != nil {
		return domain.AuthResponse{}, errors.Join(ErrInvalidToken, err)
	}
	if !s.now().Before(ticket.ExpiresAt) {
		_ = s.store.Delete(ctx, key)
		return domain.AuthResponse{}, ErrInvalidToken
	}

	u, err := s.users.Get(ctx, ticket.UserID)
	if err != nil {
		return domain.AuthResponse{}, errors.Join(ErrInvalidToken, err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return domain.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	if u, err = s.users.Update(ctx, u.ID, u); err != nil {
		return domain.AuthResponse{}, err
	}
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Warn("reset ticket not removed", logger.Error(err))
	}
	s.log.Info("password reset", logger.Int64("id", u.ID))
	return s.respond(u, "Password reset successful.")
}

// PurgeExpiredResets deletes the reset tickets past their expiry and reports
// how many were removed. Stores that cannot list keys are left alone.
func (s *Service) PurgeExpiredResets(ctx context.Context) (int, error) {
	lister, ok := s.store.(kv.Lister)
	if !ok {
		return 0, nil
	}
	keys, err := lister.Keys(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for _, key := range keys {
		if !strings.HasPrefix(key, resetKeyPrefix) {
			continue
		}
		raw, err := s.store.Get(ctx, key)
		if errors.Is(err, kv.ErrNotFound) {
			continue
		}
		if err != nil {
			return purged, fmt.Errorf("load reset ticket: %w", err)
		}
		var ticket resetTicket
		if err := json.Unmarshal(raw, &ticket); err == nil && now.Before(ticket.ExpiresAt) {
			continue
		}
		if err := s.store.Delete(ctx, key); err != nil {
			return purged, fmt.Errorf("delete reset ticket: %w", err)
		}
		purged++
	}
	return purged, nil
}

// Verify checks a bearer token and returns its claims.
func (s *Service) Verify(token string) (Claims, error) {
	return parseToken(strings.TrimSpace(token), s.secret, s.now())
}

// Users exposes the account repository.
func (s *Service) Users() *local.Repository[domain.User] { return s.users }

func (s *Service) respond(u domain.User, msg string) (domain.AuthResponse, error) {
	token, err := generateToken(u.ID, u.Email, s.secret, s.now(), s.tokenTTL)
	if err != nil {
		return domain.AuthResponse{}, err
	}
	view := u.View()
	return domain.AuthResponse{Message: msg, Token: token, User: &view}, nil
}

// byEmail returns ErrInvalidCredentials for an unknown email.
func (s *Service) byEmail(ctx context.Context, email string) (domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return domain.User{}, err
	}
	for _, u := range users {
		if normalizeEmail(u.Email) == email {
			return u, nil
		}
	}
	return domain.User{}, ErrInvalidCredentials
}
