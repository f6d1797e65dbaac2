package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/djanguicore/portfolio-backend/internal/api/metrics"
	"github.com/djanguicore/portfolio-backend/internal/auth"
	"github.com/djanguicore/portfolio-backend/internal/core/domain"
	"github.com/djanguicore/portfolio-backend/internal/core/ports"
)

// AuthService implements signup and login on top of the user repository and
// the token codec.
type AuthService struct {
	repo  ports.UserRepository
	codec *auth.TokenCodec
	log   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *auth.TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, log: log}
}

// Signup registers a new user with a bcrypt-hashed password and a role
// derived from the email domain.
//
// The duplicate check is deliberately asymmetric, carried over from the
// system this replaces: a signup is rejected only when an existing row has
// the same email AND the supplied password matches its stored hash. The
// same email with a different password creates a second row, which is why
// login scans all rows sharing an email.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (domain.UserView, error) {
	if in.Email == "" || in.Password == "" {
		return domain.UserView{}, domain.ErrInvalidCredentials
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(in.Password)) == nil {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			return domain.UserView{}, domain.ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserView{}, err
	}

	role := domain.RoleForEmail(in.Email)
	if role == domain.RoleAdmin {
		s.log.Info().Str("email", in.Email).Msg("registering admin user")
	} else {
		s.log.Info().Str("email", in.Email).Msg("registering user")
	}

	user := &domain.User{
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		return domain.UserView{}, err
	}

	metrics.SignupsTotal.WithLabelValues(string(role)).Inc()
	return created.View(), nil
}

// Authenticate verifies the credentials against every row sharing the email
// and issues a token for the row whose hash matches. Unknown email and
// unmatched password are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (ports.LoginResult, error) {
	candidates, err := s.repo.FindAllByEmail(ctx, email)
	if err != nil {
		return ports.LoginResult{}, err
	}
	if len(candidates) == 0 {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return ports.LoginResult{}, domain.ErrInvalidCredentials
	}

	var matched *domain.User
	for _, u := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			matched = u
		}
	}
	if matched == nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return ports.LoginResult{}, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(matched.Email)
	if err != nil {
		return ports.LoginResult{}, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return ports.LoginResult{
		Token:     token,
		UserID:    matched.ID,
		FirstName: matched.FirstName,
		LastName:  matched.LastName,
	}, nil
}
