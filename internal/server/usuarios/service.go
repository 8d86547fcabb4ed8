package usuarios

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dserranox/blschool-intranet/internal/common"
	"github.com/dserranox/blschool-intranet/internal/server/auth"
	"github.com/dserranox/blschool-intranet/internal/server/config"
)

type Service struct {
	repo                        Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                        repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

func (s *Service) checkPassword(hash, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
}

// Login verifies the credentials and returns a signed access token. Unknown
// usernames and wrong passwords are indistinguishable to the caller; a
// deactivated account is reported as such only after the password matched.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if !s.checkPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}

	if !user.Activo {
		return nil, common.ErrAccountInactive
	}

	token, expiresAt, err := auth.GenerateToken(user.Username, user.Roles, user.PersonaID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &LoginResult{
		Token:       token,
		ExpiresAt:   expiresAt.UnixMilli(),
		TokenType:   "Bearer",
		Username:    user.Username,
		Authorities: user.Roles,
	}, nil
}

// Perfil returns the profile of an authenticated account.
func (s *Service) Perfil(ctx context.Context, username string) (*Perfil, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return &Perfil{
		PersonaID: user.PersonaID,
		Nombres:   user.Nombres,
		Apellidos: user.Apellidos,
		Email:     user.Email,
		Username:  user.Username,
		Roles:     user.Roles,
	}, nil
}

func (s *Service) Estadisticas(ctx context.Context) (*DashboardStats, error) {
	return s.repo.CountEstadisticas(ctx)
}
