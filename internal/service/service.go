package service

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/correagss/personal-control-finance/internal/models"
	"github.com/correagss/personal-control-finance/internal/repository"
	"github.com/correagss/personal-control-finance/internal/security"
	"github.com/sirupsen/logrus"
)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	tokens *security.TokenManager
	log    *logrus.Logger
}

// NewService initializes a new service
func NewService(repo *repository.Repository, tokens *security.TokenManager, log *logrus.Logger) *Service {
	return &Service{repo: repo, tokens: tokens, log: log}
}

// Register creates a new user with hashed password. The email is normalized
// to lowercase, checked against the domain allow-list and rejected when
// already taken; the password must pass the strength policy.
func (s *Service) Register(email, password string) (*models.Usuario, error) {
	normalized := strings.ToLower(email)

	if !strings.HasSuffix(normalized, ".com") && !strings.HasSuffix(normalized, ".com.br") {
		return nil, ErrInvalidEmailDomain
	}

	if !security.ValidatePassword(password) {
		return nil, ErrWeakPassword
	}

	if _, err := s.repo.FindUserByEmail(normalized); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.Usuario{Email: normalized, HashedPassword: hashed}
	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a bearer token keyed by email
func (s *Service) Login(email, password string) (*models.Token, error) {
	normalized := strings.ToLower(email)

	user, err := s.repo.FindUserByEmail(normalized)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !security.VerifyPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	access, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Infof("User logged in: %s", user.Email)
	return &models.Token{AccessToken: access, TokenType: "bearer"}, nil
}

// ResolveUser maps a bearer token back to its user. Every failure collapses
// into ErrCouldNotValidate.
func (s *Service) ResolveUser(token string) (*models.Usuario, error) {
	email, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrCouldNotValidate
	}
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return nil, ErrCouldNotValidate
	}
	return user, nil
}

func validateTransacao(valor float64, tipo string) error {
	if tipo != models.TipoEntrada && tipo != models.TipoSaida {
		return ErrInvalidTipo
	}
	if valor <= 0 {
		return ErrInvalidValor
	}
	return nil
}

// CreateTransacao persists a new transaction owned by the given user
func (s *Service) CreateTransacao(user *models.Usuario, descricao string, valor float64, tipo string) (*models.Transacao, error) {
	if err := validateTransacao(valor, tipo); err != nil {
		return nil, err
	}

	t := &models.Transacao{
		Descricao: descricao,
		Valor:     valor,
		Tipo:      tipo,
		Data:      time.Now().UTC(),
		OwnerID:   user.ID,
	}
	if err := s.repo.CreateTransacao(t); err != nil {
		return nil, err
	}

	s.log.Infof("Transaction %d created for user %s", t.ID, user.Email)
	return t, nil
}

// ListTransacoes returns all transactions owned by the given user
func (s *Service) ListTransacoes(user *models.Usuario) ([]models.Transacao, error) {
	return s.repo.ListTransacoes(user.ID)
}

// GetTransacao returns an owned transaction by id
func (s *Service) GetTransacao(user *models.Usuario, id int64) (*models.Transacao, error) {
	t, err := s.repo.FindTransacao(id, user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTransacaoNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateTransacao overwrites descricao, valor and tipo of an owned
// transaction and returns the stored result. The creation timestamp is
// preserved.
func (s *Service) UpdateTransacao(user *models.Usuario, id int64, descricao string, valor float64, tipo string) (*models.Transacao, error) {
	if err := validateTransacao(valor, tipo); err != nil {
		return nil, err
	}

	t := &models.Transacao{ID: id, Descricao: descricao, Valor: valor, Tipo: tipo, OwnerID: user.ID}
	err := s.repo.UpdateTransacao(t)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTransacaoNotFound
	}
	if err != nil {
		return nil, err
	}

	s.log.Infof("Transaction %d updated for user %s", id, user.Email)
	return s.GetTransacao(user, id)
}

// DeleteTransacao permanently removes an owned transaction
func (s *Service) DeleteTransacao(user *models.Usuario, id int64) error {
	err := s.repo.DeleteTransacao(id, user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrTransacaoNotFound
	}
	if err != nil {
		return err
	}

	s.log.Infof("Transaction %d deleted for user %s", id, user.Email)
	return nil
}

// Saldo sums the user's transactions by direction. All three fields are
// rounded to two decimal places.
func (s *Service) Saldo(user *models.Usuario) (*models.Saldo, error) {
	entradas, saidas, err := s.repo.SumByTipo(user.ID)
	if err != nil {
		return nil, err
	}
	return &models.Saldo{
		TotalEntradas: round2(entradas),
		TotalSaidas:   round2(saidas),
		Saldo:         round2(entradas - saidas),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
