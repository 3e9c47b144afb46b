package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/wsantos/estoque-api/internal/application/auth"
	"github.com/wsantos/estoque-api/internal/application/dto"
	"github.com/wsantos/estoque-api/internal/domain"
	"github.com/wsantos/estoque-api/internal/domain/entity"
	pkgjwt "github.com/wsantos/estoque-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "estoque-api-test"
)

// memUserRepo implementación en memoria del puerto de usuarios.
type memUserRepo struct {
	byUsername map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byUsername: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *memUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(repo *memUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaUsuarioConHashBcrypt(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "ana", out.Username)

	stored := repo.byUsername["ana"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")),
		"el hash debe verificar contra el password original")
}

func TestRegister_Validaciones(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	_, err := uc.Register(dto.RegisterRequest{Username: "", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Username: "ana", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password de menos de 8 caracteres se rechaza")
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "ana", Password: "otraclave99"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveTokenValido(t *testing.T) {
	repo := newMemUserRepo()
	uc := newAuthUC(repo)

	registered, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, username, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token emitido debe parsear con el mismo secret")
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, "ana", username)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, out)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(newMemUserRepo())

	out, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, out)
}
