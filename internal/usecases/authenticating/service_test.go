package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/jocianoperin/PromoPredictor-sub000/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	assert.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:               "segredo-de-teste",
			OperatorEmail:        "operador@exemplo.com",
			OperatorPasswordHash: string(hash),
			TokenTTLHours:        2,
		},
	}
}

func TestService_LoginOperator(t *testing.T) {
	service := NewService(testConfig(t))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Credenciais válidas",
			email:    "operador@exemplo.com",
			password: "senha-forte",
		},
		{
			name:     "Senha incorreta",
			email:    "operador@exemplo.com",
			password: "senha-errada",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Email desconhecido",
			email:    "outro@exemplo.com",
			password: "senha-forte",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.LoginOperator(tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := testConfig(t)
	service := NewService(cfg)

	token, err := service.LoginOperator("operador@exemplo.com", "senha-forte")
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "operador@exemplo.com", claims.OperatorEmail)

	_, err = service.ValidateToken("token-malformado")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token assinado com outro segredo é rejeitado
	otherCfg := testConfig(t)
	otherCfg.Auth.Secret = "outro-segredo"
	otherService := NewService(otherCfg)
	foreignToken, err := otherService.LoginOperator("operador@exemplo.com", "senha-forte")
	assert.NoError(t, err)

	_, err = service.ValidateToken(foreignToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
