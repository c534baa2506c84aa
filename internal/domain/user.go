package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações da sessão do CRM carregadas no token
type Claims struct {
	UserID     string `json:"user_id"`
	TenantID   string `json:"tenant_id"`
	UserEmail  string `json:"email,omitempty"`
	UserRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}

// TenantChange é a marca d'água de alteração dos dados de um tenant
type TenantChange struct {
	TenantID  string
	ChangedAt time.Time
	Rows      int
}
