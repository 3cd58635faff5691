package main

import (
	"fmt"

	"github.com/jhoicas/catalog-import/internal/domain"
	"github.com/jhoicas/catalog-import/pkg/config"
	"github.com/jhoicas/catalog-import/pkg/jwt"
)

// cliUserID sujeto de los tokens emitidos desde la línea de comandos.
const cliUserID = "catalog-cli"

// mintToken firma un token para el API con el issuer y la expiración configurados.
func mintToken(cfg config.JWTConfig, role string) (string, error) {
	if role != jwt.RoleAdmin && role != jwt.RoleEditor {
		return "", fmt.Errorf("%w: rol %q (usar %s o %s)", domain.ErrInvalidInput, role, jwt.RoleAdmin, jwt.RoleEditor)
	}
	if cfg.Secret == "" {
		return "", fmt.Errorf("%w: JWT_SECRET requerido", domain.ErrInvalidInput)
	}
	return jwt.Generate(cfg.Secret, cliUserID, role, cfg.Issuer, cfg.Expiration)
}
