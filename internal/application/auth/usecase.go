package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Yashxdev2805/Project-Shop-App/internal/domain"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/config"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/jwt"
	"github.com/Yashxdev2805/Project-Shop-App/pkg/logger"
)

// RoleOperator rol único del POS single-tenant.
const RoleOperator = "operador"

// UseCase login del operador de la tienda. No hay tabla de usuarios: la
// credencial viene de configuración (hash bcrypt, o password plano que se
// hashea al arrancar en modo desarrollo).
type UseCase struct {
	user   string
	hash   []byte
	jwtCfg config.JWTConfig
}

// New construye el caso de uso de auth. Si no hay ADMIN_PASSWORD_HASH se
// hashea ADMIN_PASSWORD; con la credencial de desarrollo por defecto se deja
// una advertencia en el log.
func New(cfg config.AuthConfig, jwtCfg config.JWTConfig, log *logger.Logger) (*UseCase, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		if cfg.AdminPassword == "admin123" {
			log.Warn().Msg("usando credencial de desarrollo por defecto; define ADMIN_PASSWORD o ADMIN_PASSWORD_HASH")
		}
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return &UseCase{user: cfg.AdminUser, hash: hash, jwtCfg: jwtCfg}, nil
}

// Login verifica usuario/password contra la credencial configurada y genera
// el JWT del operador.
func (uc *UseCase) Login(user, password string) (string, error) {
	if user != uc.user {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(uc.hash, []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.jwtCfg.Secret, uc.user, RoleOperator, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
}
