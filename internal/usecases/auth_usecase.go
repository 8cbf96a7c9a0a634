package usecases

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ryuk2345/raffussclietos/internal/entities"
	"github.com/ryuk2345/raffussclietos/internal/repository"
)

// Localized auth failures, matching the messages the dashboards show.
var (
	ErrWrongPassword      = errors.New("Contraseña incorrecta")
	ErrInvalidCredentials = errors.New("Credenciales inválidas o cuenta inactiva")
	ErrInvalidAccessCode  = errors.New("Código inválido")
	ErrInvalidSession     = errors.New("sesión inválida")
)

const (
	sessionTTL = 7 * 24 * time.Hour

	// Legacy defaults carried over from the JSON-file era: accounts without
	// a stored credential still accept these.
	defaultAdminPassword  = "admin123"
	defaultMemberPassword = "123456"
)

type LoginResult struct {
	Token      string
	RedirectTo string
	Session    entities.Session
}

// AuthUsecase resolves the three actor kinds (hardcoded admin, team members,
// clients) into one signed session token. The token replaces the old
// plaintext admin/user:<id>/client:<id> cookie values, which were forgeable
// by anyone who could spell a UUID.
type AuthUsecase struct {
	userRepo      *repository.UserRepository
	clientRepo    *repository.ClientRepository
	jwtSecret     []byte
	adminPassword string
}

func NewAuthUsecase(userRepo *repository.UserRepository, clientRepo *repository.ClientRepository, secret, adminPassword string) *AuthUsecase {
	if adminPassword == "" {
		adminPassword = defaultAdminPassword
	}
	return &AuthUsecase{
		userRepo:      userRepo,
		clientRepo:    clientRepo,
		jwtSecret:     []byte(secret),
		adminPassword: adminPassword,
	}
}

// Login checks, in order: the hardcoded admin credential, active team
// members by email, active clients by email. Team members fall back to the
// default password when no credential is stored; clients fall back to their
// access code, then the default.
func (uc *AuthUsecase) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if password == uc.adminPassword && (email == "" || email == "admin@admin.com") {
		return uc.issue(adminSession(), "/dashboard")
	}

	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user != nil && user.Status == entities.StatusActivo {
		stored := user.PasswordHash
		if stored == "" {
			stored = defaultMemberPassword
		}
		if !credentialMatches(stored, password) {
			return nil, ErrWrongPassword
		}
		return uc.issue(entities.Session{
			ID:   user.ID,
			Name: user.Name,
			Role: user.Role,
			Type: entities.SessionUser,
		}, "/dashboard")
	}

	client, err := uc.clientRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if client != nil && client.Status == entities.StatusActivo {
		stored := client.Password
		if stored == "" {
			stored = client.AccessCode
		}
		if stored == "" {
			stored = defaultMemberPassword
		}
		if !credentialMatches(stored, password) {
			return nil, ErrWrongPassword
		}
		return uc.issue(clientSession(client), "/portal")
	}

	return nil, ErrInvalidCredentials
}

// PortalLogin authenticates a client by access code alone. It issues the
// same kind of session token as Login; the separate client_session cookie of
// the old portal path is gone.
func (uc *AuthUsecase) PortalLogin(accessCode string) (*LoginResult, error) {
	if accessCode == "" {
		return nil, ErrInvalidAccessCode
	}
	client, err := uc.clientRepo.GetByAccessCode(accessCode)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrInvalidAccessCode
	}
	return uc.issue(clientSession(client), "/portal")
}

// Resolve verifies a session token and re-reads the backing record, so
// deleted or renamed accounts drop out on the next request.
func (uc *AuthUsecase) Resolve(token string) (*entities.Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}
	sub, _ := claims["sub"].(string)
	typ, _ := claims["typ"].(string)

	switch typ {
	case entities.SessionAdmin:
		s := adminSession()
		return &s, nil
	case entities.SessionUser:
		user, err := uc.userRepo.GetByID(sub)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, ErrInvalidSession
		}
		return &entities.Session{ID: user.ID, Name: user.Name, Role: user.Role, Type: entities.SessionUser}, nil
	case entities.SessionClient:
		client, err := uc.clientRepo.GetByID(sub)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, ErrInvalidSession
		}
		s := clientSession(client)
		return &s, nil
	}
	return nil, ErrInvalidSession
}

// HashPassword bcrypt-hashes a credential before it is stored. Legacy plain
// records remain comparable through credentialMatches.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (uc *AuthUsecase) issue(session entities.Session, redirectTo string) (*LoginResult, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  session.ID,
		"name": session.Name,
		"role": session.Role,
		"typ":  session.Type,
		"exp":  time.Now().Add(sessionTTL).Unix(),
	})
	tokenString, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %v", err)
	}
	return &LoginResult{Token: tokenString, RedirectTo: redirectTo, Session: session}, nil
}

// credentialMatches compares against a bcrypt hash when the stored value
// looks like one, otherwise falls back to the legacy plaintext comparison
// still present in migrated records.
func credentialMatches(stored, given string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return stored == given
}

func adminSession() entities.Session {
	return entities.Session{ID: "admin", Name: "Admin", Role: "Administrador", Type: entities.SessionAdmin}
}

func clientSession(c *entities.Client) entities.Session {
	return entities.Session{ID: c.ID, Name: c.Company, Role: "Cliente", Type: entities.SessionClient}
}
