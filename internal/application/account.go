package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/freelance-market/internal/api/middleware"
	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type UserPage struct {
	Users      []account.UserView  `json:"users"`
	Pagination response.Pagination `json:"pagination"`
}

type AccountService struct {
	Repos         *repository.Repos
	reservedEmail string
	tokenLifetime time.Duration
	now           func() time.Time
}

func NewAccountService(repos *repository.Repos, deps Deps) *AccountService {
	deps.fill()
	return &AccountService{
		Repos:         repos,
		reservedEmail: strings.ToLower(strings.TrimSpace(deps.ReservedAdminEmail)),
		tokenLifetime: deps.TokenLifetime,
		now:           deps.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// emailTaken checks every account table, an email identifies one person.
func (s *AccountService) emailTaken(ctx context.Context, email string) (bool, error) {
	for _, role := range account.Roles {
		_, err := s.Repos.Account.GetByEmail(ctx, role, email)
		if err == nil {
			return true, nil
		}
		if !repository.IsNotFound(err) {
			return false, err
		}
	}
	return false, nil
}

// Register creates a freelancer or client account with default settings.
func (s *AccountService) Register(ctx context.Context, actor audit.Actor, in account.RegisterInput) (account.Account, error) {
	role := account.Role(in.Role)
	if role != account.RoleFreelancer && role != account.RoleClient {
		return nil, account.ErrUnknownRole
	}
	email := normalizeEmail(in.Email)

	taken, err := s.emailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acct, err := account.New(role)
	if err != nil {
		return nil, err
	}
	p := acct.Base()
	p.Name = strings.TrimSpace(in.Name)
	p.Email = email
	p.Password = string(hashed)
	p.Status = account.StatusActive
	p.Settings = datatypes.NewJSONType(account.DefaultSettings())

	if err := s.Repos.Account.Create(ctx, acct); err != nil {
		return nil, err
	}

	actor.UserID, actor.Role = p.ID, string(role)
	utils.LogAuditWithConsole(ctx, actor, "register", string(role), strconv.FormatUint(uint64(p.ID), 10), nil, acct, "", s.Repos.Audit)
	return acct, nil
}

// Login checks the credentials and issues a token. Without a role every
// account table is probed in order and the first match wins.
func (s *AccountService) Login(ctx context.Context, in account.LoginInput) (*account.LoginResult, error) {
	email := normalizeEmail(in.Email)
	roles := account.Roles
	if in.Role != "" {
		roles = []account.Role{account.Role(in.Role)}
	}

	var acct account.Account
	for _, role := range roles {
		a, err := s.Repos.Account.GetByEmail(ctx, role, email)
		if err != nil {
			if repository.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		acct = a
		break
	}
	if acct == nil {
		return nil, ErrInvalidCredentials
	}

	p := acct.Base()
	if err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if p.Status == account.StatusSuspended {
		return nil, ErrAccountSuspended
	}

	token, err := middleware.GenerateToken(p.ID, string(acct.Role()), p.Email, s.tokenLifetime)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	now := s.now()
	if err := s.Repos.Account.TouchLogin(ctx, acct.Role(), p.ID, now); err != nil {
		slog.Warn("record last login failed", "userId", p.ID, "role", acct.Role(), "error", err)
	} else {
		p.LastLoginAt = &now
	}

	return &account.LoginResult{Token: token, Role: acct.Role(), User: acct}, nil
}

// List pages through accounts for the admin console.
func (s *AccountService) List(ctx context.Context, f account.ListFilter) (*UserPage, error) {
	accounts, total, err := s.Repos.Account.List(ctx, f)
	if err != nil {
		return nil, err
	}
	users := make([]account.UserView, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, account.NewUserView(a))
	}
	return &UserPage{Users: users, Pagination: response.NewPagination(f.Page, f.Limit, total)}, nil
}

func (s *AccountService) get(ctx context.Context, role account.Role, id uint) (account.Account, error) {
	a, err := s.Repos.Account.GetByID(ctx, role, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AccountService) isReserved(a account.Account) bool {
	return s.reservedEmail != "" && a.Role() == account.RoleAdmin && normalizeEmail(a.Base().Email) == s.reservedEmail
}

// Moderate suspends, reactivates, verifies or unverifies an account.
func (s *AccountService) Moderate(ctx context.Context, actor audit.Actor, in account.ModerateUserInput) (account.Account, error) {
	action := account.UserAction(in.Action)
	switch action {
	case account.ActionSuspend, account.ActionActivate, account.ActionVerify, account.ActionUnverify:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, in.Action)
	}

	a, err := s.get(ctx, account.Role(in.Role), in.UserID)
	if err != nil {
		return nil, err
	}
	if action == account.ActionSuspend && (s.isReserved(a) || (a.Role() == account.RoleAdmin && a.Base().ID == actor.UserID)) {
		return nil, ErrReservedAccount
	}

	before := *a.Base()
	action.Apply(a.Base())
	if err := s.Repos.Account.Save(ctx, a); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, actor, string(action), string(a.Role()), strconv.FormatUint(uint64(in.UserID), 10),
		map[string]any{"status": before.Status, "verified": before.Verified},
		map[string]any{"status": a.Base().Status, "verified": a.Base().Verified},
		"", s.Repos.Audit)
	return a, nil
}

// Delete removes an account. The reserved admin and the caller's own admin
// account cannot be removed.
func (s *AccountService) Delete(ctx context.Context, actor audit.Actor, role account.Role, id uint) error {
	a, err := s.get(ctx, role, id)
	if err != nil {
		return err
	}
	if s.isReserved(a) || (role == account.RoleAdmin && id == actor.UserID) {
		return ErrReservedAccount
	}
	if err := s.Repos.Account.Delete(ctx, role, id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(ctx, actor, "delete", string(role), strconv.FormatUint(uint64(id), 10), a, nil, "", s.Repos.Audit)
	return nil
}

// EnsureAdmin creates the admin account for email, or resets its password
// and reactivates it when it already exists.
func (s *AccountService) EnsureAdmin(ctx context.Context, email, password, name string) (account.Account, bool, error) {
	email = normalizeEmail(email)
	if email == "" || len(password) < 8 {
		return nil, false, ErrInvalidAdminSeed
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	existing, err := s.Repos.Account.GetByEmail(ctx, account.RoleAdmin, email)
	switch {
	case err == nil:
		p := existing.Base()
		p.Password = string(hashed)
		p.Status = account.StatusActive
		if name = strings.TrimSpace(name); name != "" {
			p.Name = name
		}
		if err := s.Repos.Account.Save(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	case !repository.IsNotFound(err):
		return nil, false, err
	}

	acct, _ := account.New(account.RoleAdmin)
	p := acct.Base()
	p.Name = strings.TrimSpace(name)
	if p.Name == "" {
		p.Name = "Administrator"
	}
	p.Email = email
	p.Password = string(hashed)
	p.Status = account.StatusActive
	p.Verified = true
	p.Settings = datatypes.NewJSONType(account.DefaultSettings())
	if err := s.Repos.Account.Create(ctx, acct); err != nil {
		return nil, false, err
	}
	utils.LogAuditWithConsole(ctx, audit.Actor{UserID: p.ID, Role: string(account.RoleAdmin)}, "seed_admin", string(account.RoleAdmin), strconv.FormatUint(uint64(p.ID), 10), nil, acct, "", s.Repos.Audit)
	return acct, true, nil
}
