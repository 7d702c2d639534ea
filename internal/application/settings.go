package application

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/domain/audit"
	"github.com/linskybing/freelance-market/internal/repository"
	"github.com/linskybing/freelance-market/pkg/utils"
	"gorm.io/datatypes"
)

// settingsProbe is the lookup order for tokens that carry no usable role.
var settingsProbe = []account.Role{account.RoleFreelancer, account.RoleClient}

type SettingsService struct {
	Repos   *repository.Repos
	avatars AvatarStore
}

func NewSettingsService(repos *repository.Repos, avatars AvatarStore) *SettingsService {
	return &SettingsService{
		Repos:   repos,
		avatars: avatars,
	}
}

// resolve finds the caller's account. A token with a known role selects the
// table directly; otherwise freelancers are tried before clients.
func (s *SettingsService) resolve(ctx context.Context, userID uint, role string) (account.Account, error) {
	roles := settingsProbe
	if r := account.Role(strings.ToLower(role)); r.Valid() {
		roles = []account.Role{r}
	}
	for _, r := range roles {
		a, err := s.Repos.Account.GetByID(ctx, r, userID)
		if err == nil {
			return a, nil
		}
		if !repository.IsNotFound(err) {
			return nil, err
		}
	}
	return nil, ErrAccountNotFound
}

func (s *SettingsService) Get(ctx context.Context, userID uint, role string) (*account.SettingsView, error) {
	a, err := s.resolve(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	view := account.NewSettingsView(a)
	return &view, nil
}

// Update applies whitelisted profile fields and dotted settings paths. Nothing
// is written unless every field is accepted.
func (s *SettingsService) Update(ctx context.Context, actor audit.Actor, userID uint, role string, in account.UpdateSettingsInput) (*account.SettingsView, error) {
	a, err := s.resolve(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	beforeSettings := a.Base().Settings.Data()

	if len(in.Profile) > 0 {
		if err := a.ApplyProfile(in.Profile); err != nil {
			return nil, err
		}
	}
	if len(in.Settings) > 0 {
		p := a.Base()
		updated, err := account.ApplySettingsUpdates(p.Settings.Data(), account.FlattenUpdates(in.Settings))
		if err != nil {
			return nil, err
		}
		p.Settings = datatypes.NewJSONType(updated)
	}

	if err := s.Repos.Account.Save(ctx, a); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(ctx, actor, "update_settings", string(a.Role()), strconv.FormatUint(uint64(userID), 10),
		beforeSettings, a.Base().Settings.Data(), "", s.Repos.Audit)
	view := account.NewSettingsView(a)
	return &view, nil
}

// UploadAvatar stores an image in object storage and records its URL.
func (s *SettingsService) UploadAvatar(ctx context.Context, userID uint, role string, r io.Reader, size int64, contentType string) (*account.SettingsView, error) {
	if s.avatars == nil {
		return nil, ErrStorageDisabled
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedFileType
	}
	a, err := s.resolve(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	url, err := s.avatars.PutAvatar(ctx, string(a.Role()), userID, r, size, contentType)
	if err != nil {
		return nil, err
	}
	a.Base().Avatar = url
	if err := s.Repos.Account.Save(ctx, a); err != nil {
		return nil, err
	}
	view := account.NewSettingsView(a)
	return &view, nil
}
