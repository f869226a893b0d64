package cmd

import (
	"fmt"

	"github.com/silverfern314/notevault/internal/configs"
	"github.com/silverfern314/notevault/internal/cryptobox"
	verrors "github.com/silverfern314/notevault/internal/errors"
	logger "github.com/silverfern314/notevault/internal/logging"
	"github.com/silverfern314/notevault/internal/notestore"
	"github.com/silverfern314/notevault/internal/session"
	"github.com/silverfern314/notevault/internal/syncengine"
	"github.com/silverfern314/notevault/internal/ui"
)

// vault bundles the per-invocation wiring shared by every command:
// the loaded config, a fresh session registry, and the note store.
type vault struct {
	config   *configs.Config
	registry *session.Registry
	store    *notestore.Store
}

func openVault(log logger.Logger) (*vault, error) {
	config, err := configs.LoadConfig()
	if err != nil {
		return nil, err
	}

	registry := session.NewRegistry()
	store := notestore.NewStore(configs.UserVaultSettings.DataPath, registry, log)

	return &vault{
		config:   config,
		registry: registry,
		store:    store,
	}, nil
}

// unlock loads the remembered user's key into the session: it prompts
// for the passphrase (masked, or NOTEVAULT_PASSPHRASE when scripted)
// and verifies it by attempting to decrypt an existing note. A user
// with no notes yet passes trivially.
func (v *vault) unlock(log logger.Logger) error {
	user := v.config.Session.CurrentUser
	if user == "" {
		return verrors.ErrNoCurrentUser
	}

	passphrase, err := ui.ReadPassphrase(fmt.Sprintf("Passphrase for %s: ", user))
	if err != nil {
		return err
	}

	key := cryptobox.KeyFromPassphrase(passphrase)
	ok, err := v.store.VerifyLogin(user, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: wrong passphrase for %s", verrors.ErrDecryptionFailed, user)
	}

	v.registry.Login(user, key)
	log.Infof("Unlocked vault for %s", user)
	return nil
}

// attach points the session at the remembered user without prompting
// for a passphrase. Enough for folder operations, which never decrypt.
func (v *vault) attach() error {
	user := v.config.Session.CurrentUser
	if user == "" {
		return verrors.ErrNoCurrentUser
	}
	v.registry.Attach(user)
	return nil
}

// newEngine builds a sync engine from the configured backend. A nil
// backend (sync disabled) is a valid engine that reports false.
func (v *vault) newEngine(log logger.Logger) (*syncengine.Engine, error) {
	backend, err := syncengine.NewBackend(v.config.Sync)
	if err != nil {
		return nil, err
	}
	return syncengine.NewEngine(backend, log), nil
}

// documentPath is the current user's local document file.
func (v *vault) documentPath() string {
	return notestore.DocumentPath(configs.UserVaultSettings.DataPath, v.config.Session.CurrentUser)
}
