// Package admin repairs and verifies account authorization roles.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/lixenwraith/reportdeck/store"
)

// Roles in ascending privilege
const (
	RoleViewer = "viewer"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

var (
	ErrUnknownRole  = errors.New("unknown role")
	ErrRoleMismatch = errors.New("role mismatch")
)

// Roles returns the valid role names
func Roles() []string {
	return []string{RoleViewer, RoleEditor, RoleAdmin}
}

// ValidRole reports whether role is known
func ValidRole(role string) bool {
	return slices.Contains(Roles(), role)
}

// AccountStore is the subset of the store used by role maintenance
type AccountStore interface {
	AccountByEmail(ctx context.Context, email string) (store.Account, error)
	SetRole(ctx context.Context, email, role string) error
}

// Result describes a role check or repair
type Result struct {
	Email    string
	Previous string
	Current  string
	Changed  bool
}

func (r Result) String() string {
	switch {
	case r.Changed:
		return fmt.Sprintf("%s: %s -> %s", r.Email, r.Previous, r.Current)
	case r.Previous != r.Current:
		return fmt.Sprintf("%s: %s (want %s)", r.Email, r.Previous, r.Current)
	default:
		return fmt.Sprintf("%s: %s (unchanged)", r.Email, r.Current)
	}
}

// RepairRole sets the role of email when it differs
// With dryRun the change is computed but not written. A nil log uses slog.Default.
func RepairRole(ctx context.Context, log *slog.Logger, accounts AccountStore, email, role string, dryRun bool) (Result, error) {
	if log == nil {
		log = slog.Default()
	}
	if !ValidRole(role) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	acct, err := accounts.AccountByEmail(ctx, email)
	if err != nil {
		return Result{}, err
	}

	res := Result{Email: email, Previous: acct.Role, Current: role}
	if acct.Role == role {
		return res, nil
	}
	if dryRun {
		log.Info("role repair (dry run)", "email", email, "from", acct.Role, "to", role)
		return res, nil
	}

	if err := accounts.SetRole(ctx, email, role); err != nil {
		return Result{}, err
	}
	res.Changed = true
	log.Info("role repaired", "email", email, "from", acct.Role, "to", role)
	return res, nil
}

// VerifyRole checks email holds want, returning ErrRoleMismatch otherwise
func VerifyRole(ctx context.Context, accounts AccountStore, email, want string) (Result, error) {
	if !ValidRole(want) {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownRole, want)
	}
	acct, err := accounts.AccountByEmail(ctx, email)
	if err != nil {
		return Result{}, err
	}
	res := Result{Email: email, Previous: acct.Role, Current: want}
	if acct.Role != want {
		return res, fmt.Errorf("%w: %s has %s, want %s", ErrRoleMismatch, email, acct.Role, want)
	}
	return res, nil
}
