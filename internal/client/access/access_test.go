package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/logging"
)

func TestAdmit(t *testing.T) {
	tests := []struct {
		name    string
		allowed []models.Role
		role    models.Role
		want    bool
	}{
		{name: "nil allowed", allowed: nil, role: "petugas", want: true},
		{name: "empty allowed, no role", allowed: []models.Role{}, role: "", want: true},
		{name: "member", allowed: []models.Role{"checker", "hm"}, role: "hm", want: true},
		{name: "not member", allowed: []models.Role{"checker"}, role: "petugas", want: false},
		{name: "case-insensitive", allowed: []models.Role{"Checker"}, role: "CHECKER", want: true},
		{name: "no role", allowed: []models.Role{"checker"}, role: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Admit(tt.allowed, tt.role))
		})
	}
}

// fakeUsers counts reads so tests can assert the guard never caches.
type fakeUsers struct {
	user  *models.User
	err   error
	reads int
}

func (f *fakeUsers) LoadUser(context.Context) (*models.User, error) {
	f.reads++
	return f.user, f.err
}

func TestGuard_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("petugas denied checker view", func(t *testing.T) {
		g := NewGuard(&fakeUsers{user: &models.User{Role: "petugas"}}, logging.Nop())
		assert.Equal(t, Decision{Redirect: UnauthorizedPath}, g.Check(ctx, models.RoleChecker))
	})

	t.Run("checker admitted", func(t *testing.T) {
		g := NewGuard(&fakeUsers{user: &models.User{Role: "checker"}}, logging.Nop())
		assert.Equal(t, Decision{Allowed: true}, g.Check(ctx, models.RoleChecker))
	})

	t.Run("unrestricted view", func(t *testing.T) {
		g := NewGuard(&fakeUsers{user: &models.User{Role: "petugas"}}, logging.Nop())
		assert.True(t, g.Check(ctx).Allowed)
	})

	t.Run("nobody signed in", func(t *testing.T) {
		g := NewGuard(&fakeUsers{}, logging.Nop())
		assert.Equal(t, Decision{Redirect: LoginPath}, g.Check(ctx, models.RoleChecker))
	})

	t.Run("unreadable record", func(t *testing.T) {
		g := NewGuard(&fakeUsers{err: errors.New("corrupted")}, logging.Nop())
		assert.Equal(t, Decision{Redirect: LoginPath}, g.Check(ctx))
	})
}

func TestGuard_ReevaluatesEveryNavigation(t *testing.T) {
	users := &fakeUsers{user: &models.User{Role: "checker"}}
	g := NewGuard(users, logging.Nop())
	ctx := context.Background()

	assert.True(t, g.Check(ctx, models.RoleChecker).Allowed)

	users.user = &models.User{Role: "petugas"}
	assert.False(t, g.Check(ctx, models.RoleChecker).Allowed)

	users.user = nil
	assert.Equal(t, LoginPath, g.Check(ctx, models.RoleChecker).Redirect)

	assert.Equal(t, 3, users.reads)
}

func TestFilterMenu(t *testing.T) {
	routes := Routes{
		{Path: "/dashboard", Title: "Dashboard"},
		{Path: "/checker/approvals", Title: "Persetujuan", Roles: []models.Role{models.RoleChecker}},
		{Path: "/petugas/gadai", Title: "Transaksi Gadai", Roles: []models.Role{models.RolePetugas}},
		{Path: "/reports", Title: "Laporan", Roles: []models.Role{models.RoleHM, models.RoleChecker}},
	}

	got := FilterMenu(routes, models.RoleChecker)
	paths := make([]string, 0, len(got))
	for _, r := range got {
		paths = append(paths, r.Path)
	}
	assert.Equal(t, []string{"/dashboard", "/checker/approvals", "/reports"}, paths)

	assert.Len(t, FilterMenu(routes, ""), 1)

	r, ok := routes.Find("/reports")
	assert.True(t, ok)
	assert.Equal(t, "Laporan", r.Title)
	_, ok = routes.Find("/nope")
	assert.False(t, ok)
}
