package cli

import (
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/access"
	"github.com/lazuardi12345/Gadai-CG-sub001/internal/client/models"
)

// DefaultRoutes is the console's navigation table. A route without roles is
// open to every signed-in user.
var DefaultRoutes = access.Routes{
	{Path: "/dashboard", Title: "Dashboard"},
	{Path: "/nasabah", Title: "Customers", Roles: []models.Role{models.RolePetugas, models.RoleHM}},
	{Path: "/gadai", Title: "Pawn transactions", Roles: []models.Role{models.RolePetugas, models.RoleHM}},
	{Path: "/checker/approvals", Title: "Collateral checks", Roles: []models.Role{models.RoleChecker}},
	{Path: "/reports", Title: "Reports", Roles: []models.Role{models.RoleHM}},
}
