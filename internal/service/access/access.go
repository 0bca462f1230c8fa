package access

import "foxboard/internal/entities"

// Пути, на которые уводится пользователь, не прошедший проверку роли.
const (
	PathHome             = "/"
	PathLogin            = "/login"
	PathClientDashboard  = "/client-dashboard"
	PathCompanyDashboard = "/company-dashboard"
)

// Permissions - что роли разрешено в дашборде.
type Permissions struct {
	ViewFullDashboard bool
	ViewDrivers       bool
	ViewCompanies     bool
	ViewAnalytics     bool
	UploadData        bool
	ManageUsers       bool
	// AllowedMetrics - белый список метрик; "all" открывает все.
	AllowedMetrics []string
}

var rolePermissions = map[entities.Role]Permissions{
	entities.RoleAdmin: {
		ViewFullDashboard: true,
		ViewDrivers:       true,
		ViewCompanies:     true,
		ViewAnalytics:     true,
		UploadData:        true,
		ManageUsers:       true,
		AllowedMetrics:    []string{"all"},
	},
	entities.RoleClient: {
		AllowedMetrics: []string{
			"total_deliveries",
			"collection_time",
			"avg_time",
			"customer_experience",
			"top_peak_hours",
			"delivery_completion_status",
		},
	},
	entities.RoleCompany: {
		AllowedMetrics: []string{
			"total_deliveries",
			"collection_time",
			"avg_time",
			"customer_experience",
			"top_peak_hours",
			"delivery_completion_status",
			"company_metrics",
		},
	},
}

// PermissionsFor возвращает права роли.
func PermissionsFor(role entities.Role) (Permissions, bool) {
	p, ok := rolePermissions[role]
	return p, ok
}

// CanAccess решает, пускать ли пользователя к ресурсу, требующему роль.
// Пустая требуемая роль означает "любой авторизованный".
func CanAccess(user *entities.AuthUser, required entities.Role) bool {
	if user == nil {
		return false
	}
	if required == "" {
		return true
	}
	return user.Role == required
}

// AllowsMetric проверяет метрику по белому списку роли.
func AllowsMetric(role entities.Role, metric string) bool {
	p, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, m := range p.AllowedMetrics {
		if m == "all" || m == metric {
			return true
		}
	}
	return false
}

// RedirectPath возвращает путь, куда уводить пользователя, которому
// отказано в доступе: каждого на его собственный дашборд, анонима на логин.
func RedirectPath(user *entities.AuthUser) string {
	if user == nil {
		return PathLogin
	}
	switch user.Role {
	case entities.RoleClient:
		return PathClientDashboard
	case entities.RoleCompany:
		return PathCompanyDashboard
	case entities.RoleAdmin:
		return PathHome
	default:
		return PathLogin
	}
}
