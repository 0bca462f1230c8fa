package entities

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleClient  Role = "client"
	RoleCompany Role = "company"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleClient, RoleCompany:
		return true
	default:
		return false
	}
}

// AuthUser - локальная копия личности из удаленного identity store.
// Валидность привязана к токену сессии.
type AuthUser struct {
	ID          string
	Email       string
	Name        string
	Role        Role
	CompanyName string
}

type Credentials struct {
	Email    string
	Password string
}

// Registration - данные регистрации; CompanyName обязателен только для роли company.
type Registration struct {
	Email       string
	Password    string
	Name        string
	Role        Role
	CompanyName string
}

// UserProfile - строка таблицы профилей identity store.
type UserProfile struct {
	ID          string
	Email       string
	Name        string
	Role        Role
	CompanyName string
	CreatedAt   string
	UpdatedAt   string
}
