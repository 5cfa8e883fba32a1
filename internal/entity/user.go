package entity

type User struct {
	ID           int    `json:"id" db:"id"`
	Nickname     string `json:"nickname" db:"nickname"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type RegisterRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserProfile struct {
	ID       int    `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// DashboardSummary — счётчики записей пользователя для личного кабинета.
type DashboardSummary struct {
	Books    int `json:"books"`
	Journals int `json:"journals"`
	Datasets int `json:"datasets"`
}
