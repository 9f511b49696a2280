package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string

	Favorites []Favorite `gorm:"foreignKey:AccountID"`
	Tours     []Tour     `gorm:"foreignKey:AccountID"`
}
