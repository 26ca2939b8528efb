package db_models

// Account is the caller record the generation quota is charged against.
type Account struct {
	BaseModel
	Name       string
	Email      string `gorm:"unique"`
	UsageCount int    `gorm:"column:usage_count;not null;default:10"`
}
