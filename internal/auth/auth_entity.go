package auth

// User is a back-office account.
type User struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Username string `gorm:"column:username"`
	Email    string `gorm:"column:email"`
	Password string `gorm:"column:password"`
	FullName string `gorm:"column:full_name"`
	Status   string `gorm:"column:status"`
}

func (User) TableName() string { return "users" }
