package model

// swagger:model User
type User struct {
	BaseModel
	Name string `gorm:"size:100;unique;not null" json:"name"`
}

func (User) TableName() string {
	return "users"
}
