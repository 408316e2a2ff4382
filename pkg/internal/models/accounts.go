package models

// Account is a local mirror of a user managed by the external auth system.
// Rows are kept in sync out-of-band; this service only reads them and hangs
// foreign keys off them.
type Account struct {
	BaseModel

	Name        string `json:"name" gorm:"uniqueIndex" validate:"lowercase"`
	Nick        string `json:"nick"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`

	Posts    []Post    `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID"`
}
