package models

// Comment replies are read in chronological order, oldest first, the
// opposite of the post feeds.
type Comment struct {
	BaseModel

	Text string `json:"text"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`
	PostID   uint    `json:"post_id"`
	Post     Post    `json:"post" gorm:"constraint:OnDelete:CASCADE"`
}
