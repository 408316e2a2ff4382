package models

import (
	"time"

	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Text        string                      `json:"text"`
	Language    string                      `json:"language"`
	Image       *string                     `json:"image"`
	Attachments datatypes.JSONSlice[string] `json:"attachments"`

	// PublishedAt is assigned by the server once at creation and never
	// touched afterwards. Feeds order by it, newest first.
	PublishedAt time.Time `json:"published_at" gorm:"index"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author" gorm:"constraint:OnDelete:CASCADE"`

	// The post outlives its group; deleting the group only clears the link.
	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group" gorm:"constraint:OnDelete:SET NULL"`

	Comments []Comment `json:"comments,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}
