package models

// Follow is a directed subscription edge from a follower to an author.
// The storage layer enforces that the pair is unique and that an
// account cannot follow itself.
type Follow struct {
	BaseModel

	UserID   uint    `json:"user_id" gorm:"uniqueIndex:idx_follow_pair;check:chk_follow_not_self,user_id <> author_id"`
	User     Account `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AuthorID uint    `json:"author_id" gorm:"uniqueIndex:idx_follow_pair"`
	Author   Account `json:"author" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
