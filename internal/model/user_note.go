package model

// UserNote stores free-form text per (user, content type, content id).
// NoteText is opaque to the server; the code-vault content type keeps a
// JSON-encoded snippet list in it, stored verbatim.
// swagger:model UserNote
type UserNote struct {
	BaseModel
	UserID      uint   `gorm:"not null;uniqueIndex:idx_note_user_content" json:"user_id"`
	ContentType string `gorm:"size:50;not null;uniqueIndex:idx_note_user_content" json:"content_type"`
	ContentID   uint   `gorm:"not null;uniqueIndex:idx_note_user_content" json:"content_id"`
	NoteText    string `gorm:"type:text" json:"note_text"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserNote) TableName() string {
	return "user_notes"
}
