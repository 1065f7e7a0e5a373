package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User rows are created on first external-auth login and refreshed on every
// login after that. Rows are never hard-deleted.
type User struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	OpenID       string     `gorm:"size:64;uniqueIndex;not null" json:"openId"`
	Name         *string    `gorm:"type:text" json:"name"`
	Email        *string    `gorm:"size:320" json:"email"`
	LoginMethod  *string    `gorm:"size:64" json:"loginMethod"`
	Role         string     `gorm:"size:10;not null;default:user" json:"role"`
	LastSignedIn *time.Time `json:"lastSignedIn"`
	CreatedAt    *time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    *time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type AILog struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          *int64     `gorm:"index" json:"userId"`
	SessionID       *string    `gorm:"size:50" json:"sessionId"`
	InteractionType *string    `gorm:"size:50" json:"interactionType"`
	InputData       JSONMap    `gorm:"type:text" json:"inputData"`
	OutputData      JSONMap    `gorm:"type:text" json:"outputData"`
	ModelUsed       *string    `gorm:"size:50" json:"modelUsed"`
	TokensUsed      *int32     `json:"tokensUsed"`
	ResponseTimeMs  *int32     `json:"responseTimeMs"`
	CreatedAt       *time.Time `gorm:"autoCreateTime" json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
