package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type User struct {
	UserID      string `json:"_id" db:"user_id"`
	FirstName   string `json:"first_name" db:"first_name"`
	LastName    string `json:"last_name" db:"last_name"`
	Location    string `json:"location" db:"location"`
	Description string `json:"description" db:"description"`
	Occupation  string `json:"occupation" db:"occupation"`
}

// UserSummary - публичное представление пользователя для списков
type UserSummary struct {
	UserID    string `json:"_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserDetail - полное публичное представление пользователя
type UserDetail struct {
	UserID      string `json:"_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Occupation  string `json:"occupation"`
}

func NewUserSummary(u User) UserSummary {
	return UserSummary{
		UserID:    u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewUserDetail(u User) UserDetail {
	return UserDetail{
		UserID:      u.UserID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Location:    u.Location,
		Description: u.Description,
		Occupation:  u.Occupation,
	}
}

type Comment struct {
	CommentID string    `json:"_id"`
	Comment   string    `json:"comment"`
	DateTime  time.Time `json:"date_time"`
	UserID    string    `json:"user_id"`
}

// Comments хранятся внутри строки фотографии как JSONB-массив,
// порядок элементов соответствует порядку добавления
type Comments []Comment

func (c *Comments) Scan(value interface{}) error {
	if value == nil {
		*c = Comments{}
		return nil
	}

	data, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("неожиданный тип колонки comments: %T", value)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("ошибка при разборе комментариев: %w", err)
	}

	if *c == nil {
		*c = Comments{}
	}

	return nil
}

func (c Comments) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

type Photo struct {
	PhotoID  string    `json:"_id" db:"photo_id"`
	UserID   string    `json:"user_id" db:"user_id"`
	FileName string    `json:"file_name" db:"file_name"`
	DateTime time.Time `json:"date_time" db:"date_time"`
	Comments Comments  `json:"comments" db:"comments"`
}

type SchemaInfo struct {
	SchemaInfoID string    `json:"_id" db:"schema_info_id"`
	Version      int       `json:"version" db:"version"`
	LoadDateTime time.Time `json:"load_date_time" db:"load_date_time"`
}

// PopulatedComment - комментарий с подставленным автором вместо user_id
type PopulatedComment struct {
	CommentID string      `json:"_id"`
	Comment   string      `json:"comment"`
	DateTime  time.Time   `json:"date_time"`
	User      UserSummary `json:"user"`
}

// PopulatedPhoto - фотография со всеми комментариями и их авторами
type PopulatedPhoto struct {
	PhotoID  string             `json:"_id"`
	UserID   string             `json:"user_id"`
	FileName string             `json:"file_name"`
	FileURL  string             `json:"file_url,omitempty"`
	DateTime time.Time          `json:"date_time"`
	Comments []PopulatedComment `json:"comments"`
}

type CollectionCounts struct {
	User       int `json:"user"`
	Photo      int `json:"photo"`
	SchemaInfo int `json:"schemaInfo"`
}
