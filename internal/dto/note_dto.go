package dto

import "time"

type CreateNoteRequest struct {
	Title   string `json:"title" form:"title" validate:"required"`
	Content string `json:"content" form:"content"`
}

type CreateNoteResponse struct {
	Id uint `json:"id"`
}

type UpdateNoteRequest struct {
	Id      uint   `json:"-" form:"-"`
	Title   string `json:"title" form:"title" validate:"required"`
	Content string `json:"content" form:"content"`
}

type NoteResponse struct {
	Id        uint       `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type NoteDetailResponse struct {
	Id      uint   `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
