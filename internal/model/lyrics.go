package model

import "time"

// LyricsGenerateRequest represents the request body for lyrics generation
type LyricsGenerateRequest struct {
	Story    string `json:"story" validate:"required,min=10,max=2000"`
	Theme    Theme  `json:"theme" validate:"required,oneof=love friendship heartbreak happiness sadness celebration country nostalgia hope family adventure motivation peace"`
	Language string `json:"language" validate:"omitempty,min=2,max=5"`
	UserID   string `json:"user_id,omitempty"`
}

// LyricsGenerateResponse represents the response for lyrics generation
type LyricsGenerateResponse struct {
	ID             string    `json:"id"`
	Lyrics         string    `json:"lyrics"`
	Theme          Theme     `json:"theme"`
	Language       string    `json:"language"`
	CreatedAt      time.Time `json:"created_at"`
	ProcessingTime float64   `json:"processing_time"`
	WordCount      int       `json:"word_count"`
}

// LyricsImproveRequest represents the request body for lyrics improvement
type LyricsImproveRequest struct {
	OriginalLyrics string `json:"original_lyrics" validate:"required,min=10"`
	Story          string `json:"story" validate:"required,min=10"`
	Theme          Theme  `json:"theme" validate:"required,oneof=love friendship heartbreak happiness sadness celebration country nostalgia hope family adventure motivation peace"`
}

// LyricsImproveResponse represents the response for lyrics improvement
type LyricsImproveResponse struct {
	ImprovedLyrics string `json:"improved_lyrics"`
	OriginalLyrics string `json:"original_lyrics"`
}

// TitleGenerateRequest represents the request body for title generation
type TitleGenerateRequest struct {
	Lyrics string `json:"lyrics" validate:"required,min=10"`
	Theme  Theme  `json:"theme" validate:"required,oneof=love friendship heartbreak happiness sadness celebration country nostalgia hope family adventure motivation peace"`
}

// TitleGenerateResponse represents the response for title generation
type TitleGenerateResponse struct {
	Title string `json:"title"`
	Theme Theme  `json:"theme"`
}
