package models

import "time"

// Engagement records: quizzes, events, challenges, forum posts and terms
// versions. These collections are read and listed as-is; there is no
// mutation surface for them yet.

type Quiz struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"questionCount"`
	Points        int       `json:"points"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Event struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location,omitempty"`
	Date     time.Time `json:"date"`
}

type Challenge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Points      int       `json:"points"`
	Deadline    time.Time `json:"deadline"`
}

type ForumPost struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Replies    int       `json:"replies"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TermsVersion struct {
	ID          string    `json:"id"`
	Version     string    `json:"version"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"publishedAt"`
}
