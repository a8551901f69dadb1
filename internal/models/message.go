package models

import "time"

// Message is one immutable timeline entry. PublishedAt is assigned by the
// message service at creation time, truncated to second resolution; message
// IDs break ordering ties when two messages land within the same second.
type Message struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AuthorID    uint      `json:"author_id" gorm:"index;not null"`
	Text        string    `json:"text" gorm:"not null"`
	PublishedAt time.Time `json:"published_at" gorm:"index"`
}

// PostMessageRequest is the request body for posting a new message.
type PostMessageRequest struct {
	Text string `json:"text"`
}

// TimelineEntry is a message enriched with its author's username, the shape
// every feed query returns.
type TimelineEntry struct {
	MessageID   uint      `json:"message_id"`
	AuthorID    uint      `json:"author_id"`
	Author      string    `json:"author"`
	Text        string    `json:"text"`
	PublishedAt time.Time `json:"published_at"`
}
