package model

import "time"

type Document struct {
	ID        string
	OwnerID   string
	Filename  string
	PageCount int
	Text      string
	Summary   string
	CreatedAt time.Time
}

type DocumentResponse struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	PageCount int       `json:"pageCount"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d *Document) Response() DocumentResponse {
	return DocumentResponse{
		ID:        d.ID,
		Filename:  d.Filename,
		PageCount: d.PageCount,
		Summary:   d.Summary,
		CreatedAt: d.CreatedAt,
	}
}
