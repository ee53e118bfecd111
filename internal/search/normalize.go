package search

import (
	"strings"

	"bookrec/internal/book"
	"bookrec/internal/platform/googlebooks"
)

// ToBook maps a provider volume to a Book. Volumes without a volumeInfo
// block are dropped.
func ToBook(v googlebooks.Volume) (book.Book, bool) {
	info := v.VolumeInfo
	if info == nil {
		return book.Book{}, false
	}

	b := book.Book{
		ProviderID:    strings.TrimSpace(v.ID),
		Title:         info.Title,
		Authors:       info.Authors,
		Description:   info.Description,
		Categories:    info.Categories,
		PublishedDate: info.PublishedDate,
		PageCount:     info.PageCount,
		Language:      info.Language,
	}
	if b.Authors == nil {
		b.Authors = []string{}
	}
	if b.Categories == nil {
		b.Categories = []string{}
	}
	if info.AverageRating.Valid {
		r := info.AverageRating.Value
		b.AverageRating = &r
	}
	if img := info.ImageLinks; img != nil {
		thumb := img.Thumbnail
		if thumb == "" {
			thumb = img.SmallThumbnail
		}
		if thumb != "" {
			b.ThumbnailURL = &thumb
		}
	}
	return b, true
}
