package repository

import (
	"context"
	"fmt"
	"sort"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/tablestore"
)

var postColumns = []string{"id", "title", "content", "author", "author_id", "date", "image_path", "designation", "post_type"}

type PostRepository struct {
	store tablestore.Store
}

func NewPostRepository(store tablestore.Store) *PostRepository {
	return &PostRepository{store: store}
}

func decodePost(r tablestore.Row) (models.Post, bool) {
	p := models.Post{
		ID:          cell(r, "id"),
		Title:       cell(r, "title"),
		Content:     r["content"],
		Author:      cell(r, "author"),
		AuthorID:    models.NormalizeEmployeeCode(r["author_id"]),
		Date:        cell(r, "date"),
		ImagePath:   cell(r, "image_path"),
		Designation: models.Designation(cell(r, "designation")),
		PostType:    models.PostType(cell(r, "post_type")),
	}
	if p.ID == "" {
		return p, false
	}
	if p.PostType != models.PostNotice {
		p.PostType = models.PostBlog
	}
	return p, true
}

func encodePost(p models.Post) tablestore.Row {
	return tablestore.Row{
		"id":          p.ID,
		"title":       p.Title,
		"content":     p.Content,
		"author":      p.Author,
		"author_id":   p.AuthorID,
		"date":        p.Date,
		"image_path":  p.ImagePath,
		"designation": string(p.Designation),
		"post_type":   string(p.PostType),
	}
}

// FindAll lists notices before blogs, newest first within each group.
func (r *PostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	posts, err := loadRows(ctx, r.store, tablestore.Blogs, decodePost)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		ni, nj := posts[i].PostType == models.PostNotice, posts[j].PostType == models.PostNotice
		if ni != nj {
			return ni
		}
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, p models.Post) error {
	if p.ID == "" || p.Title == "" {
		return fmt.Errorf("%w: post needs an id and a title", ErrInvalidRecord)
	}
	posts, err := loadRows(ctx, r.store, tablestore.Blogs, decodePost)
	if err != nil {
		return err
	}
	posts = append(posts, p)
	return r.save(ctx, posts)
}

// Delete removes the post and returns it so the caller can clean up its image.
func (r *PostRepository) Delete(ctx context.Context, id string) (*models.Post, error) {
	posts, err := loadRows(ctx, r.store, tablestore.Blogs, decodePost)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			removed := posts[i]
			posts = append(posts[:i], posts[i+1:]...)
			if err := r.save(ctx, posts); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPostNotFound, id)
}

func (r *PostRepository) save(ctx context.Context, posts []models.Post) error {
	ch, err := stageRows(ctx, r.store, tablestore.Blogs, postColumns, posts, decodePost, encodePost, nil)
	if err != nil {
		return err
	}
	if err := r.store.Save(ctx, ch.Name, ch.Table); err != nil {
		return fmt.Errorf("failed to save posts: %w", err)
	}
	return nil
}
