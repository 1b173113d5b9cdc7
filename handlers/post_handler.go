package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"Employee-Attendance-Portal/models"
	util "Employee-Attendance-Portal/pkg/utils"
	"Employee-Attendance-Portal/repository"
)

// PostHandler serves the blog and notice board.
type PostHandler struct {
	posts     *repository.PostRepository
	imagesDir string
	now       Clock
}

func NewPostHandler(posts *repository.PostRepository, imagesDir string, now Clock) *PostHandler {
	return &PostHandler{posts: posts, imagesDir: imagesDir, now: now}
}

// List godoc
// @Summary List Posts
// @Description Notices first, then blogs, newest first within each group
// @Tags Posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PostListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	posts, err := h.posts.FindAll(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(models.PostListResponse{Posts: posts, Total: len(posts)})
}

// Create godoc
// @Summary Create Post
// @Description Publishes a blog post, or a notice when the author is an admin. An image is optional.
// @Tags Posts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param content formData string true "Content"
// @Param post_type formData string false "Blog or Notice"
// @Param image formData file false "Image (JPG, PNG, GIF, max 5MB)"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 403 {object} models.ErrorResponse "Only admins can post notices"
// @Failure 500 {object} models.ErrorResponse
// @Router /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var payload models.PostCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	payload.Title = strings.TrimSpace(payload.Title)
	payload.Content = strings.TrimSpace(payload.Content)

	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	s := sessionOf(c)
	postType := models.PostBlog
	if payload.PostType == string(models.PostNotice) {
		if !s.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only admins can post notices"})
		}
		postType = models.PostNotice
	}

	post := models.Post{
		ID:          uuid.NewString(),
		Title:       payload.Title,
		Content:     payload.Content,
		Author:      s.Name,
		AuthorID:    s.EmployeeCode,
		Date:        h.now().Format(models.PostDateLayout),
		Designation: s.Designation,
		PostType:    postType,
	}

	if file, err := c.FormFile("image"); err == nil {
		allowedTypes := map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/gif":  true,
		}
		if !allowedTypes[file.Header.Get("Content-Type")] {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported image format. Only JPG, PNG and GIF are allowed."})
		}
		const maxFileSize = 5 * 1024 * 1024
		if file.Size > maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("Image is too large. Maximum is %d MB.", maxFileSize/1024/1024)})
		}
		if err := os.MkdirAll(h.imagesDir, 0o755); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save image."})
		}
		name := post.ID + strings.ToLower(filepath.Ext(file.Filename))
		if err := c.SaveFile(file, filepath.Join(h.imagesDir, name)); err != nil {
			log.Printf("Error saving post image: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save image."})
		}
		post.ImagePath = name
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.posts.Create(ctx, post); err != nil {
		if post.ImagePath != "" {
			os.Remove(filepath.Join(h.imagesDir, post.ImagePath))
		}
		log.Printf("Error creating post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create post"})
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// Delete godoc
// @Summary Delete Post
// @Description Deletes a post and its image
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	post, err := h.posts.Delete(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "post not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if post.ImagePath != "" {
		if err := os.Remove(filepath.Join(h.imagesDir, filepath.Base(post.ImagePath))); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("Warning: failed to remove image of post %s: %v", post.ID, err)
		}
	}
	return c.JSON(models.MessageResponse{Message: "Post deleted"})
}
