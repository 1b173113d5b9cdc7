package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/repository"
)

var photoExtensions = []string{".jpg", ".jpeg", ".png"}

type UserHandler struct {
	employees *repository.EmployeeRepository
	photosDir string
}

func NewUserHandler(employees *repository.EmployeeRepository, photosDir string) *UserHandler {
	return &UserHandler{employees: employees, photosDir: photosDir}
}

// findPhoto returns the stored photo path for code, or "".
// photoName reports whether code can name a file directly under the photos directory.
func photoName(code string) bool {
	return code != "" && code != "." && code != ".." && filepath.Base(code) == code && !strings.ContainsRune(code, '\\')
}

func (h *UserHandler) findPhoto(code string) string {
	for _, ext := range photoExtensions {
		p := filepath.Join(h.photosDir, code+ext)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Me godoc
// @Summary My Profile
// @Description Returns the logged-in employee's profile
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ProfileResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	emp, err := h.employees.FindByCode(ctx, sessionOf(c).EmployeeCode)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to get employee: %v", err)})
	}
	if emp == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "employee not found"})
	}

	resp := models.ProfileResponse{Employee: *emp}
	if h.findPhoto(emp.EmployeeCode) != "" {
		resp.PhotoURL = fmt.Sprintf("/api/v1/users/%s/photo", emp.EmployeeCode)
	}
	return c.JSON(resp)
}

// UploadPhoto godoc
// @Summary Upload Profile Photo
// @Description Uploads the logged-in employee's photo. A photo stored under another extension is removed.
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Photo (JPG or PNG, max 5MB)"
// @Success 200 {object} object{message=string,photo_url=string}
// @Failure 400 {object} models.ErrorResponse "Invalid file format, file size, or no file uploaded"
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /users/me/photo [post]
func (h *UserHandler) UploadPhoto(c *fiber.Ctx) error {
	code := sessionOf(c).EmployeeCode
	if !photoName(code) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee code"})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No photo was uploaded."})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
	}
	validExt := false
	for _, e := range photoExtensions {
		validExt = validExt || e == ext
	}
	if !validExt || !allowedTypes[file.Header.Get("Content-Type")] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported file format. Only JPG and PNG are allowed."})
	}

	const maxFileSize = 5 * 1024 * 1024
	if file.Size > maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fmt.Sprintf("File is too large. Maximum is %d MB.", maxFileSize/1024/1024)})
	}

	if err := os.MkdirAll(h.photosDir, 0o755); err != nil {
		log.Printf("Error creating photo directory: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save photo."})
	}
	for _, e := range photoExtensions {
		if e != ext {
			os.Remove(filepath.Join(h.photosDir, code+e))
		}
	}

	if err := c.SaveFile(file, filepath.Join(h.photosDir, code+ext)); err != nil {
		log.Printf("Error saving photo for %s: %v", code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save photo."})
	}

	return c.JSON(fiber.Map{
		"message":   "Photo uploaded successfully.",
		"photo_url": fmt.Sprintf("/api/v1/users/%s/photo", code),
	})
}

// GetPhoto godoc
// @Summary Get Profile Photo
// @Tags Users
// @Produce image/jpeg,image/png
// @Security BearerAuth
// @Param code path string true "Employee code"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{code}/photo [get]
func (h *UserHandler) GetPhoto(c *fiber.Ctx) error {
	code := models.NormalizeEmployeeCode(c.Params("code"))
	if !photoName(code) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid employee code"})
	}
	p := h.findPhoto(code)
	if p == "" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "photo not found"})
	}
	return c.SendFile(p)
}

// Badge godoc
// @Summary Employee Badge
// @Description Returns a QR code PNG encoding the employee code. Employees may only fetch their own badge.
// @Tags Users
// @Produce image/png
// @Security BearerAuth
// @Param code path string true "Employee code"
// @Success 200 {file} binary
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{code}/badge [get]
func (h *UserHandler) Badge(c *fiber.Ctx) error {
	s := sessionOf(c)
	code := models.NormalizeEmployeeCode(c.Params("code"))
	if !s.IsAdmin() && code != s.EmployeeCode {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You can only view your own badge."})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	emp, err := h.employees.FindByCode(ctx, code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to read employees"})
	}
	if emp == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "employee not found"})
	}

	png, err := qrcode.Encode(emp.EmployeeCode, qrcode.Medium, 256)
	if err != nil {
		log.Printf("Error encoding badge for %s: %v", code, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate badge"})
	}
	c.Type("png")
	return c.Send(png)
}
