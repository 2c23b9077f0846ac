package models

import (
	"net/url"
	"regexp"
)

// ValidationError is a client-facing rejection; its text is the response
// message verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ════════════════════════════════════════════════════════════
// Admin
// ════════════════════════════════════════════════════════════

// AddAdminRequest is the validated input for creating an admin. HasImage
// reports whether the multipart image part was supplied; the staged file
// itself stays with the handler.
type AddAdminRequest struct {
	Name     string
	Email    string
	Password string
	HasImage bool
}

func (r AddAdminRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Password == "" {
		return ValidationError("Name, email and password are required")
	}
	if !r.HasImage {
		return ValidationError("Admin image is required")
	}
	if len(r.Name) < 3 {
		return ValidationError("Name must be at least 3 characters long")
	}
	if !emailRegex.MatchString(r.Email) {
		return ValidationError("Invalid email format")
	}
	if len(r.Password) < 6 {
		return ValidationError("Password must be at least 6 characters long")
	}
	return nil
}

// UpdateAdminRequest carries only supplied fields; empty strings mean
// "leave unchanged" and are not validated.
type UpdateAdminRequest struct {
	AdminID  string
	Name     string
	Email    string
	Password string
	HasImage bool
}

func (r UpdateAdminRequest) Validate() error {
	if r.AdminID == "" {
		return ValidationError("Admin ID is required")
	}
	if r.Name != "" && len(r.Name) < 3 {
		return ValidationError("Name must be at least 3 characters long")
	}
	if r.Email != "" && !emailRegex.MatchString(r.Email) {
		return ValidationError("Invalid email format")
	}
	if r.Password != "" && len(r.Password) < 6 {
		return ValidationError("Password must be at least 6 characters long")
	}
	return nil
}

// AdminLoginRequest is the JSON login payload.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r AdminLoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return ValidationError("Email and password are required")
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Gallery images
// ════════════════════════════════════════════════════════════

type AddImageRequest struct {
	Name     string
	Category string
	HasImage bool
}

func (r AddImageRequest) Validate() error {
	if r.Name == "" || r.Category == "" {
		return ValidationError("Name and category is required")
	}
	if !r.HasImage {
		return ValidationError("Image is required")
	}
	if len(r.Name) < 3 {
		return ValidationError("Name must be at least 3 characters long")
	}
	return nil
}

type AddEditImageRequest struct {
	Name      string
	Category  string
	HasBefore bool
	HasAfter  bool
}

func (r AddEditImageRequest) Validate() error {
	if r.Name == "" || r.Category == "" {
		return ValidationError("Name and category are required")
	}
	if !r.HasBefore || !r.HasAfter {
		return ValidationError("Both before and after images are required")
	}
	if len(r.Name) < 3 {
		return ValidationError("Name must be at least 3 characters long")
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Videos
// ════════════════════════════════════════════════════════════

type AddVideoRequest struct {
	Name     string `json:"name"`
	Link     string `json:"link"`
	Category string `json:"category"`
}

func (r AddVideoRequest) Validate() error {
	if r.Name == "" || r.Link == "" || r.Category == "" {
		return ValidationError("Name, video link and category are required")
	}
	if len(r.Name) < 3 {
		return ValidationError("Video name must be at least 3 characters long")
	}
	u, err := url.Parse(r.Link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ValidationError("Invalid video link")
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Reviews
// ════════════════════════════════════════════════════════════

type AddReviewRequest struct {
	Name     string
	Rating   int
	Review   string
	HasImage bool
}

func (r AddReviewRequest) Validate() error {
	if r.Name == "" || r.Rating == 0 || r.Review == "" {
		return ValidationError("Name, rating and review are required")
	}
	if !r.HasImage {
		return ValidationError("Review image is required")
	}
	if len(r.Name) < 3 {
		return ValidationError("Name must be at least 3 characters long")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return ValidationError("Rating must be between 1 and 5")
	}
	return nil
}

// ReviewStatusRequest toggles testimonial approval.
type ReviewStatusRequest struct {
	ID     string `json:"id"`
	Status *bool  `json:"status"`
}

func (r ReviewStatusRequest) Validate() error {
	if r.ID == "" {
		return ValidationError("Review id is required")
	}
	if r.Status == nil {
		return ValidationError("Status is required")
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Blogs
// ════════════════════════════════════════════════════════════

type AddBlogRequest struct {
	Title    string
	Category string
	Content  string
	HasImage bool
}

func (r AddBlogRequest) Validate() error {
	if r.Title == "" || r.Category == "" || r.Content == "" {
		return ValidationError("Title, category and content are required")
	}
	if !r.HasImage {
		return ValidationError("Blog image is required")
	}
	if len(r.Title) < 3 {
		return ValidationError("Title must be at least 3 characters long")
	}
	return nil
}

// ════════════════════════════════════════════════════════════
// Contacts
// ════════════════════════════════════════════════════════════

type AddContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (r AddContactRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Message == "" {
		return ValidationError("Name, email and message are required")
	}
	if !emailRegex.MatchString(r.Email) {
		return ValidationError("Invalid email format")
	}
	return nil
}

// DeleteRequest is the shared {id} body for all delete endpoints.
type DeleteRequest struct {
	ID string `json:"id"`
}
