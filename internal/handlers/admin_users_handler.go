package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/blackline-studio/tattoo-scheduler/internal/audit"
	"github.com/blackline-studio/tattoo-scheduler/internal/httperr"
	"github.com/blackline-studio/tattoo-scheduler/internal/httpresp"
	"github.com/blackline-studio/tattoo-scheduler/internal/middleware"
	"github.com/blackline-studio/tattoo-scheduler/internal/models"
	"github.com/blackline-studio/tattoo-scheduler/internal/validators"
)

var assignableRoles = map[string]bool{
	models.RoleAdmin:  true,
	models.RoleArtist: true,
	models.RoleUser:   true,
}

// AdminUsersHandler is the back-office user management: create staff
// accounts, grant roles, deactivate, reset passwords. Superadmin is
// never assignable through the API.
type AdminUsersHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminUsersHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *AdminUsersHandler {
	return &AdminUsersHandler{db: db, audit: dispatcher}
}

type AdminUserDTO struct {
	models.Profile
	Roles []string `json:"roles"`
}

func (h *AdminUsersHandler) List(c *gin.Context) {
	var profiles []models.Profile
	if err := h.db.Order("created_at ASC").Find(&profiles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Error al listar usuarios.")
		return
	}

	var allRoles []models.UserRole
	if err := h.db.Find(&allRoles).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Error al listar usuarios.")
		return
	}

	rolesByUser := make(map[string][]string, len(profiles))
	for _, r := range allRoles {
		rolesByUser[r.UserID] = append(rolesByUser[r.UserID], r.Role)
	}

	out := make([]AdminUserDTO, 0, len(profiles))
	for _, p := range profiles {
		roles := rolesByUser[p.ID]
		if roles == nil {
			roles = []string{}
		}
		out = append(out, AdminUserDTO{Profile: p, Roles: roles})
	}

	httpresp.List(c, out)
}

type AdminCreateUserRequest struct {
	DisplayName string   `json:"display_name" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=6"`
	Phone       string   `json:"phone"`
	Roles       []string `json:"roles"`
}

func (h *AdminUsersHandler) Create(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)

	var req AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	for _, role := range req.Roles {
		if !assignableRoles[role] {
			httperr.BadRequest(c, "invalid_role", "Rol no asignable.")
			return
		}
	}

	var count int64
	h.db.Model(&models.Profile{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Ya existe un usuario con ese correo.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	profile := models.Profile{
		DisplayName:  req.DisplayName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		IsActive:     true,
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{models.RoleUser}
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		for _, role := range roles {
			if err := tx.Create(&models.UserRole{UserID: profile.ID, Role: role}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_user", "Error al crear el usuario.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_created",
		Entity:   "profile",
		EntityID: &profile.ID,
		Metadata: map[string]any{"roles": roles},
	})

	httpresp.Created(c, AdminUserDTO{Profile: profile, Roles: roles})
}

type AdminUpdateUserRequest struct {
	DisplayName *string   `json:"display_name"`
	Phone       *string   `json:"phone"`
	IsActive    *bool     `json:"is_active"`
	Roles       *[]string `json:"roles"`
}

// Update edits profile basics, active flag and the role set. Roles are
// replaced atomically; superadmin rows are preserved untouched.
func (h *AdminUsersHandler) Update(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Roles != nil {
		for _, role := range *req.Roles {
			if !assignableRoles[role] {
				httperr.BadRequest(c, "invalid_role", "Rol no asignable.")
				return
			}
		}
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		if req.Roles != nil {
			if err := tx.
				Where("user_id = ? AND role <> ?", profile.ID, models.RoleSuperadmin).
				Delete(&models.UserRole{}).Error; err != nil {
				return err
			}
			for _, role := range *req.Roles {
				if err := tx.Create(&models.UserRole{UserID: profile.ID, Role: role}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_user", "Error al guardar el usuario.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_updated",
		Entity:   "profile",
		EntityID: &profile.ID,
	})

	var roles []string
	h.db.Model(&models.UserRole{}).Where("user_id = ?", profile.ID).Pluck("role", &roles)
	if roles == nil {
		roles = []string{}
	}

	httpresp.OK(c, AdminUserDTO{Profile: profile, Roles: roles})
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

func (h *AdminUsersHandler) ResetPassword(c *gin.Context) {
	adminID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	profile.PasswordHash = string(hashed)
	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Error al guardar el usuario.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_password_reset",
		Entity:   "profile",
		EntityID: &profile.ID,
	})

	httpresp.OK(c, gin.H{"reset": true})
}
