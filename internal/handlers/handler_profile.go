package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/dto"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles HTTP requests for the local user profile.
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func newProfileHandler(ps portssvc.ProfileSvcFacade) *profileHandler {
	return &profileHandler{profileService: ps}
}

// registerProfileRoutes registers the profile routes.
func registerProfileRoutes(rg *gin.RouterGroup, profileService portssvc.ProfileSvcFacade) {
	h := newProfileHandler(profileService)

	profile := rg.Group("/profile")
	{
		profile.GET("", h.getProfile)
		profile.POST("", h.saveProfile)
		profile.PUT("", h.updateProfile)
		profile.DELETE("", h.clearProfile)
	}
}

// getProfile godoc
// @Summary Get the profile
// @Tags profile
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} map[string]string "No profile"
// @Failure 500 {object} map[string]string "Failed to retrieve profile"
// @Router /profile [get]
func (h *profileHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve profile")
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// saveProfile godoc
// @Summary Create the profile
// @Description Replaces any stored profile. Currency and due days default to the configured values.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.SaveProfileRequest true "Profile details"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save profile"
// @Router /profile [post]
func (h *profileHandler) saveProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	profile, err := h.profileService.SaveProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to save profile")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProfileResponse(profile))
}

// updateProfile godoc
// @Summary Update the profile
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No profile"
// @Failure 500 {object} map[string]string "Failed to update profile"
// @Router /profile [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update profile")
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

// clearProfile godoc
// @Summary Clear the profile
// @Description Clients, invoices and payment methods are kept.
// @Tags profile
// @Success 204 "No Content"
// @Failure 500 {object} map[string]string "Failed to clear profile"
// @Router /profile [delete]
func (h *profileHandler) clearProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	if err := h.profileService.ClearProfile(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to clear profile")
		return
	}
	c.Status(http.StatusNoContent)
}
