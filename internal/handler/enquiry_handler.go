package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"bhavesh/backend/internal/model"
	"bhavesh/backend/internal/ratelimit"
	"bhavesh/backend/internal/service"
)

type EnquiryHandler struct {
	enquiries service.EnquiryService
}

type enquiryRequest struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Quantity        string   `json:"quantity"`
	Description     string   `json:"description"`
	RequirementType string   `json:"requirementType"`
	FileNames       []string `json:"fileNames"`
	FileURLs        []string `json:"fileUrls"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type notesRequest struct {
	InternalNotes string `json:"internalNotes"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Ref     string `json:"ref"`
}

type enquiryResponse struct {
	ID              int64    `json:"id"`
	EnquiryNumber   string   `json:"enquiryNumber"`
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           *string  `json:"email,omitempty"`
	Quantity        *string  `json:"quantity,omitempty"`
	Description     string   `json:"description"`
	RequirementType string   `json:"requirementType"`
	FileNames       []string `json:"fileNames"`
	FileURLs        []string `json:"fileUrls"`
	InternalNotes   *string  `json:"internalNotes,omitempty"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

func NewEnquiryHandler(enquiries service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

// RegisterPublicRoutes mounts the unauthenticated submission endpoint.
func (h *EnquiryHandler) RegisterPublicRoutes(g *echo.Group) {
	g.POST("/enquiries", h.Submit)
}

// RegisterAdminRoutes mounts the back-office endpoints. The group is
// expected to carry the auth middleware.
func (h *EnquiryHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/enquiries", h.List)
	g.GET("/enquiries/:id", h.Get)
	g.PATCH("/enquiries/:id/status", h.UpdateStatus)
	g.PATCH("/enquiries/:id/notes", h.UpdateNotes)
	g.DELETE("/enquiries/:id", h.Delete)
}

// Submit accepts a new enquiry, as JSON or as a multipart form with
// attachments. The handler only parses the request; throttling,
// validation and attachment storage all happen inside the service so
// nothing is written for a rejected submission.
func (h *EnquiryHandler) Submit(c echo.Context) error {
	var req enquiryRequest
	var attachments []service.Upload

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid request")
		}
		req = enquiryFromForm(form)

		for _, header := range form.File["files"] {
			src, err := header.Open()
			if err != nil {
				return Error(c, http.StatusBadRequest, "invalid request")
			}
			defer src.Close()
			attachments = append(attachments, service.Upload{
				Filename:    header.Filename,
				ContentType: header.Header.Get(echo.HeaderContentType),
				Size:        header.Size,
				Reader:      src,
			})
		}
	} else if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	enquiry, err := h.enquiries.Submit(c.Request().Context(), ratelimit.ClientID(c.Request()), service.EnquiryInput{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		Quantity:        req.Quantity,
		Description:     req.Description,
		RequirementType: req.RequirementType,
		FileNames:       req.FileNames,
		FileURLs:        req.FileURLs,
	}, attachments)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, submitResponse{Success: true, Ref: enquiry.EnquiryNumber})
}

func (h *EnquiryHandler) List(c echo.Context) error {
	enquiries, err := h.enquiries.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]enquiryResponse, 0, len(enquiries))
	for _, enquiry := range enquiries {
		response = append(response, toEnquiryResponse(enquiry))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *EnquiryHandler) Get(c echo.Context) error {
	id, err := enquiryID(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	enquiry, err := h.enquiries.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEnquiryResponse(enquiry))
}

func (h *EnquiryHandler) UpdateStatus(c echo.Context) error {
	id, err := enquiryID(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	enquiry, err := h.enquiries.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEnquiryResponse(enquiry))
}

func (h *EnquiryHandler) UpdateNotes(c echo.Context) error {
	id, err := enquiryID(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	var req notesRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	enquiry, err := h.enquiries.UpdateNotes(c.Request().Context(), id, req.InternalNotes)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toEnquiryResponse(enquiry))
}

func (h *EnquiryHandler) Delete(c echo.Context) error {
	id, err := enquiryID(c)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if err := h.enquiries.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func enquiryID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func enquiryFromForm(form *multipart.Form) enquiryRequest {
	value := func(name string) string {
		if values := form.Value[name]; len(values) > 0 {
			return values[0]
		}
		return ""
	}
	return enquiryRequest{
		Name:            value("name"),
		Phone:           value("phone"),
		Email:           value("email"),
		Quantity:        value("quantity"),
		Description:     value("description"),
		RequirementType: value("requirementType"),
	}
}

func toEnquiryResponse(enquiry model.Enquiry) enquiryResponse {
	return enquiryResponse{
		ID:              enquiry.ID,
		EnquiryNumber:   enquiry.EnquiryNumber,
		Name:            enquiry.Name,
		Phone:           enquiry.Phone,
		Email:           enquiry.Email,
		Quantity:        enquiry.Quantity,
		Description:     enquiry.Description,
		RequirementType: enquiry.RequirementType,
		FileNames:       enquiry.FileNames,
		FileURLs:        enquiry.FileURLs,
		InternalNotes:   enquiry.InternalNotes,
		Status:          string(enquiry.Status),
		CreatedAt:       enquiry.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       enquiry.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
