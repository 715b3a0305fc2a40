package gateway

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/example/martadmin/pkg/api"
	"github.com/example/martadmin/pkg/listview"
	"github.com/gin-gonic/gin"
)

// handleList applies the request's query state to the controller, refreshes
// from the upstream, and renders the derived view and stats.
func handleList[T any](ctrl *listview.Controller[T], filters ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctrl.SetSearch(c.Query("search"))
		ctrl.SetSortDirection(listview.SortDirection(c.DefaultQuery("sort", string(listview.SortDesc))))
		for _, name := range filters {
			ctrl.SetFilter(name, c.Query(name))
		}
		if err := ctrl.Refresh(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":           ctrl.View(),
			"stats":           ctrl.Stats(),
			"lastRefreshedAt": ctrl.LastRefreshedAt(),
		})
	}
}

type statusRequest struct {
	IsActive bool `json:"isActive"`
}

// handleStatus binds the shared {isActive} toggle body.
func handleStatus(setStatus func(c *gin.Context, id string, active bool) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := setStatus(c, c.Param("id"), req.IsActive); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func handleDelete(remove func(c *gin.Context, id string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := remove(c, c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// uploadError marks a request body that could not be read as multipart;
// writeError renders it as a 400.
type uploadError struct {
	err error
}

func (e *uploadError) Error() string { return e.err.Error() }

func (e *uploadError) Unwrap() error { return e.err }

// fileFromForm reads one optional uploaded file into memory. An absent field
// (or a non-multipart body) is no upload; a body that fails to parse is an
// uploadError.
func fileFromForm(c *gin.Context, field string) (*api.FileUpload, error) {
	header, err := c.FormFile(field)
	switch {
	case err == nil:
		upload, readErr := readUpload(header)
		if readErr != nil {
			return nil, &uploadError{readErr}
		}
		return upload, nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil, nil
	default:
		return nil, &uploadError{err}
	}
}

func filesFromForm(c *gin.Context, field string) ([]api.FileUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, &uploadError{err}
	}
	headers := form.File[field]
	uploads := make([]api.FileUpload, 0, len(headers))
	for _, header := range headers {
		upload, err := readUpload(header)
		if err != nil {
			return nil, &uploadError{err}
		}
		uploads = append(uploads, *upload)
	}
	return uploads, nil
}

func readUpload(header *multipart.FileHeader) (*api.FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %s: %w", header.Filename, err)
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file %s: %w", header.Filename, err)
	}
	return &api.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func floatField(c *gin.Context, field string) float64 {
	val, err := strconv.ParseFloat(c.PostForm(field), 64)
	if err != nil {
		return 0
	}
	return val
}

func intField(c *gin.Context, field string) int {
	val, err := strconv.Atoi(c.PostForm(field))
	if err != nil {
		return 0
	}
	return val
}
