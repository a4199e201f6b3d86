package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/centres"
	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/export"
)

const (
	msgPostcodeRequired = "Postcode is required"
	msgInvalidPostcode  = "Invalid postcode"
	msgSearchFailed     = "failed to search centres"
)

// ErrorResponse is the body of every non-200 response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid postcode"`
}

// SearchCentresInput defines the query parameters for the search endpoints
type SearchCentresInput struct {
	Postcode string `form:"postcode"` // UK postcode, passed on unmodified
	Radius   string `form:"radius"`   // Search radius in miles
}

// handleSearchCentres godoc
// @Summary Find nearby test centres
// @Description Resolve a UK postcode and return the closest practical driving test centres within the radius, nearest first (at most 20)
// @Tags centres
// @Produce json
// @Param postcode query string true "UK postcode" example(SW1A 1AA)
// @Param radius query int false "Search radius in miles" default(50)
// @Success 200 {object} centres.SearchResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/search [get]
func (app *App) handleSearchCentres(c *gin.Context) {
	result, ok := app.search(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleExportCentres godoc
// @Summary Export nearby test centres
// @Description Run the same search as /api/search and download the centres as an Excel workbook
// @Tags centres
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce json
// @Param postcode query string true "UK postcode" example(SW1A 1AA)
// @Param radius query int false "Search radius in miles" default(50)
// @Success 200 {file} file "XLSX workbook"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/search/export [get]
func (app *App) handleExportCentres(c *gin.Context) {
	result, ok := app.search(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, result); err != nil {
		app.logger.Error("failed to render workbook",
			"postcode", result.UserPostcode,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to export centres"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename(result)))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// search binds the query, runs the search and writes the error response
// itself when it fails
func (app *App) search(c *gin.Context) (*centres.SearchResult, bool) {
	var input SearchCentresInput

	// Bind query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return nil, false
	}

	if input.Postcode == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgPostcodeRequired})
		return nil, false
	}

	// Delegate to business layer
	result, err := app.searchService.Search(c.Request.Context(), centres.SearchInput{
		Postcode: input.Postcode,
		Radius:   centres.ParseRadius(input.Radius, app.defaultRadius()),
	})
	if err != nil {
		switch {
		case errors.Is(err, centres.ErrPostcodeRequired):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgPostcodeRequired})
		case errors.Is(err, centres.ErrInvalidPostcode):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidPostcode})
		default:
			// Other errors are internal server errors
			app.logger.Error("failed to search centres",
				"postcode", input.Postcode,
				"error", err,
			)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgSearchFailed})
		}
		return nil, false
	}

	return result, true
}

func (app *App) defaultRadius() int {
	if app.cfg.Search.DefaultRadius > 0 {
		return app.cfg.Search.DefaultRadius
	}
	return centres.DefaultRadius
}
