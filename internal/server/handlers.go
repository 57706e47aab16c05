package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/filingworks/filing-converter/constants"
	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/filing"
	"github.com/filingworks/filing-converter/internal/workbook"
)

const conversionIDHeader = "X-Conversion-ID"

type errorResponse struct {
	Error string `json:"error"`
}

type jurisdictionsResponse struct {
	Jurisdictions []string `json:"jurisdictions"`
}

type previewResponse struct {
	ConversionID string                  `json:"conversion_id"`
	Jurisdiction string                  `json:"jurisdiction"`
	Pages        int                     `json:"pages"`
	Warnings     []string                `json:"warnings,omitempty"`
	Sheets       []workbook.SheetPreview `json:"sheets"`
}

func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) HandleJurisdictions(c echo.Context) error {
	return c.JSON(http.StatusOK, jurisdictionsResponse{Jurisdictions: h.service.Registry.IDs()})
}

// HandleConvert accepts a multipart filing upload and returns the assembled
// workbook as a downloadable attachment. The "format" query parameter selects
// the serialization: xlsx (default), csv (first table only), or json.
func (h *Handler) HandleConvert(c echo.Context) error {
	doc, jurisdictionID, err := h.readUpload(c)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.service.Convert(c.Request().Context(), jurisdictionID, *doc)
	if err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set(conversionIDHeader, res.ConversionID.String())

	base := strings.TrimSuffix(doc.Name, filepath.Ext(doc.Name))
	switch strings.ToLower(c.QueryParam("format")) {
	case "", "xlsx":
		data, err := workbook.WriteXLSX(res.Workbook)
		if err != nil {
			return writeError(c, err)
		}
		return writeAttachment(c, base+".xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "csv":
		if len(res.Workbook.Tables) == 0 {
			return writeError(c, common.NewAppError("CONVERT_EMPTY", "no tables produced", common.ErrInvalidInput))
		}
		data, err := workbook.WriteCSV(res.Workbook.Tables[0])
		if err != nil {
			return writeError(c, err)
		}
		return writeAttachment(c, base+".csv", "text/csv", data)
	case "json":
		data, err := workbook.WriteJSON(res.Workbook)
		if err != nil {
			return writeError(c, err)
		}
		return writeAttachment(c, base+".json", echo.MIMEApplicationJSON, data)
	default:
		return writeError(c, common.NewAppError("CONVERT_FORMAT",
			fmt.Sprintf("unknown output format %q", c.QueryParam("format")), common.ErrInvalidInput))
	}
}

// HandlePreview converts the upload and returns the first rows of each table
// as JSON instead of a download.
func (h *Handler) HandlePreview(c echo.Context) error {
	doc, jurisdictionID, err := h.readUpload(c)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.service.Convert(c.Request().Context(), jurisdictionID, *doc)
	if err != nil {
		return writeError(c, err)
	}
	c.Response().Header().Set(conversionIDHeader, res.ConversionID.String())

	return c.JSON(http.StatusOK, previewResponse{
		ConversionID: res.ConversionID.String(),
		Jurisdiction: res.Jurisdiction,
		Pages:        res.Pages,
		Warnings:     res.Warnings,
		Sheets:       workbook.Preview(res.Workbook),
	})
}

// readUpload pulls the file and jurisdiction out of a multipart form and
// infers the document format from the file extension.
func (h *Handler) readUpload(c echo.Context) (*filing.Document, string, error) {
	jurisdictionID := c.FormValue("jurisdiction")
	if jurisdictionID == "" {
		return nil, "", common.NewAppError("UPLOAD_JURISDICTION", "jurisdiction form field is required", common.ErrInvalidInput)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return nil, "", common.NewAppError("UPLOAD_FILE", "file form field is required", common.ErrInvalidInput)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, "", common.WrapError(err, "open upload")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", common.WrapError(err, "read upload")
	}

	format := constants.MapExtToFormat(filepath.Ext(fh.Filename))
	if format == "" {
		return nil, "", common.NewAppError("UPLOAD_EXT",
			fmt.Sprintf("unsupported file extension %q", filepath.Ext(fh.Filename)),
			common.ErrUnsupportedFormat)
	}

	return &filing.Document{
		Name:   fh.Filename,
		Format: filing.Format(format),
		Data:   data,
	}, jurisdictionID, nil
}

func writeAttachment(c echo.Context, filename, contentType string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, contentType, data)
}

// writeError maps pipeline errors onto HTTP statuses. Extraction failures are
// the caller's document, not our bug, so they come back as 422.
func writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, common.ErrExtraction):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrInvalidInput),
		errors.Is(err, common.ErrUnsupportedFormat),
		errors.Is(err, common.ErrUnknownJurisdiction):
		status = http.StatusBadRequest
	}
	return c.JSON(status, errorResponse{Error: err.Error()})
}
