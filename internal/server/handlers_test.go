package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filingworks/filing-converter/internal/common"
	"github.com/filingworks/filing-converter/internal/convert"
	"github.com/filingworks/filing-converter/internal/jurisdiction"
	"github.com/filingworks/filing-converter/internal/workbook"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	service := convert.NewService(jurisdiction.DefaultRegistry(), 0, nil)
	e := New(NewHandler(service, nil), common.ServerConfig{
		Addr:         ":0",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		MaxUploadMB:  8,
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func multipartUpload(t *testing.T, jurisdictionID, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("jurisdiction", jurisdictionID))
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestHandleConvertXLSX(t *testing.T) {
	srv := testServer(t)
	body, contentType := multipartUpload(t, "PA", "export.txt", []byte("A,B,C\nD,E\n"))

	resp, err := http.Post(srv.URL+"/api/v1/convert", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Conversion-ID"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "export.xlsx")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	tables, err := workbook.ReadXLSX(data)
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Len(t, tables[0].Records, 2)
}

func TestHandleConvertJSON(t *testing.T) {
	srv := testServer(t)
	body, contentType := multipartUpload(t, "PA", "export.txt", []byte("A,B\n"))

	resp, err := http.Post(srv.URL+"/api/v1/convert?format=json", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tables []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tables))
	require.Len(t, tables, 1)
	assert.Equal(t, "Records", tables[0]["name"])
}

func TestHandleConvertUnknownJurisdiction(t *testing.T) {
	srv := testServer(t)
	body, contentType := multipartUpload(t, "XX", "export.txt", []byte("A,B\n"))

	resp, err := http.Post(srv.URL+"/api/v1/convert", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleConvertEmptyDocumentIs422(t *testing.T) {
	srv := testServer(t)
	body, contentType := multipartUpload(t, "PA", "export.txt", nil)

	resp, err := http.Post(srv.URL+"/api/v1/convert", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHandleConvertUnsupportedExtension(t *testing.T) {
	srv := testServer(t)
	body, contentType := multipartUpload(t, "PA", "export.docx", []byte("A,B\n"))

	resp, err := http.Post(srv.URL+"/api/v1/convert", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandlePreview(t *testing.T) {
	srv := testServer(t)
	body, contentType := multipartUpload(t, "PA", "export.txt", []byte("A,B,C\nD,E,F\n"))

	resp, err := http.Post(srv.URL+"/api/v1/preview", contentType, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pr previewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pr))
	assert.Equal(t, "PA", pr.Jurisdiction)
	require.Len(t, pr.Sheets, 1)
	assert.Equal(t, 2, pr.Sheets[0].TotalRecords)
}

func TestHandleJurisdictions(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/v1/jurisdictions")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var jr jurisdictionsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jr))
	assert.Contains(t, jr.Jurisdictions, "AZ")
	assert.Contains(t, jr.Jurisdictions, "PA")
}
