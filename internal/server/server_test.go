package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/excelviz-go/internal/config"
	"github.com/ukaji3/excelviz-go/internal/session"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/ingest"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/models"
	"github.com/ukaji3/excelviz-go/pkg/excelviz/render"
)

func newTestServer(t *testing.T) (*Server, *session.Store) {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "8080", CORSOrigins: []string{"http://localhost:3000"}},
		Analysis: config.AnalysisConfig{PreviewRows: 2, MaxSessions: 10},
	}
	store := session.NewStore(cfg.Analysis.MaxSessions)
	return New(cfg, store), store
}

func salesWorkbook(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Month", "Sales"},
		{"Jan", 10},
		{"Feb", 20},
		{"Mar", 15},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func salesDataset() *models.Dataset {
	return models.NewDataset([]string{"Month", "Sales"}, []models.Row{
		{"Month": "Jan", "Sales": 10.0},
		{"Month": "Feb", "Sales": 20.0},
		{"Month": "Mar", "Sales": 15.0},
	})
}

func uploadRequest(t *testing.T, name, contentType string, data []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/files", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func do(srv http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func chartRequestBody(t *testing.T, body chartRequest) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUpload(t *testing.T) {
	srv, store := newTestServer(t)

	rec := do(srv, uploadRequest(t, "sales.xlsx", ingest.MIMETypeXLSX, salesWorkbook(t)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "sales.xlsx", got.File.Name)
	assert.Equal(t, ingest.MIMETypeXLSX, got.File.MIMEType)
	assert.Equal(t, []string{"Month", "Sales"}, got.Columns)
	assert.Equal(t, 3, got.RowCount)
	assert.Len(t, got.Preview.Rows, 2)
	assert.Equal(t, 3, got.Preview.TotalRows)
	assert.Equal(t, 1, store.Len())
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		data        func(t *testing.T) []byte
		wantStatus  int
	}{
		{
			name:        "unsupported type",
			contentType: "text/csv",
			data:        func(t *testing.T) []byte { return []byte("a,b\n1,2\n") },
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:        "generic octet stream",
			contentType: "application/octet-stream",
			data:        salesWorkbook,
			wantStatus:  http.StatusUnsupportedMediaType,
		},
		{
			name:        "corrupt workbook",
			contentType: ingest.MIMETypeXLSX,
			data:        func(t *testing.T) []byte { return []byte("not a zip archive") },
			wantStatus:  http.StatusUnprocessableEntity,
		},
		{
			name:        "empty workbook",
			contentType: ingest.MIMETypeXLSX,
			data: func(t *testing.T) []byte {
				f := excelize.NewFile()
				defer f.Close()
				buf, err := f.WriteToBuffer()
				require.NoError(t, err)
				return buf.Bytes()
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, store := newTestServer(t)

			rec := do(srv, uploadRequest(t, "upload.xlsx", tt.contentType, tt.data(t)))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestUpload_MissingFile(t *testing.T) {
	srv, _ := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("other", "value"))
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/files", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := do(srv, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodPost, "/api/files", strings.NewReader("plain")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSession_GetAndDelete(t *testing.T) {
	srv, store := newTestServer(t)
	sess := store.Create(models.FileInfo{Name: "sales.xlsx"}, salesDataset())

	rec := do(srv, httptest.NewRequest(http.MethodGet, "/api/sessions/"+sess.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, 3, got.RowCount)
	assert.Empty(t, got.Charts)

	rec = do(srv, httptest.NewRequest(http.MethodDelete, "/api/sessions/"+sess.ID, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/sessions/"+sess.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodDelete, "/api/sessions/"+sess.ID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelectAxes(t *testing.T) {
	srv, store := newTestServer(t)
	sess := store.Create(models.FileInfo{Name: "sales.xlsx"}, salesDataset())
	url := "/api/sessions/" + sess.ID + "/selection"

	rec := do(srv, httptest.NewRequest(http.MethodPut, url, strings.NewReader(`{"x_axis":"Month","y_axis":"Sales"}`)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, &session.Selection{XAxis: "Month", YAxis: "Sales"}, got.Selection)

	rec = do(srv, httptest.NewRequest(http.MethodPut, url, strings.NewReader(`{"x_axis":"Month","y_axis":"Profit"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodPut, url, strings.NewReader(`{"x_axis":`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	stored, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, &session.Selection{XAxis: "Month", YAxis: "Sales"}, stored.Selection)

	rec = do(srv, httptest.NewRequest(http.MethodPut, "/api/sessions/missing/selection", strings.NewReader(`{"x_axis":"Month","y_axis":"Sales"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateChart(t *testing.T) {
	srv, store := newTestServer(t)
	sess := store.Create(models.FileInfo{Name: "sales.xlsx"}, salesDataset())

	req := httptest.NewRequest(http.MethodPost, "/api/sessions/"+sess.ID+"/charts",
		chartRequestBody(t, chartRequest{Kind: "bar", XAxis: "Month", YAxis: "Sales"}))
	rec := do(srv, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got chartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 0, got.Index)
	assert.Equal(t, models.KindBar, got.Kind)
	require.NotNil(t, got.Description)
	assert.Equal(t, []float64{10, 20, 15}, got.Description.Series)
	assert.Equal(t, "Sales by Month", got.Description.Title)
	assert.Nil(t, got.Scene)

	stored, err := store.Get(sess.ID)
	require.NoError(t, err)
	require.Len(t, stored.Charts, 1)
	assert.Equal(t, &session.Selection{XAxis: "Month", YAxis: "Sales"}, stored.Selection)
}

func TestCreateChart_DefaultsToLine(t *testing.T) {
	srv, store := newTestServer(t)
	sess := store.Create(models.FileInfo{Name: "sales.xlsx"}, salesDataset())

	rec := do(srv, httptest.NewRequest(http.MethodPost, "/api/sessions/"+sess.ID+"/charts",
		chartRequestBody(t, chartRequest{XAxis: "Month", YAxis: "Sales"})))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got chartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.KindLine, got.Kind)
}

func TestCreateChart_ThreeD(t *testing.T) {
	srv, store := newTestServer(t)
	sess := store.Create(models.FileInfo{Name: "sales.xlsx"}, salesDataset())

	rec := do(srv, httptest.NewRequest(http.MethodPost, "/api/sessions/"+sess.ID+"/charts",
		chartRequestBody(t, chartRequest{XAxis: "Month", YAxis: "Sales", Is3D: true})))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got chartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.ThreeD)
	assert.Nil(t, got.Description)
	require.NotNil(t, got.Scene)
	require.Len(t, got.Scene.Bars, 3)
	assert.InDelta(t, 5.0, got.Scene.Bars[1].Height, 1e-9)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/sessions/"+sess.ID+"/charts/0/image", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateChart_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"unknown column", `{"kind":"line","x_axis":"Month","y_axis":"Profit"}`, http.StatusBadRequest},
		{"unknown kind", `{"kind":"radar","x_axis":"Month","y_axis":"Sales"}`, http.StatusBadRequest},
		{"invalid json", `{"kind":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, store := newTestServer(t)
			sess := store.Create(models.FileInfo{Name: "sales.xlsx"}, salesDataset())

			rec := do(srv, httptest.NewRequest(http.MethodPost, "/api/sessions/"+sess.ID+"/charts", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			charts, err := store.Charts(sess.ID)
			require.NoError(t, err)
			assert.Empty(t, charts)
		})
	}

	srv, _ := newTestServer(t)
	rec := do(srv, httptest.NewRequest(http.MethodPost, "/api/sessions/missing/charts",
		chartRequestBody(t, chartRequest{XAxis: "Month", YAxis: "Sales"})))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChartImage(t *testing.T) {
	srv, store := newTestServer(t)
	sess := store.Create(models.FileInfo{Name: "sales.xlsx"}, salesDataset())

	rec := do(srv, httptest.NewRequest(http.MethodPost, "/api/sessions/"+sess.ID+"/charts",
		chartRequestBody(t, chartRequest{Kind: "pie", XAxis: "Month", YAxis: "Sales"})))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	base := "/api/sessions/" + sess.ID + "/charts/0/image"

	rec = do(srv, httptest.NewRequest(http.MethodGet, base+"?width=320&height=240", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, render.FormatPNG.ContentType(), rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))

	rec = do(srv, httptest.NewRequest(http.MethodGet, base+"?format=svg", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "<svg")

	rec = do(srv, httptest.NewRequest(http.MethodGet, base+"?format=gif", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/sessions/"+sess.ID+"/charts/7/image", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(srv, httptest.NewRequest(http.MethodGet, "/api/sessions/"+sess.ID+"/charts/first/image", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ingest.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{ingest.ErrUnsupportedType, http.StatusUnsupportedMediaType},
		{ingest.ErrEmptyWorkbook, http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", ingest.ErrDecode), http.StatusUnprocessableEntity},
		{ingest.ErrRead, http.StatusBadRequest},
		{session.ErrNotFound, http.StatusNotFound},
		{render.ErrNothingToRender, http.StatusUnprocessableEntity},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
