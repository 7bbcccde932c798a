// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quote-keeper/internal/adapter"
	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/internal/mock"
	"github.com/MKhiriev/go-quote-keeper/internal/presenter"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/store"
	"github.com/MKhiriev/go-quote-keeper/internal/validators"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type handlerFixture struct {
	router   http.Handler
	quotes   *mock.MockQuoteService
	catalog  *mock.MockCatalog
	sync     *mock.MockSyncService
	transfer *mock.MockTransferService
	appInfo  *mock.MockAppInfoService
	registry *prometheus.Registry
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		quotes:   mock.NewMockQuoteService(ctrl),
		catalog:  mock.NewMockCatalog(ctrl),
		sync:     mock.NewMockSyncService(ctrl),
		transfer: mock.NewMockTransferService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		registry: prometheus.NewRegistry(),
	}

	services := &service.Services{
		QuoteService:    f.quotes,
		Catalog:         f.catalog,
		SyncService:     f.sync,
		TransferService: f.transfer,
		Metrics:         service.NewMetrics(f.registry),
	}

	f.router = NewHandler(services, f.appInfo, f.registry, logger.Nop()).Init()
	return f
}

func (f *handlerFixture) do(method, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

// ── Quotes ───────────────────────────────────────────────────────────────────

func TestHandler_ListQuotes(t *testing.T) {
	f := newHandlerFixture(t)
	f.quotes.EXPECT().List(gomock.Any()).Return(models.SeedQuotes())

	rec := f.do(http.MethodGet, "/api/quotes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.SeedQuotes(), got)
}

func TestHandler_AddQuote(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setup       func(f *handlerFixture)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "added",
			body: `{"text":" Be kind ","category":"Life"}`,
			setup: func(f *handlerFixture) {
				f.quotes.EXPECT().Add(gomock.Any(), models.Quote{Text: " Be kind ", Category: "Life"}).
					Return(models.Quote{Text: "Be kind", Category: "Life"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "malformed body",
			body:        `{"text":`,
			setup:       func(*handlerFixture) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name: "validation error",
			body: `{"text":"","category":"Life"}`,
			setup: func(f *handlerFixture) {
				f.quotes.EXPECT().Add(gomock.Any(), gomock.Any()).
					Return(models.Quote{}, validators.NewValidationError(validators.FieldText, "is required"))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgFillBothFields,
		},
		{
			name: "storage error",
			body: `{"text":"a","category":"b"}`,
			setup: func(f *handlerFixture) {
				f.quotes.EXPECT().Add(gomock.Any(), gomock.Any()).
					Return(models.Quote{}, fmt.Errorf("add quote: %w", store.ErrExecutingStatement))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			tt.setup(f)

			rec := f.do(http.MethodPost, "/api/quotes", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, rec))
				return
			}

			var got addQuoteResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, app.MsgQuoteAdded, got.Message)
			assert.Equal(t, "Be kind", got.Quote.Text)
		})
	}
}

func TestHandler_RandomQuote(t *testing.T) {
	f := newHandlerFixture(t)
	quote := models.Quote{Text: "a", Category: "X"}
	f.quotes.EXPECT().Random(gomock.Any()).Return(presenter.Display{Quote: quote, Text: presenter.Render(quote), Found: true}, nil)

	rec := f.do(http.MethodGet, "/api/quotes/random", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got presenter.Display
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Found)
	assert.Equal(t, "a\n— X", got.Text)
}

// ── Catalog ──────────────────────────────────────────────────────────────────

func TestHandler_ListCategories(t *testing.T) {
	f := newHandlerFixture(t)
	f.catalog.EXPECT().Categories().Return(slices.Values([]string{"Life", "Server"}))

	rec := f.do(http.MethodGet, "/api/categories", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got categoriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"Life", "Server"}, got.Categories)
	require.Len(t, got.Options, 3)
	assert.Equal(t, categoryOption{Value: models.FilterAll, Label: app.MsgAllCategories}, got.Options[0])
}

func TestHandler_Filter(t *testing.T) {
	f := newHandlerFixture(t)

	f.catalog.EXPECT().CurrentFilter(gomock.Any()).Return(models.FilterAll, nil)
	rec := f.do(http.MethodGet, "/api/filter", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"filter":"all"}`, rec.Body.String())

	f.catalog.EXPECT().SetFilter(gomock.Any(), "Life").Return(nil)
	rec = f.do(http.MethodPut, "/api/filter", `{"filter":"Life"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"filter":"Life"}`, rec.Body.String())

	f.catalog.EXPECT().SetFilter(gomock.Any(), models.FilterAll).Return(nil)
	rec = f.do(http.MethodPut, "/api/filter", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPut, "/api/filter", `nope`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── Export / Import ──────────────────────────────────────────────────────────

func TestHandler_Export(t *testing.T) {
	f := newHandlerFixture(t)
	f.transfer.EXPECT().Export(gomock.Any(), gomock.Any(), service.FormatJSON).
		DoAndReturn(func(_ context.Context, w io.Writer, _ string) error {
			_, err := w.Write([]byte("[]"))
			return err
		})

	rec := f.do(http.MethodGet, "/api/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="quotes.json"`, rec.Header().Get("Content-Disposition"))
}

func TestHandler_Export_UnsupportedFormat(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/export?format=csv", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgUnsupportedExportFormat, decodeError(t, rec))
}

func TestHandler_Import(t *testing.T) {
	tests := []struct {
		name        string
		importErr   error
		wantStatus  int
		wantMessage string
	}{
		{name: "imported", wantStatus: http.StatusOK},
		{
			name:        "not an array",
			importErr:   validators.NewFormatError(validators.FormatNotArray, nil),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSONFormat,
		},
		{
			name:        "not json",
			importErr:   validators.NewFormatError(validators.FormatMalformed, errors.New("bad")),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgErrorReadingJSON,
		},
		{
			name:        "body too large",
			importErr:   validators.NewFormatError(validators.FormatMalformed, &http.MaxBytesError{Limit: maxImportBodySize}),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: app.MsgErrorReadingJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			n := 0
			if tt.importErr == nil {
				n = 2
			}
			f.transfer.EXPECT().Import(gomock.Any(), gomock.Any()).Return(n, tt.importErr)

			rec := f.do(http.MethodPost, "/api/import", `[{},{}]`)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeError(t, rec))
				return
			}
			assert.JSONEq(t, `{"imported":2,"message":"Quotes imported successfully!"}`, rec.Body.String())
		})
	}
}

func TestHandler_Import_BodyLimit(t *testing.T) {
	f := newHandlerFixture(t)
	f.transfer.EXPECT().Import(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r io.Reader) (int, error) {
			_, err := io.ReadAll(r)
			return 0, validators.NewFormatError(validators.FormatMalformed, err)
		})

	rec := f.do(http.MethodPost, "/api/import", strings.Repeat(" ", maxImportBodySize+1))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

// ── Sync ─────────────────────────────────────────────────────────────────────

func TestHandler_Sync(t *testing.T) {
	tests := []struct {
		name       string
		report     models.SyncReport
		wantStatus int
		wantBody   string
	}{
		{
			name:       "changes",
			report:     models.SyncReport{New: 2, Conflicts: 1},
			wantStatus: http.StatusOK,
			wantBody:   `{"new":2,"conflicts":1,"message":"Sync complete: 2 new quotes, 1 conflicts resolved."}`,
		},
		{
			name:       "up to date",
			report:     models.SyncReport{},
			wantStatus: http.StatusOK,
			wantBody:   `{"new":0,"conflicts":0,"message":"Quotes are up to date"}`,
		},
		{
			name:       "in progress",
			report:     models.SyncReport{Err: service.ErrSyncInProgress},
			wantStatus: http.StatusConflict,
			wantBody:   `{"error":"Sync already in progress"}`,
		},
		{
			name:       "remote failure",
			report:     models.SyncReport{Err: fmt.Errorf("fetch remote quotes: %w", adapter.ErrNetwork)},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"Error syncing with server"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.sync.EXPECT().Sync(gomock.Any()).Return(tt.report)

			rec := f.do(http.MethodPost, "/api/sync", "")

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ── Version / metrics / routing ──────────────────────────────────────────────

func TestHandler_Version(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := f.do(http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestHandler_Metrics(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "quotes_added_total")
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodDelete, "/api/quotes", "")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.ElementsMatch(t, []string{http.MethodGet, http.MethodPost}, rec.Header().Values("Allow"))
}

func TestHandler_UnknownRoute(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/unknown", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_TraceIDHeader(t *testing.T) {
	f := newHandlerFixture(t)
	f.quotes.EXPECT().List(gomock.Any()).Return(nil).Times(2)

	rec := f.do(http.MethodGet, "/api/quotes", "")
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
	req.Header.Set("X-Trace-ID", "abc")
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get("X-Trace-ID"))
}
