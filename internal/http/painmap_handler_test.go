package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spine-intake/internal/catalog"
	"spine-intake/internal/domain"
	"spine-intake/internal/raster"
	"spine-intake/internal/repository"
	"spine-intake/internal/resolver"
	"spine-intake/internal/service"

	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	logger := zap.NewNop()

	img := image.NewNRGBA(image.Rect(0, 0, 200, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 200; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 220, G: 190, B: 170, A: 255})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}

	reg := raster.NewRegistry()
	for _, v := range domain.Views() {
		if err := reg.Buffer(v).Load(bytes.NewReader(buf.Bytes()), string(v)+".png"); err != nil {
			t.Fatalf("load %s: %v", v, err)
		}
	}

	svc := service.NewPainMapService(
		repository.NewMemoryFormStateRepo(),
		reg,
		resolver.New(0, logger),
		nil,
		nil,
		service.Options{DisplayScale: 1, ReferenceSize: domain.NaturalSize{Width: 200, Height: 400}},
		logger,
	)
	r := NewRouter(logger)
	r.RegisterPainMapRoutes(NewPainMapHandler(svc, logger))
	r.RegisterHealthRoutes(NewHealthHandler(svc, nil, nil, logger))
	return r
}

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type markEnvelope struct {
	Code   int `json:"code"`
	Result struct {
		Status   string           `json:"status"`
		PainArea *domain.PainArea `json:"pain_area"`
	} `json:"result"`
}

func createMark(t *testing.T, r http.Handler, sid string, view domain.View, name string) domain.PainArea {
	t.Helper()
	h, ok := catalog.Lookup(view, name)
	if !ok {
		t.Fatalf("hotspot %q not found", name)
	}
	c := domain.NormalizedToDisplayed(h.BoundingBox, domain.DisplayedSize{Width: 200, Height: 400}).Center()
	body := fmt.Sprintf(`{"view":%q,"x":%f,"y":%f,"image_width":200,"image_height":400}`, view, c.X, c.Y)

	w := do(t, r, http.MethodPost, "/painmap/api/v1/sessions/"+sid+"/marks", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var env markEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != ResultSuccess || env.Result.PainArea == nil {
		t.Fatalf("expected a new pain area, got: %s", w.Body.String())
	}
	if env.Result.PainArea.Region != name {
		t.Fatalf("expected region %q, got %q", name, env.Result.PainArea.Region)
	}
	return *env.Result.PainArea
}

func TestGetHotspots(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/painmap/api/v1/hotspots?view=back", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"code":2000`) {
		t.Fatalf("expected success, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"display_name":"L4 Vertebra"`) {
		t.Fatalf("expected back catalog, got: %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/painmap/api/v1/hotspots?view=side", "")
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), `"code":-1`) {
		t.Fatalf("expected 400 with code -1, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/painmap/api/v1/hotspots?view=back", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestMarkLifecycle(t *testing.T) {
	r := newTestRouter(t)
	a := createMark(t, r, "s1", domain.ViewBack, "L5 Vertebra")
	createMark(t, r, "s1", domain.ViewFront, "Sternum (Upper)")

	w := do(t, r, http.MethodPut, "/painmap/api/v1/sessions/s1/marks/"+a.ID+"/intensity", `{"intensity":8}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"intensity":8`) {
		t.Fatalf("expected intensity 8, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPut, "/painmap/api/v1/sessions/s1/marks/"+a.ID+"/intensity", `{"intensity":11}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for intensity 11, got %d", w.Code)
	}
	w = do(t, r, http.MethodPut, "/painmap/api/v1/sessions/s1/marks/"+a.ID+"/intensity", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing intensity, got %d", w.Code)
	}
	w = do(t, r, http.MethodPut, "/painmap/api/v1/sessions/s1/marks/missing/intensity", `{"intensity":3}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", w.Code)
	}

	w = do(t, r, http.MethodPut, "/painmap/api/v1/sessions/s1/marks/"+a.ID+"/note", `{"note":"radiates down leg"}`)
	if !strings.Contains(w.Body.String(), `"notes":"Back view, group 104: radiates down leg"`) {
		t.Fatalf("expected rendered notes, got: %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/painmap/api/v1/sessions/s1/marks?view=front", "")
	if strings.Contains(w.Body.String(), a.ID) || !strings.Contains(w.Body.String(), "Sternum (Upper)") {
		t.Fatalf("expected only the front mark, got: %s", w.Body.String())
	}

	for i := 0; i < 2; i++ {
		w = do(t, r, http.MethodDelete, "/painmap/api/v1/sessions/s1/marks/"+a.ID, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected idempotent delete, got %d", w.Code)
		}
	}
	if !strings.Contains(w.Body.String(), `"removed":false`) {
		t.Fatalf("expected removed=false on second delete, got: %s", w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/painmap/api/v1/sessions/s1/marks", "")
	if strings.Contains(w.Body.String(), a.ID) {
		t.Fatalf("expected mark removed, got: %s", w.Body.String())
	}
}

func TestCreateMark_NoMatch(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/painmap/api/v1/sessions/s1/marks", `{"view":"front","x":0.5,"y":0.5,"image_width":200,"image_height":400}`)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"transparent"`) {
		t.Fatalf("expected transparent no-op, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), `"pain_area"`) {
		t.Fatalf("expected no pain area, got: %s", w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/painmap/api/v1/sessions/s1/marks", `{"view":"front","x":250,"y":10,"image_width":200,"image_height":400}`)
	if !strings.Contains(w.Body.String(), `"status":"out_of_bounds"`) {
		t.Fatalf("expected out_of_bounds, got: %s", w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/painmap/api/v1/sessions/s1/marks", `{"view":"top"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown view, got %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/painmap/api/v1/sessions/s1/marks", `{bad json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad json, got %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/painmap/api/v1/sessions/s1/marks", "")
	if !strings.Contains(w.Body.String(), `"result":[]`) {
		t.Fatalf("expected empty list, got: %s", w.Body.String())
	}
}

func TestOverlayReportSummary(t *testing.T) {
	r := newTestRouter(t)
	createMark(t, r, "s1", domain.ViewBack, "Sacrum S1")

	w := do(t, r, http.MethodGet, "/painmap/api/v1/sessions/s1/overlay.png?view=back", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("expected png, got %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if _, err := png.Decode(w.Body); err != nil {
		t.Fatalf("decode overlay: %v", err)
	}

	w = do(t, r, http.MethodGet, "/painmap/api/v1/sessions/s1/report.xlsx", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Disposition"), "pain-areas-s1.xlsx") {
		t.Fatalf("expected xlsx attachment, got %d %v", w.Code, w.Header())
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatal("expected zip container")
	}

	w = do(t, r, http.MethodPost, "/painmap/api/v1/sessions/s1/summary", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when summary disabled, got %d", w.Code)
	}
}

func TestSessionsAndRouting(t *testing.T) {
	r := newTestRouter(t)
	createMark(t, r, "abc", domain.ViewFront, "Sternum (Upper)")

	w := do(t, r, http.MethodGet, "/painmap/api/v1/sessions", "")
	if !strings.Contains(w.Body.String(), `"result":["abc"]`) {
		t.Fatalf("expected session list, got: %s", w.Body.String())
	}

	w = do(t, r, http.MethodDelete, "/painmap/api/v1/sessions/abc", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/painmap/api/v1/sessions", "")
	if !strings.Contains(w.Body.String(), `"result":[]`) {
		t.Fatalf("expected empty session list, got: %s", w.Body.String())
	}

	if w = do(t, r, http.MethodGet, "/painmap/api/v1/sessions/abc/unknown", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w = do(t, r, http.MethodGet, "/painmap/api/v1/sessions/", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if w = do(t, r, http.MethodPatch, "/painmap/api/v1/sessions/abc/marks", ""); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"status":"healthy"`) {
		t.Fatalf("expected healthy, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"front":true`) {
		t.Fatalf("expected view status, got: %s", w.Body.String())
	}

	degraded := NewHealthHandler(stubRasters{domain.ViewFront: false}, nil, nil, zap.NewNop())
	rec := httptest.NewRecorder()
	degraded.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"status":"degraded"`) {
		t.Fatalf("expected degraded, got %d: %s", rec.Code, rec.Body.String())
	}
}

type stubRasters map[domain.View]bool

func (s stubRasters) RasterStatus() map[domain.View]bool { return s }
