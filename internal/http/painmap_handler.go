package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"spine-intake/internal/catalog"
	"spine-intake/internal/domain"
	"spine-intake/internal/service"

	"go.uber.org/zap"
)

// PainMapHandler 身体疼痛图 API
type PainMapHandler struct {
	svc    *service.PainMapService
	logger *zap.Logger
}

func NewPainMapHandler(svc *service.PainMapService, logger *zap.Logger) *PainMapHandler {
	return &PainMapHandler{svc: svc, logger: logger}
}

// markRequest 点击请求（坐标为当前显示尺寸下的像素）
type markRequest struct {
	View         string  `json:"view"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	ImageWidth   float64 `json:"image_width"`
	ImageHeight  float64 `json:"image_height"`
	DisplayScale float64 `json:"display_scale"`
	Note         string  `json:"note"`
}

type intensityRequest struct {
	Intensity *int `json:"intensity"`
}

type noteRequest struct {
	Note string `json:"note"`
}

type hotspotsResponse struct {
	View     domain.View                `json:"view"`
	Hotspots []domain.HotspotDefinition `json:"hotspots"`
	Groups   []catalog.Group            `json:"groups"`
}

type removeResponse struct {
	Removed bool `json:"removed"`
}

// GET /painmap/api/v1/hotspots?view=front
func (h *PainMapHandler) GetHotspots(w http.ResponseWriter, r *http.Request) {
	view, err := domain.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}
	hotspots, err := h.svc.Hotspots(view)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}
	groups, _ := h.svc.Groups(view)
	writeJSON(w, http.StatusOK, Ok(hotspotsResponse{View: view, Hotspots: hotspots, Groups: groups}))
}

// GET /painmap/api/v1/sessions
func (h *PainMapHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.ListSessions(r.Context())
	if err != nil {
		h.writeError(w, "list sessions", "", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(ids))
}

// ServeSession 路由 /painmap/api/v1/sessions/{sid}/...
func (h *PainMapHandler) ServeSession(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, apiPrefix+"/sessions/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	sid := parts[0]
	if sid == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	switch {
	case len(parts) == 1:
		h.method(w, r, http.MethodDelete, func() { h.DeleteSession(w, r, sid) })
	case len(parts) == 2 && parts[1] == "marks":
		switch r.Method {
		case http.MethodGet:
			h.ListMarks(w, r, sid)
		case http.MethodPost:
			h.CreateMark(w, r, sid)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	case len(parts) == 3 && parts[1] == "marks":
		h.method(w, r, http.MethodDelete, func() { h.RemoveMark(w, r, sid, parts[2]) })
	case len(parts) == 4 && parts[1] == "marks" && parts[3] == "intensity":
		h.method(w, r, http.MethodPut, func() { h.SetIntensity(w, r, sid, parts[2]) })
	case len(parts) == 4 && parts[1] == "marks" && parts[3] == "note":
		h.method(w, r, http.MethodPut, func() { h.UpdateNote(w, r, sid, parts[2]) })
	case len(parts) == 2 && parts[1] == "overlay.png":
		h.method(w, r, http.MethodGet, func() { h.GetOverlay(w, r, sid) })
	case len(parts) == 2 && parts[1] == "report.xlsx":
		h.method(w, r, http.MethodGet, func() { h.ExportReport(w, r, sid) })
	case len(parts) == 2 && parts[1] == "summary":
		h.method(w, r, http.MethodPost, func() { h.Summarize(w, r, sid) })
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *PainMapHandler) method(w http.ResponseWriter, r *http.Request, want string, fn func()) {
	if r.Method != want {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	fn()
}

// GET /painmap/api/v1/sessions/{sid}/marks?view=back
func (h *PainMapHandler) ListMarks(w http.ResponseWriter, r *http.Request, sid string) {
	var view domain.View
	if v := r.URL.Query().Get("view"); v != "" {
		parsed, err := domain.ParseView(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
			return
		}
		view = parsed
	}
	areas, err := h.svc.List(r.Context(), sid, view)
	if err != nil {
		h.writeError(w, "list marks", sid, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(areas))
}

// POST /painmap/api/v1/sessions/{sid}/marks
// 未命中（越界/透明像素/图片未就绪）返回 code=2000，result.status 说明原因，pain_area 为空
func (h *PainMapHandler) CreateMark(w http.ResponseWriter, r *http.Request, sid string) {
	var req markRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body: "+err.Error()))
		return
	}
	view, err := domain.ParseView(req.View)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	res, err := h.svc.Mark(r.Context(), service.MarkRequest{
		SessionID:    sid,
		View:         view,
		Click:        domain.DisplayedPoint{X: req.X, Y: req.Y},
		Displayed:    domain.DisplayedSize{Width: req.ImageWidth, Height: req.ImageHeight},
		DisplayScale: req.DisplayScale,
		Note:         req.Note,
	})
	if err != nil {
		h.writeError(w, "create mark", sid, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(res))
}

// PUT /painmap/api/v1/sessions/{sid}/marks/{id}/intensity
func (h *PainMapHandler) SetIntensity(w http.ResponseWriter, r *http.Request, sid, id string) {
	var req intensityRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body: "+err.Error()))
		return
	}
	if req.Intensity == nil {
		writeJSON(w, http.StatusBadRequest, Fail("intensity is required"))
		return
	}
	area, err := h.svc.SetIntensity(r.Context(), sid, id, *req.Intensity)
	if err != nil {
		h.writeError(w, "set intensity", sid, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(area))
}

// PUT /painmap/api/v1/sessions/{sid}/marks/{id}/note
func (h *PainMapHandler) UpdateNote(w http.ResponseWriter, r *http.Request, sid, id string) {
	var req noteRequest
	if err := readBodyJSON(r, maxBodyBytes, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, Fail("invalid body: "+err.Error()))
		return
	}
	area, err := h.svc.UpdateNote(r.Context(), sid, id, req.Note)
	if err != nil {
		h.writeError(w, "update note", sid, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(area))
}

// DELETE /painmap/api/v1/sessions/{sid}/marks/{id}（重复删除不报错）
func (h *PainMapHandler) RemoveMark(w http.ResponseWriter, r *http.Request, sid, id string) {
	removed, err := h.svc.Remove(r.Context(), sid, id)
	if err != nil {
		h.writeError(w, "remove mark", sid, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(removeResponse{Removed: removed}))
}

// DELETE /painmap/api/v1/sessions/{sid}
func (h *PainMapHandler) DeleteSession(w http.ResponseWriter, r *http.Request, sid string) {
	if err := h.svc.DeleteSession(r.Context(), sid); err != nil {
		h.writeError(w, "delete session", sid, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"session_id": sid}))
}

// GET /painmap/api/v1/sessions/{sid}/overlay.png?view=front
func (h *PainMapHandler) GetOverlay(w http.ResponseWriter, r *http.Request, sid string) {
	view, err := domain.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}
	// 先渲染到内存，失败时仍可返回 JSON
	var buf bytes.Buffer
	if err := h.svc.RenderOverlay(r.Context(), sid, view, &buf); err != nil {
		h.writeError(w, "render overlay", sid, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// GET /painmap/api/v1/sessions/{sid}/report.xlsx
func (h *PainMapHandler) ExportReport(w http.ResponseWriter, r *http.Request, sid string) {
	b, err := h.svc.ExportReport(r.Context(), sid)
	if err != nil {
		h.writeError(w, "export report", sid, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="pain-areas-%s.xlsx"`, sid))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// POST /painmap/api/v1/sessions/{sid}/summary
func (h *PainMapHandler) Summarize(w http.ResponseWriter, r *http.Request, sid string) {
	res, err := h.svc.Summarize(r.Context(), sid)
	if err != nil {
		h.writeError(w, "summarize", sid, err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(res))
}

// writeError 将领域错误映射为 HTTP 状态码，未知错误记录日志并隐藏细节
func (h *PainMapHandler) writeError(w http.ResponseWriter, op, sid string, err error) {
	if status, ok := statusForError(err); ok {
		writeJSON(w, status, Fail(err.Error()))
		return
	}
	h.logger.Error("Pain map request failed",
		zap.String("op", op),
		zap.String("session_id", sid),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, Fail("internal error"))
}
