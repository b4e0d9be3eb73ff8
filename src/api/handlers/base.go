package handlers

import (
	"encoding/json"
	"net/http"
	"portfolio-api/src/api/controllers"
	"portfolio-api/src/utils"
)

type Handler struct {
	Controller controllers.IController
	DevMode    bool
}

func NewHandler(controller controllers.IController, devMode bool) *Handler {
	return &Handler{Controller: controller, DevMode: devMode}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	res, err := json.Marshal(data)
	if err != nil {
		utils.WriteError(w, err, h.DevMode)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors maps a failure onto the uniform error envelope. Raw row-store
// errors are classified by text inside WriteError.
func (h *Handler) HandleErrors(w http.ResponseWriter, r *http.Request, err error) {
	logger := utils.LoggerFromContext(r.Context())
	logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
	utils.WriteError(w, err, h.DevMode)
}
