package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"guidely/models"
	"guidely/services/booking"
	"guidely/services/convo"
	"guidely/services/dialog"
	"guidely/utils"
)

// turnTimeout bounds one turn's external calls so a stuck sink or extractor
// cannot hang the process.
const turnTimeout = 15 * time.Second

// globalSession is the conversation key used when the dialog platform sends
// no session path.
const globalSession = "global"

// WebhookHandler serves the dialog platform's fulfillment requests.
type WebhookHandler struct {
	Store      convo.Store
	Dialog     dialog.Service
	Recorder   booking.Recorder
	Logger     *zap.Logger
	SessionTTL time.Duration
}

func NewWebhookHandler(store convo.Store, dialogSvc dialog.Service, recorder booking.Recorder, logger *zap.Logger, sessionTTL time.Duration) *WebhookHandler {
	return &WebhookHandler{
		Store:      store,
		Dialog:     dialogSvc,
		Recorder:   recorder,
		Logger:     logger,
		SessionTTL: sessionTTL,
	}
}

// HandleTurn processes one conversational turn: merge the turn's parameters
// into the conversation state, snapshot booking state (best-effort), and
// derive the fulfillment reply.
func (h *WebhookHandler) HandleTurn(c *gin.Context) {
	var req models.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.QueryResult == nil {
		utils.JSONError(c, http.StatusBadRequest, "missing key in request data: queryResult", "")
		return
	}
	intentName := req.QueryResult.Intent.DisplayName
	if intentName == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing key in request data: queryResult.intent.displayName", "")
		return
	}

	params := req.QueryResult.Parameters
	if params == nil {
		params = make(map[string]interface{})
	}
	sessionID := sessionKey(req.Session)

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	state, err := h.mergeTurn(ctx, sessionID, params)
	if err != nil {
		h.Logger.Error("failed to update conversation state",
			zap.String("session", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update conversation state", err.Error())
		return
	}

	// Booking persistence is best-effort; the reply must go out even when
	// the sink is down.
	h.Recorder.RecordTurn(ctx, sessionID, state, params)

	reply := h.Dialog.Respond(ctx, sessionID, intentName, params)

	h.Logger.Debug("turn handled",
		zap.String("session", sessionID),
		zap.String("intent", intentName))
	c.JSON(http.StatusOK, models.WebhookResponse{FulfillmentText: reply})
}

// mergeTurn performs the read-merge-save cycle under the session's lock so
// concurrent turns of one conversation never lose updates.
func (h *WebhookHandler) mergeTurn(ctx context.Context, sessionID string, params map[string]interface{}) (*convo.State, error) {
	release := convo.LockSession(sessionID)
	defer release()

	state, err := h.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		state = convo.NewState()
	}
	state.Merge(params)
	if err := h.Store.Save(ctx, sessionID, state, h.SessionTTL); err != nil {
		return nil, err
	}
	return state, nil
}

// sessionKey extracts the conversation key from a Dialogflow session path
// ("projects/<p>/agent/sessions/<id>").
func sessionKey(sessionPath string) string {
	trimmed := strings.TrimSpace(sessionPath)
	if trimmed == "" {
		return globalSession
	}
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if trimmed == "" {
		return globalSession
	}
	return trimmed
}
