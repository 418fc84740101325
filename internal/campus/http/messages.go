package http

import (
	"net/http"

	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

type MessagesHandler struct {
	MessagingService *service.MessagingService
	DirectoryService *service.DirectoryService

	MaxUploadBytes int64
}

// HandleSend godoc
//
//	@Summary		Broadcast Message
//	@Description	Send a message, optionally with an image, to every other user with a profile.
//	@Description	Either every receiver gets a row or none does.
//	@Tags			Messages
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			text	formData	string							false	"Message text"
//	@Param			image	formData	file							false	"Attached image"
//	@Success		200		{object}	campussdk.SendMessageResponse	"message, receivers"
//	@Failure		400		{object}	campussdk.ErrorResponse			"invalid sender or receivers"
//	@Failure		401		{object}	campussdk.ErrorResponse			"no session"
//	@Failure		404		{object}	campussdk.ErrorResponse			"no receivers"
//	@Failure		500		{object}	campussdk.ErrorResponse			"persistence or partial write"
//	@Router			/sendMessage [post]
func (h *MessagesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r, h.MaxUploadBytes); err != nil {
		writeFormError(w, r, err)
		return
	}
	img, closeImg, err := formUpload(r, "image")
	if err != nil {
		writeFormError(w, r, err)
		return
	}
	defer closeImg()

	res, err := h.MessagingService.Broadcast(r.Context(), callerEmail(r), r.FormValue("text"), img)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, campussdk.SendMessageResponse{
		Message:   "Message sent to all users successfully",
		Receivers: res.Receivers,
	})
}

// HandleList godoc
//
//	@Summary		Get Conversation
//	@Description	Return messages exchanged between senderEmail and any of receiverEmails, newest first.
//	@Tags			Messages
//	@Produce		json
//	@Param			senderEmail		query		string				true	"Sender email"
//	@Param			receiverEmails	query		string				true	"Comma separated receiver emails"
//	@Success		200				{array}		campussdk.Message	"messages"
//	@Failure		400				{object}	campussdk.ErrorResponse	"missing parameters"
//	@Failure		401				{object}	campussdk.ErrorResponse	"no session"
//	@Failure		403				{object}	campussdk.ErrorResponse	"caller is not a participant"
//	@Failure		500				{object}	campussdk.ErrorResponse	"error, error_description"
//	@Router			/getMessages [get]
func (h *MessagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	msgs, err := h.MessagingService.Conversation(r.Context(), callerEmail(r), q.Get("senderEmail"), httpx.SplitCommaList(q.Get("receiverEmails")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toMessages(msgs, h.DirectoryService.ImagePath))
}
