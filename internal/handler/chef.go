package handler

import (
	"net/http"

	"github.com/Ezio016/MyFridge/internal/chef"
)

type AskChefRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

// HandleAskChef forwards a cooking question to the chef with the current
// inventory as context
// @Summary Ask the chef
// @Tags chef
// @Accept json
// @Produce json
// @Param request body AskChefRequest true "Question"
// @Success 200 {object} chef.Reply
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /chef/ask [post]
func HandleAskChef(svc chef.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AskChefRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Ask chef"); err != nil {
			return
		}

		reply, err := svc.Ask(r.Context(), req.Question)
		if err != nil {
			respondServiceError(w, r, "Ask chef", err)
			return
		}

		respondJSON(w, http.StatusOK, reply)
	}
}
