package controllers

import (
	"errors"
	"net/http"

	"github.com/lintang-b-s/gridroute/pkg/util"
	"go.uber.org/zap"
)

func (api *routingAPI) logError(r *http.Request, err error) {
	api.log.Error("http error",
		zap.Error(err),
		zap.String("request_method", r.Method),
		zap.String("request_url", r.URL.String()),
	)
}

func (api *routingAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int,
	code string, message string) {
	var response errorResponse
	response.Error.Code = code
	response.Error.Message = message

	if err := api.writeJSON(w, status, envelope{"error": response.Error}, nil); err != nil {
		api.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *routingAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.logError(r, err)
	api.errorResponse(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR",
		util.MessageInternalServerError)
}

func (api *routingAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error())
}

func (api *routingAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, "NOT_FOUND", err.Error())
}

// getStatusCode maps the wrapped error codes of the util package to HTTP
// responses.
func (api *routingAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	var uerr *util.Error
	if errors.As(err, &uerr) {
		switch uerr.Code() {
		case util.ErrBadParamInput:
			api.BadRequestResponse(w, r, err)
		case util.ErrNotFound:
			api.NotFoundResponse(w, r, err)
		default:
			api.ServerErrorResponse(w, r, err)
		}
		return
	}
	api.ServerErrorResponse(w, r, err)
}
