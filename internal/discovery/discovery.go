// Package discovery answers the bootstrap request consoles make before any
// other call: which hosts to use, or why the service cannot be used.
package discovery

import (
	"net/http"

	"github.com/BloggingApp/miiverse-service/internal/dto"
	"github.com/BloggingApp/miiverse-service/internal/model"
	"github.com/BloggingApp/miiverse-service/internal/xmlresponse"
	"github.com/BloggingApp/miiverse-service/internal/xmltree"
)

const (
	StatusOK                             = 0
	StatusSystemUpdateRequired           = 1
	StatusSetupNotComplete               = 2
	StatusServiceMaintenance             = 3
	StatusServiceClosed                  = 4
	StatusParentalControlsEnabled        = 5
	StatusPostingLimitedParentalControls = 6
	StatusNNIDBanned                     = 7
)

type statusError struct {
	code    int
	message string
}

var statusErrors = map[int]statusError{
	StatusSystemUpdateRequired:           {code: 1, message: "SYSTEM_UPDATE_REQUIRED"},
	StatusSetupNotComplete:               {code: 2, message: "SETUP_NOT_COMPLETE"},
	StatusServiceMaintenance:             {code: 3, message: "SERVICE_MAINTENANCE"},
	StatusServiceClosed:                  {code: 4, message: "SERVICE_CLOSED"},
	StatusParentalControlsEnabled:        {code: 5, message: "PARENTAL_CONTROLS_ENABLED"},
	StatusPostingLimitedParentalControls: {code: 6, message: "POSTING_LIMITED_PARENTAL_CONTROLS"},
	StatusNNIDBanned:                     {code: 7, message: "NNID_BANNED"},
}

var serverError = statusError{code: 15, message: "SERVER_ERROR"}

// Resolve picks the response for an environment record. A nil record is a
// plain 404 without a body.
func Resolve(endpoint *model.Endpoint) (dto.XMLResponse, error) {
	if endpoint == nil {
		return dto.NotFound(), nil
	}

	if endpoint.Status == StatusOK {
		b := xmltree.New("result")
		b.Elem("has_error", 0).
			Elem("version", 1).
			Open("endpoint").
			Elem("host", endpoint.Host).
			Elem("api_host", endpoint.APIHost).
			Elem("portal_host", endpoint.PortalHost).
			Elem("n3ds_host", endpoint.N3DSHost).
			Up()

		body, err := b.String(true)
		if err != nil {
			return dto.XMLResponse{}, err
		}
		return dto.NewXMLResponse(http.StatusOK, body), nil
	}

	statusErr, ok := statusErrors[endpoint.Status]
	if !ok {
		statusErr = serverError
	}

	body, err := xmlresponse.Error(http.StatusBadRequest, statusErr.code, statusErr.message)
	if err != nil {
		return dto.XMLResponse{}, err
	}
	return dto.NewXMLResponse(http.StatusBadRequest, body), nil
}

// Outcome names a resolution for logs and metrics.
func Outcome(endpoint *model.Endpoint) string {
	if endpoint == nil {
		return "not_found"
	}
	if endpoint.Status == StatusOK {
		return "ok"
	}
	if statusErr, ok := statusErrors[endpoint.Status]; ok {
		return statusErr.message
	}
	return serverError.message
}
