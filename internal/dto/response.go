package dto

import "net/http"

const ContentTypeXML = "application/xml"

// XMLResponse is a finished response: the handler writes it as is.
type XMLResponse struct {
	Status      int
	ContentType string
	Body        string
}

func NewXMLResponse(status int, body string) XMLResponse {
	return XMLResponse{
		Status:      status,
		ContentType: ContentTypeXML,
		Body:        body,
	}
}

// NotFound carries no body and no content type.
func NotFound() XMLResponse {
	return XMLResponse{Status: http.StatusNotFound}
}
