package handler

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

type responseBody struct {
	Message string `json:"message"`
}

// jsonResponse builds the API Gateway response: status code, JSON content
// type (plus the CORS header when enabled), and a body carrying a single
// human-readable message field.
func (h *Handler) jsonResponse(status int, message string) events.APIGatewayProxyResponse {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if h.cors {
		headers["Access-Control-Allow-Origin"] = "*"
	}

	body, _ := json.Marshal(responseBody{Message: message})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}
