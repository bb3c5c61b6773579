package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error payload of every JSON error response.
type ErrorBody struct {
	Error string `json:"error"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	payload, err := json.Marshal(j.body)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(j.status)
	_, err = w.Write(append(payload, '\n'))
	return err
}

// JSON renders body as-is with the given status.
func JSON(status int, body any) Response {
	return jsonResponse{status: status, body: body}
}

// JSONError renders {"error": message} with the given status.
func JSONError(status int, message string) Response {
	return jsonResponse{status: status, body: ErrorBody{Error: message}}
}
