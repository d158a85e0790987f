package httptransport

import (
	"encoding/json"
	"io"
	"regexp"
	"strconv"

	filmModel "filmgate/internal/catalog/models"
	dErrors "filmgate/pkg/domain-errors"
)

var (
	intRegexp  = regexp.MustCompile(`^\d+$`)
	cardRegexp = regexp.MustCompile(`^\d{16}$`)
)

// registrationRequest is the POST /registrations body.
type registrationRequest struct {
	Name             string `json:"name"`
	CreditCardNumber string `json:"creditCardNumber"`
}

func decodeRegistrationRequest(body io.Reader) (registrationRequest, error) {
	var req registrationRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return req, dErrors.New(dErrors.CodeInvalidInput, "invalid request body")
	}
	if req.Name == "" {
		return req, dErrors.New(dErrors.CodeInvalidInput, "Body must include name")
	}
	if req.CreditCardNumber == "" {
		return req, dErrors.New(dErrors.CodeInvalidInput, "Body must include creditCardNumber")
	}
	if !cardRegexp.MatchString(req.CreditCardNumber) {
		return req, dErrors.New(dErrors.CodeInvalidInput, "Credit card number must be 16 digits")
	}
	return req, nil
}

// createOrderRequest is the POST /orders body. Fields are captured raw so
// missing and mistyped values report distinct, deterministic errors.
type createOrderRequest struct {
	FilmID *json.RawMessage `json:"filmId"`
	Format *string          `json:"format"`
}

// decodeCreateOrderRequest enforces the check order missing filmId → filmId
// type → missing format.
func decodeCreateOrderRequest(body io.Reader) (filmID int, format filmModel.Format, err error) {
	var req createOrderRequest
	if decErr := json.NewDecoder(body).Decode(&req); decErr != nil {
		return 0, "", dErrors.New(dErrors.CodeInvalidInput, "invalid request body")
	}

	if req.FilmID == nil || string(*req.FilmID) == "null" {
		return 0, "", dErrors.New(dErrors.CodeInvalidInput, "Request body must include filmId")
	}
	if jsonErr := json.Unmarshal(*req.FilmID, &filmID); jsonErr != nil {
		return 0, "", dErrors.New(dErrors.CodeInvalidInput, "filmId must be an integer")
	}

	if req.Format == nil || *req.Format == "" {
		return 0, "", dErrors.New(dErrors.CodeInvalidInput, "Request body must include format")
	}

	return filmID, filmModel.Format(*req.Format), nil
}

// changeFormatRequest is the PATCH /orders/{orderID} body.
type changeFormatRequest struct {
	Format *string `json:"format"`
}

func decodeChangeFormatRequest(body io.Reader) (filmModel.Format, error) {
	var req changeFormatRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid request body")
	}
	if req.Format == nil || *req.Format == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "Request body must include format")
	}
	return filmModel.Format(*req.Format), nil
}

// parseID parses a URL path identifier that must be a non-negative integer.
func parseID(raw, message string) (int, error) {
	if !intRegexp.MatchString(raw) {
		return 0, dErrors.New(dErrors.CodeInvalidInput, message)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, message)
	}
	return id, nil
}
