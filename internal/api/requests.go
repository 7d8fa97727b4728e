package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"tripsplit/internal/fault"
)

var validate = validator.New()

// createGroupRequest is the JSON body of POST /groups.
type createGroupRequest struct {
	Name    string   `json:"name" validate:"required,min=3"`
	Members []string `json:"members" validate:"required,min=1,dive,required"`
}

// addExpenseRequest is the JSON body of POST /groups/{groupID}/expenses.
type addExpenseRequest struct {
	Description  string   `json:"description" validate:"required,min=1,max=100"`
	Amount       float64  `json:"amount" validate:"required,gt=0"`
	Payer        string   `json:"payer" validate:"required"`
	Participants []string `json:"participants" validate:"required,min=1,dive,required"`
}

// decodeAndValidate parses a JSON body into v and runs struct
// validation. All failures are BadRequest.
func decodeAndValidate(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fault.Wrap(fault.BadRequest, "invalid request body", err)
	}
	if err := validate.Struct(v); err != nil {
		return fault.Wrap(fault.BadRequest, "request validation failed: "+err.Error(), err)
	}
	return nil
}
