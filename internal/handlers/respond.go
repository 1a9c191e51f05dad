package handlers

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/project-dashboard/internal/errors"
	"github.com/yukikurage/project-dashboard/internal/services"
)

// respondError maps a service error to its API error response.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err):
		apierrors.NotFound(c, err.Error())
	case services.IsInvalidInput(err):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.AlreadyExists(c, err.Error())
	case services.IsConflict(err):
		apierrors.Conflict(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, "")
	}
}

// bindJSON decodes the request body into req, answering 400 on failure.
// Absent required fields, failed binding rules and undecodable bodies each
// get their own error code.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		apierrors.InvalidFormat(c, err.Error())
		return false
	}

	var missing []string
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, jsonName(req, fe.StructField()))
		}
	}
	if len(missing) == len(fieldErrs) {
		apierrors.MissingField(c, missing)
		return false
	}

	apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
	return false
}

// jsonName returns the JSON key of the named field of the struct req points to.
func jsonName(req interface{}, field string) string {
	t := reflect.TypeOf(req)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return field
	}
	f, ok := t.FieldByName(field)
	if !ok {
		return field
	}
	if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return field
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
