package helpers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/eschool/internal/pkg/apperrors"
)

// ParseInt64QueryParams reads the request query string and returns the values of the
// allowed parameters keyed by their canonical name. Names are matched case-insensitively.
// Malformed segments, unknown parameters, repeated parameters and non-numeric values are
// rejected with a bad request error instead of being ignored.
func ParseInt64QueryParams(c *gin.Context, allowed ...string) (map[string]int64, error) {
	// URL.Query drops segments it cannot parse, so parse the raw query and fail instead
	query, err := url.ParseQuery(c.Request.URL.RawQuery)
	if err != nil {
		return nil, apperrors.NewBadRequestError("malformed query string")
	}

	params := make(map[string]int64, len(allowed))
	for key, values := range query {
		name, ok := canonicalName(key, allowed)
		if !ok {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unsupported query parameter %q", key))
		}
		if _, seen := params[name]; seen || len(values) != 1 {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("query parameter %q must be given once", name))
		}

		value, err := strconv.ParseInt(strings.TrimSpace(values[0]), 10, 64)
		if err != nil {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("query parameter %q must be a valid number", name))
		}
		params[name] = value
	}

	return params, nil
}

// ParseIDParam parses a positive int64 path parameter
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("%s must be a positive number", name))
	}
	return id, nil
}

func canonicalName(key string, allowed []string) (string, bool) {
	for _, name := range allowed {
		if strings.EqualFold(key, name) {
			return name, true
		}
	}
	return "", false
}
