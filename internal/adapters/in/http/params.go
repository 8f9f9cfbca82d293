package http

import (
	"strings"
	"time"

	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const dateLayout = "2006-01-02"

// timeLayouts are tried in order. A bare date means midnight UTC.
var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", dateLayout}

func pathID(ctx echo.Context) (string, error) {
	var id string

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return id, nil
}

func optionalQuery(ctx echo.Context, name string) (*string, error) {
	var value *string

	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), &value); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}

	return value, nil
}

func requiredTimeQuery(ctx echo.Context, name string) (time.Time, error) {
	var raw string

	if err := runtime.BindQueryParameter("form", true, true, name, ctx.QueryParams(), &raw); err != nil {
		return time.Time{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}

	return parseTime(name, raw)
}

// optionalTimeQuery treats an absent or blank parameter as nil.
func optionalTimeQuery(ctx echo.Context, name string) (*time.Time, error) {
	raw, err := optionalQuery(ctx, name)
	if err != nil || raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, err
	}

	t, err := parseTime(name, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseTime(name, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}

	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(name, lastErr)
}

func bindBody(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := ctx.Validate(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}
