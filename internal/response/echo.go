package response

import (
	"github.com/labstack/echo/v4"
)

// WriteEcho writes r to the Echo response.
func WriteEcho(c echo.Context, r *Response) error {
	header := c.Response().Header()
	for key, value := range r.Headers {
		header.Set(key, value)
	}
	return c.Blob(r.StatusCode, r.Headers[ContentTypeHeader], r.Body)
}
