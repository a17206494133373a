package middleware

import (
	"context"

	companyerrors "biztime/internal/company/errors"

	"github.com/gin-gonic/gin"
)

// CompanyLookup reports whether a company code is on file.
type CompanyLookup interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// RequireCompany stops requests whose :code names no company with
// "Company not found" before the handler runs. A failed lookup is
// forwarded as is.
func RequireCompany(lookup CompanyLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := lookup.Exists(c.Request.Context(), c.Param("code"))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		if !ok {
			_ = c.Error(companyerrors.ErrCompanyNotFound)
			c.Abort()
			return
		}
		c.Next()
	}
}
