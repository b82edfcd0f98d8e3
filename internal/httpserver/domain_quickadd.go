package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-quick-add/internal/middleware"
	quickaddHTTP "smart-quick-add/internal/quickadd/delivery/http"
)

// setupQuickAddDomain registers /api/v1/quick-add/*.
func (srv HTTPServer) setupQuickAddDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := quickaddHTTP.New(srv.l, srv.quickAddUC)
	quickaddHTTP.RegisterRoutes(api.Group("/quick-add"), h, mw)

	srv.l.Infof(ctx, "Quick-add domain registered (rate limit %d/min)", srv.rateLimitPerMin)
	return nil
}
