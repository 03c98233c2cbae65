package httpadapter

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const corsAllowMethods = "GET,POST,OPTIONS"
const corsAllowHeaders = "Content-Type"

// applyCORSHeaders allows any origin when origins is empty, otherwise only
// the listed ones.
func applyCORSHeaders(ctx *app.RequestContext, origins []string) {
	allow := "*"
	if len(origins) > 0 {
		allow = ""
		reqOrigin := strings.TrimSpace(string(ctx.Request.Header.Peek("Origin")))
		for _, o := range origins {
			if o == reqOrigin {
				allow = reqOrigin
				break
			}
		}
		ctx.Response.Header.Set("Vary", "Origin")
		if allow == "" {
			return
		}
	}
	ctx.Response.Header.Set("Access-Control-Allow-Origin", allow)
	ctx.Response.Header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	ctx.Response.Header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	ctx.Response.Header.Set("Access-Control-Max-Age", "600")
}

func corsMiddleware(origins []string) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		applyCORSHeaders(ctx, origins)
		if string(ctx.Method()) == consts.MethodOptions {
			ctx.AbortWithStatus(consts.StatusNoContent)
			return
		}
		ctx.Next(c)
	}
}
