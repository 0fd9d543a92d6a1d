package middleware

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// CORS restricts cross-origin callers to the configured origin list.
// Requests without an Origin header (curl, health probes) pass through.
func CORS(allowedOrigins []string, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			origin := string(ctx.Request.Header.Peek("Origin"))
			if origin == "" {
				next(ctx)
				return
			}
			if _, ok := allowed[origin]; !ok {
				logger.Warn("blocked cross-origin request", zap.String("origin", origin))
				ctx.SetStatusCode(fasthttp.StatusForbidden)
				ctx.SetBodyString(`{"error":"Not allowed by CORS"}`)
				ctx.Response.Header.SetContentType("application/json")
				return
			}

			ctx.Response.Header.Set("Access-Control-Allow-Origin", origin)
			ctx.Response.Header.Set("Access-Control-Allow-Credentials", "true")
			ctx.Response.Header.Set("Vary", "Origin")

			if string(ctx.Method()) == fasthttp.MethodOptions {
				ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
				ctx.SetStatusCode(fasthttp.StatusOK)
				return
			}

			next(ctx)
		}
	}
}
