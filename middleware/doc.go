// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms) through log/slog.

# CORS Middleware

Lets spectator pages on another origin poll the display routes:

	handler := middleware.CORS(mux)

Allows GET, POST, OPTIONS with headers Content-Type and X-Presenter-Key.

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.TextResponse(w, http.StatusOK, standings)
	middleware.ErrorResponse(w, http.StatusConflict, "message")

Parse JSON request bodies:

	var req models.AssignPointRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

GetClientIP returns the original client IP (X-Forwarded-For, X-Real-IP,
then RemoteAddr) for request logs.
*/
package middleware
