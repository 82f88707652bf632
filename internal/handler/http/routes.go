// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withCORS)

	// public endpoints
	router.Post("/upload-data-sets", h.uploadDataSets)
	router.Post("/upload-image-data-sets", h.uploadImageDataSets)
	router.Get("/generate-image-from-user-data-sets", h.generateImageFromUserDataSets)
	router.Get("/generate-image", h.generateImage)

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)
		r.Get("/version/", h.getServerVersion)
		r.Get("/uploads", h.listUploads)
	})

	static := h.staticFiles()
	router.Get("/*", static.ServeHTTP)
	router.Head("/*", static.ServeHTTP)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
