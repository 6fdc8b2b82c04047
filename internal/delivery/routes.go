package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hPage *PageHandler,
	hConvert *ConvertHandler,
) {
	// --- страница ---
	r.With(httputil.RecoverMiddleware).
		Get("/", hPage.Index)

	// --- конвертация ---
	// синтез ходит во внешний сервис, поэтому вход придушен по IP
	r.With(
		httputil.RecoverMiddleware,
		httprate.LimitByIP(10, time.Minute),
	).Post("/convert", hConvert.Convert)
}
