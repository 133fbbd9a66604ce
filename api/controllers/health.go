package controllers

import (
	"context"
	"net/http"

	"github.com/Soloken19/shapewear-dev/api/responses"
	"github.com/Soloken19/shapewear-dev/pkg/config"
	pkgerrors "github.com/Soloken19/shapewear-dev/pkg/errors"
	"github.com/Soloken19/shapewear-dev/pkg/logger"
)

// StorePinger is the slice of the cart store the health check needs.
type StorePinger interface {
	Ping(ctx context.Context) error
}

func Health(cfg *config.Config, store StorePinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-CurveCraft-Env", cfg.App.Env)

		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cart store unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{
			"status": "ok",
			"store":  cfg.Store.NormalizedDriver(),
		})
	}
}
