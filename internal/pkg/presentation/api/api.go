package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/huertapp/plant-mgmt/internal/pkg/application"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/environments"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/failure"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/plants"
	"github.com/huertapp/plant-mgmt/internal/pkg/application/sensors"
	"github.com/huertapp/plant-mgmt/internal/pkg/infrastructure/metrics"
	"github.com/huertapp/plant-mgmt/internal/pkg/presentation/api/auth"
	"github.com/huertapp/plant-mgmt/pkg/types"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("plant-mgmt/api")

var errBadRequest = errors.New("bad request")

// handlerFunc is an http handler that reports its outcome as an error. Errors
// from the failure package are mapped to a status, anything else becomes a 500.
type handlerFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error

func RegisterHandlers(ctx context.Context, router *chi.Mux, authenticator func(http.Handler) http.Handler, app application.App, m *metrics.Metrics) *chi.Mux {
	log := logging.GetFromContext(ctx)

	h := func(operation string, fn handlerFunc) http.HandlerFunc {
		return instrument(log, m, operation, fn)
	}

	router.Route("/api/v0", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Route("/environments", func(r chi.Router) {
				r.Post("/", h("create-environment", createEnvironmentHandler(app.Environments)))
				r.Get("/", h("list-environments", listEnvironmentsHandler(app.Environments)))
				r.Patch("/{environmentID}", h("update-environment", patchEnvironmentHandler(app.Environments)))
			})

			r.Get("/planttypes", h("list-plant-types", listPlantTypesHandler(app.Plants)))

			r.Route("/plants", func(r chi.Router) {
				r.Post("/", h("add-plant", addPlantHandler(app.Plants)))
				r.Get("/", h("list-plants", listPlantsHandler(app.Plants)))

				r.Route("/{plantID}", func(r chi.Router) {
					r.Delete("/", h("delete-plant", deletePlantHandler(app.Plants)))
					r.Patch("/", h("update-plant", patchPlantHandler(app.Plants)))
					r.Put("/photo", h("update-photo", updatePhotoHandler(app.Plants)))

					r.Put("/module", h("connect-module", connectModuleHandler(app.Plants, app.Sensors)))
					r.Delete("/module", h("disconnect-module", disconnectModuleHandler(app.Sensors)))

					r.Post("/readings", h("record-reading", recordReadingHandler(app.Sensors)))
					r.Get("/readings", h("list-readings", listReadingsHandler(app.Sensors)))
					r.Get("/readings/latest", h("latest-reading", latestReadingHandler(app.Sensors)))

					r.Post("/waterings", h("record-watering", recordWateringHandler(app.Sensors)))
					r.Get("/waterings/latest", h("latest-watering", latestWateringHandler(app.Sensors)))
				})
			})
		})
	})

	return router
}

func instrument(log zerolog.Logger, m *metrics.Metrics, operation string, fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), operation)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log.With().Str("operation", operation).Logger(), ctx)

		userID, ok := auth.UserFromContext(ctx)
		if !ok {
			err = errors.New("no authenticated user in request")
			requestLogger.Error().Err(err).Msg("authenticator not installed")
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: http.StatusText(http.StatusUnauthorized)})
			return
		}

		err = fn(ctx, w, r, userID)

		outcome := "ok"
		if err != nil {
			outcome = writeError(requestLogger, w, err)
		}

		m.Observe(operation, outcome)
	}
}

func writeError(log zerolog.Logger, w http.ResponseWriter, err error) string {
	if errors.Is(err, errBadRequest) {
		log.Debug().Err(err).Msg("bad request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return failure.InvalidInput.String()
	}

	kind := failure.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case failure.InvalidInput:
		status = http.StatusBadRequest
	case failure.NotFound:
		status = http.StatusNotFound
	case failure.Forbidden:
		status = http.StatusForbidden
	case failure.Conflict:
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("kind", kind.String()).Msg("request rejected")
	}

	writeJSON(w, status, errorResponse{Message: failure.MessageOf(err)})

	return kind.String()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func decode(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("%w: unable to read body", errBadRequest)
	}

	err = json.Unmarshal(body, v)
	if err != nil {
		return fmt.Errorf("%w: unable to unmarshal body", errBadRequest)
	}

	return nil
}

func idParam(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", errBadRequest, name)
	}
	return id, nil
}

func createEnvironmentHandler(svc environments.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		var req environmentRequest
		if err := decode(r, &req); err != nil {
			return err
		}

		id, err := svc.Create(ctx, userID, req.Name)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusCreated, ApiResponse{Data: createdResponse{ID: id}})
		return nil
	}
}

func listEnvironmentsHandler(svc environments.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		envs, err := svc.List(ctx, userID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, collection(envs, nil))
		return nil
	}
}

func patchEnvironmentHandler(svc environments.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		environmentID, err := idParam(r, "environmentID")
		if err != nil {
			return err
		}

		var update types.EnvironmentUpdate
		if err := decode(r, &update); err != nil {
			return err
		}

		env, err := svc.Update(ctx, environmentID, userID, update)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: env})
		return nil
	}
}

func listPlantTypesHandler(svc plants.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantTypes, err := svc.Types(ctx)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, collection(plantTypes, nil))
		return nil
	}
}

func addPlantHandler(svc plants.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		var req plantRequest
		if err := decode(r, &req); err != nil {
			return err
		}

		id, err := svc.Add(ctx, req.Name, req.Type, req.EnvironmentID, userID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusCreated, ApiResponse{Data: createdResponse{ID: id}})
		return nil
	}
}

func listPlantsHandler(svc plants.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		list, err := svc.List(ctx, userID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, collection(list, nil))
		return nil
	}
}

func deletePlantHandler(svc plants.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		if err := svc.Delete(ctx, plantID, userID); err != nil {
			return err
		}

		w.WriteHeader(http.StatusNoContent)
		return nil
	}
}

func patchPlantHandler(svc plants.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		var update types.PlantUpdate
		if err := decode(r, &update); err != nil {
			return err
		}

		p, err := svc.Update(ctx, plantID, userID, update)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: p})
		return nil
	}
}

func updatePhotoHandler(svc plants.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		var req photoRequest
		if err := decode(r, &req); err != nil {
			return err
		}

		photo, err := svc.UpdatePhoto(ctx, req.Photo, plantID, userID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: photoResponse{Photo: photo}})
		return nil
	}
}

// connectModuleHandler requires the caller to own the plant before the module
// is bound to it.
func connectModuleHandler(plantSvc plants.Service, svc sensors.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		var req moduleRequest
		if err := decode(r, &req); err != nil {
			return err
		}

		if err := plantSvc.Authorize(ctx, plantID, userID); err != nil {
			return err
		}

		id, err := svc.ConnectModule(ctx, plantID, req.ModuleID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: createdResponse{ID: id}})
		return nil
	}
}

func disconnectModuleHandler(svc sensors.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		ids, err := svc.DisconnectModule(ctx, plantID, userID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: disconnectResponse{IDs: ids}})
		return nil
	}
}

func recordReadingHandler(svc sensors.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		var req readingRequest
		if err := decode(r, &req); err != nil {
			return err
		}

		if req.Temperature == nil || req.Humidity == nil {
			return fmt.Errorf("%w: temperature and humidity are required", errBadRequest)
		}

		reg, err := svc.RecordReading(ctx, plantID, *req.Temperature, *req.Humidity, req.Timestamp, userID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusCreated, ApiResponse{Data: reg})
		return nil
	}
}

func listReadingsHandler(svc sensors.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		limit := 0
		if l := r.URL.Query().Get("limit"); l != "" {
			limit, err = strconv.Atoi(l)
			if err != nil {
				return fmt.Errorf("%w: limit must be an integer", errBadRequest)
			}
		}

		regs, err := svc.Readings(ctx, plantID, userID, limit)
		if err != nil {
			return err
		}

		var limitPtr *int
		if limit > 0 {
			limitPtr = &limit
		}

		writeJSON(w, http.StatusOK, collection(regs, limitPtr))
		return nil
	}
}

func latestReadingHandler(svc sensors.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		reg, err := svc.LatestReading(ctx, plantID, userID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: reg})
		return nil
	}
}

func recordWateringHandler(svc sensors.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		var req wateringRequest
		if err := decode(r, &req); err != nil {
			return err
		}

		if req.Duration == nil {
			return fmt.Errorf("%w: duration is required", errBadRequest)
		}

		reg, err := svc.RecordWatering(ctx, plantID, req.Timestamp, *req.Duration, userID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusCreated, ApiResponse{Data: reg})
		return nil
	}
}

func latestWateringHandler(svc sensors.Service) handlerFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int) error {
		plantID, err := idParam(r, "plantID")
		if err != nil {
			return err
		}

		reg, err := svc.LatestWatering(ctx, plantID, userID)
		if err != nil {
			return err
		}

		writeJSON(w, http.StatusOK, ApiResponse{Data: reg})
		return nil
	}
}
