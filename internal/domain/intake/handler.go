package intake

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"pet-intake/internal/middleware"
	"pet-intake/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 64 << 10

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/intake", func(ir chi.Router) {
		ir.Get("/options", optionsHandler(svc))

		ir.Post("/details", submitHandler(svc, decodeDetails))
		ir.Post("/details/preview", previewHandler(svc, decodeDetails))

		ir.Post("/quick", submitHandler(svc, decodeQuick))
		ir.Post("/quick/preview", previewHandler(svc, decodeQuick))
	})
}

// Los requests solo acotan largos. Números mal formados y respuestas
// desconocidas pasan: el normalizer los degrada a defaults.

type additionalDetailsRequest struct {
	MicroChipped         string `json:"microChipped" validate:"max=16"`
	SpayedNeutered       string `json:"spayedNeutered" validate:"max=16"`
	FriendlyWithChildren string `json:"friendlyWithChildren" validate:"max=16"`
	FriendlyWithDogs     string `json:"friendlyWithDogs" validate:"max=16"`
	FriendlyWithCats     string `json:"friendlyWithCats" validate:"max=16"`
}

type contextRequest struct {
	PetType  string `json:"petType" validate:"max=32"`
	Dates    string `json:"dates" validate:"max=128"`
	Location string `json:"location" validate:"max=256"`
}

type detailsRequest struct {
	Context           contextRequest           `json:"context"`
	Name              string                   `json:"name" validate:"max=100"`
	Breed             string                   `json:"breed" validate:"max=100"`
	Weight            string                   `json:"weight" validate:"max=16"`
	AgeYears          string                   `json:"ageYears" validate:"max=8"`
	AgeMonths         string                   `json:"ageMonths" validate:"max=8"`
	Sex               string                   `json:"sex" validate:"max=16"`
	AdditionalDetails additionalDetailsRequest `json:"additionalDetails"`
}

type quickRequest struct {
	Context          contextRequest `json:"context"`
	Name             string         `json:"name" validate:"max=100"`
	Size             string         `json:"size" validate:"max=32"`
	Age              string         `json:"age" validate:"max=32"`
	FriendlyWithDogs string         `json:"friendlyWithDogs" validate:"max=16"`
	FriendlyWithCats string         `json:"friendlyWithCats" validate:"max=16"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// decodeFunc lee el body de una variante y lo convierte a Form + contexto.
type decodeFunc func(r *http.Request) (Form, EntryContext, error)

func decodeDetails(r *http.Request) (Form, EntryContext, error) {
	var req detailsRequest
	if err := decodeJSON(r, &req); err != nil {
		return Form{}, EntryContext{}, err
	}
	return Form{
		Variant:              VariantDetails,
		Name:                 req.Name,
		Breed:                req.Breed,
		Weight:               req.Weight,
		AgeYears:             req.AgeYears,
		AgeMonths:            req.AgeMonths,
		Sex:                  req.Sex,
		MicroChipped:         req.AdditionalDetails.MicroChipped,
		SpayedNeutered:       req.AdditionalDetails.SpayedNeutered,
		FriendlyWithChildren: req.AdditionalDetails.FriendlyWithChildren,
		FriendlyWithDogs:     req.AdditionalDetails.FriendlyWithDogs,
		FriendlyWithCats:     req.AdditionalDetails.FriendlyWithCats,
	}, toEntryContext(req.Context), nil
}

func decodeQuick(r *http.Request) (Form, EntryContext, error) {
	var req quickRequest
	if err := decodeJSON(r, &req); err != nil {
		return Form{}, EntryContext{}, err
	}
	return Form{
		Variant:          VariantQuick,
		Name:             req.Name,
		SizeKey:          req.Size,
		AgeKey:           req.Age,
		FriendlyWithDogs: req.FriendlyWithDogs,
		FriendlyWithCats: req.FriendlyWithCats,
	}, toEntryContext(req.Context), nil
}

var errInvalidJSON = errors.New("invalid json")

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errInvalidJSON
	}
	return validate.Struct(dst)
}

func toEntryContext(c contextRequest) EntryContext {
	return EntryContext{
		PetType:  strings.TrimSpace(c.PetType),
		Dates:    strings.TrimSpace(c.Dates),
		Location: strings.TrimSpace(c.Location),
	}
}

// submitHandler godoc
// @Summary  Normaliza el formulario y crea la mascota
// @Tags     intake
// @Accept   json
// @Produce  json
// @Param    body body detailsRequest true "formulario details (o quickRequest en /intake/quick)"
// @Success  201 {object} Result
// @Failure  400 {object} errorResponse
// @Failure  401 {object} errorResponse
// @Failure  403 {object} errorResponse
// @Failure  502 {object} errorResponse
// @Router   /intake/details [post]
// @Router   /intake/quick [post]
func submitHandler(svc *Service, decode decodeFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		form, entry, err := decode(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		res, err := svc.Submit(r.Context(), claims.UserID, form, entry)
		if err != nil {
			var ce *CreateError
			switch {
			case errors.Is(err, ErrUnauthenticated):
				writeError(w, http.StatusUnauthorized, "unauthorized")
			case errors.Is(err, ErrForbidden):
				writeError(w, http.StatusForbidden, "forbidden")
			case errors.As(err, &ce):
				writeError(w, http.StatusBadGateway, ce.Message)
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, res)
	}
}

// previewHandler godoc
// @Summary  Devuelve el record canónico sin enviarlo
// @Tags     intake
// @Accept   json
// @Produce  json
// @Success  200 {object} Record
// @Failure  400 {object} errorResponse
// @Router   /intake/details/preview [post]
// @Router   /intake/quick/preview [post]
func previewHandler(svc *Service, decode decodeFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form, entry, err := decode(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		rec := svc.Preview(form, entry)
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			rec.UserID = strings.TrimSpace(claims.UserID)
		}
		writeJSON(w, http.StatusOK, rec)
	}
}

// optionsHandler godoc
// @Summary  Opciones de tamaño y edad para la pantalla quick
// @Tags     intake
// @Produce  json
// @Success  200 {object} Options
// @Router   /intake/options [get]
func optionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Options())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
