package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/postline/internal/parser"
	"github.com/postline/internal/validation"
)

// maxBodyBytes bounds request bodies; addresses are short.
const maxBodyBytes = 64 << 10

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config represents the parse defaults of the service. Request options
// override them field by field.
type Config struct {
	Defaults parser.Options
}

// Recorder receives one observation per parse call.
type Recorder interface {
	ObserveParse(endpoint, outcome string)
}

// APIHandler serves the parsing endpoints
type APIHandler struct {
	Config   *Config
	Recorder Recorder
}

// ParseRequest is the body of every POST parse endpoint.
type ParseRequest struct {
	Address string          `json:"address" validate:"required,max=2048"`
	Options *OptionsRequest `json:"options,omitempty"`
}

// OptionsRequest carries per-request overrides. Absent fields keep the
// service default.
type OptionsRequest struct {
	Country            *string `json:"country,omitempty"`
	Strict             *bool   `json:"strict,omitempty"`
	ValidatePostalCode *bool   `json:"validate_postal_code,omitempty"`
	ExtractFacilities  *bool   `json:"extract_facilities,omitempty"`
	ParseParenthetical *bool   `json:"parse_parenthetical,omitempty"`
	KeyStyle           *string `json:"key_style,omitempty"`
}

// ParseResponse wraps a parse result with its kind.
type ParseResponse struct {
	Kind   parser.Kind    `json:"kind"`
	Result map[string]any `json:"result"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// Apply returns base with the present overrides applied.
func (o *OptionsRequest) Apply(base parser.Options) parser.Options {
	if o == nil {
		return base
	}
	if o.Country != nil {
		base.Country = *o.Country
		if strings.EqualFold(base.Country, parser.CountryAuto) {
			base.Country = parser.CountryAuto
		} else {
			base.Country = strings.ToUpper(base.Country)
		}
	}
	if o.Strict != nil {
		base.Strict = *o.Strict
	}
	if o.ValidatePostalCode != nil {
		base.ValidatePostalCode = *o.ValidatePostalCode
	}
	if o.ExtractFacilities != nil {
		base.ExtractFacilities = *o.ExtractFacilities
	}
	if o.ParseParenthetical != nil {
		base.ParseParenthetical = *o.ParseParenthetical
	}
	if o.KeyStyle != nil {
		base.KeyStyle = parser.KeyStyle(strings.ToLower(*o.KeyStyle))
	}
	return base
}

// ParseLocation handles POST /api/parse: full classification and dispatch.
func (h *APIHandler) ParseLocation(w http.ResponseWriter, r *http.Request) {
	h.serveParse(w, r, "parse", parser.ParseLocation)
}

// ParseIntersection handles POST /api/intersection
func (h *APIHandler) ParseIntersection(w http.ResponseWriter, r *http.Request) {
	h.serveParse(w, r, "intersection", func(s string, o parser.Options) parser.Result {
		if res := parser.ParseIntersection(s, o); res != nil {
			return res
		}
		return nil
	})
}

// ParseInformal handles POST /api/informal
func (h *APIHandler) ParseInformal(w http.ResponseWriter, r *http.Request) {
	h.serveParse(w, r, "informal", func(s string, o parser.Options) parser.Result {
		if res := parser.ParseInformalAddress(s, o); res != nil {
			return res
		}
		return nil
	})
}

// ParsePoBox handles POST /api/pobox
func (h *APIHandler) ParsePoBox(w http.ResponseWriter, r *http.Request) {
	h.serveParse(w, r, "pobox", func(s string, o parser.Options) parser.Result {
		if res := parser.ParsePoBox(s, o); res != nil {
			return res
		}
		return nil
	})
}

// ValidatePostal handles GET /api/postal/{code}. Invalid codes are still a
// 200: the result says so.
func (h *APIHandler) ValidatePostal(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	writeJSON(w, http.StatusOK, validation.ValidatePostalCode(code))
}

// Health handles GET /health
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *APIHandler) serveParse(w http.ResponseWriter, r *http.Request, endpoint string, parse func(string, parser.Options) parser.Result) {
	logger := zerolog.Ctx(r.Context())

	var req ParseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request: %w", err))
		return
	}

	opts := req.Options.Apply(h.defaults())
	if err := opts.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := parse(req.Address, opts)
	if res == nil {
		h.observe(endpoint, "none")
		logger.Debug().Str("endpoint", endpoint).Msg("no parse")
		writeError(w, http.StatusUnprocessableEntity, parser.ErrNoParse)
		return
	}

	h.observe(endpoint, string(res.Kind()))
	writeJSON(w, http.StatusOK, ParseResponse{Kind: res.Kind(), Result: res.ToMap(opts.KeyStyle)})
}

func (h *APIHandler) defaults() parser.Options {
	if h.Config == nil {
		return parser.DefaultOptions()
	}
	return h.Config.Defaults
}

func (h *APIHandler) observe(endpoint, outcome string) {
	if h.Recorder != nil {
		h.Recorder.ObserveParse(endpoint, outcome)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Error = http.StatusText(status)
		for _, fe := range verrs {
			resp.Details = append(resp.Details, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
	}
	writeJSON(w, status, resp)
}
