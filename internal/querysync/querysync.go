// Package querysync maps a FilterState to and from a shareable URL query string.
//
// The mapping runs in two one-directional passes. The load pass seeds a
// state from an incoming query string exactly once; the publish pass
// serializes the current state after every transition.
package querysync

import (
	"errors"
	"net/url"
	"strings"
	"sync/atomic"

	"go-doctor-directory/internal/domain/entity"

	"github.com/gorilla/schema"
)

// Recognized query string keys
const (
	KeyConsultType = "consultType"
	KeySpecialties = "specialties"
	KeySortBy      = "sortBy"
	KeySearch      = "search"
)

const specialtySeparator = ","

var recognizedKeys = []string{KeyConsultType, KeySpecialties, KeySortBy, KeySearch}

var ErrNotLoaded = errors.New("query string published before load pass")

type queryParams struct {
	ConsultType string `schema:"consultType,omitempty"`
	Specialties string `schema:"specialties,omitempty"`
	SortBy      string `schema:"sortBy,omitempty"`
	Search      string `schema:"search,omitempty"`
}

var (
	decoder = schema.NewDecoder()
	encoder = schema.NewEncoder()
)

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// Parse decodes a FilterState from query values.
// The boolean is false when none of the recognized keys is present, in which
// case callers keep their current state. Keys match with exact case. Values
// are taken verbatim; an unrecognized sortBy is kept and later matches no
// sort branch.
func Parse(values url.Values) (entity.FilterState, bool) {
	recognized := recognizedValues(values)
	if len(recognized) == 0 {
		return entity.FilterState{}, false
	}

	var params queryParams
	if err := decoder.Decode(&params, recognized); err != nil {
		return entity.FilterState{}, false
	}

	return stateFromParams(params), true
}

// ParseQuery is Parse for a raw query string. Unparseable input counts as empty.
func ParseQuery(rawQuery string) (entity.FilterState, bool) {
	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil && len(values) == 0 {
		return entity.FilterState{}, false
	}
	return Parse(values)
}

// Encode serializes state into query values, omitting empty fields
func Encode(state entity.FilterState) url.Values {
	params := queryParams{
		ConsultType: state.ConsultType,
		Specialties: strings.Join(state.Specialties, specialtySeparator),
		SortBy:      state.SortBy,
		Search:      state.Search,
	}

	values := url.Values{}
	if err := encoder.Encode(params, values); err != nil {
		// queryParams holds strings only, the encoder cannot fail on it
		return url.Values{}
	}
	return values
}

// recognizedValues keeps only the exact-case recognized keys. The schema
// decoder matches aliases case-insensitively, so it must never see the rest.
func recognizedValues(values url.Values) url.Values {
	recognized := url.Values{}
	for _, key := range recognizedKeys {
		if v, ok := values[key]; ok {
			recognized[key] = v
		}
	}
	return recognized
}

func stateFromParams(params queryParams) entity.FilterState {
	return entity.FilterState{
		ConsultType: params.ConsultType,
		Specialties: splitSpecialties(params.Specialties),
		SortBy:      params.SortBy,
		Search:      params.Search,
	}
}

// splitSpecialties returns nil when no segment is left, matching a zero FilterState
func splitSpecialties(joined string) []string {
	if joined == "" {
		return nil
	}

	var specialties []string
	for _, specialty := range strings.Split(joined, specialtySeparator) {
		if specialty != "" {
			specialties = append(specialties, specialty)
		}
	}
	return specialties
}

// Synchronizer guards the ordering of the two passes for one owner of a FilterState.
// Load runs at most once; Publish refuses to run before it, so a deep link is
// never overwritten by default values.
type Synchronizer struct {
	loaded atomic.Bool
}

func NewSynchronizer() *Synchronizer {
	return &Synchronizer{}
}

// Load applies the load pass to current. Only the first call has any effect;
// later calls return current unchanged.
func (s *Synchronizer) Load(values url.Values, current entity.FilterState) entity.FilterState {
	if !s.loaded.CompareAndSwap(false, true) {
		return current
	}

	if state, ok := Parse(values); ok {
		return state
	}
	return current
}

// Loaded reports whether the load pass has run
func (s *Synchronizer) Loaded() bool {
	return s.loaded.Load()
}

// Publish returns the query string for state
func (s *Synchronizer) Publish(state entity.FilterState) (string, error) {
	if !s.loaded.Load() {
		return "", ErrNotLoaded
	}
	return Encode(state).Encode(), nil
}

// ResumeSynchronizer returns a Synchronizer for a state whose load pass already
// ran, such as a stored session. Its Load is a no-op.
func ResumeSynchronizer() *Synchronizer {
	s := &Synchronizer{}
	s.loaded.Store(true)
	return s
}
