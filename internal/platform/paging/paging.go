package paging

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultLimit es el tamaño de página cuando el cliente no envía limit.
const DefaultLimit = 10

var ErrInvalidParam = errors.New("invalid pagination parameter")

// Request describe una ventana offset/limit ya normalizada.
// Limit == 0 significa "sin tope"; Offset == 0 significa "sin salto".
type Request struct {
	Offset int
	Limit  int
}

// All devuelve una ventana que cubre toda la colección.
func All() Request { return Request{} }

// New normaliza valores crudos: negativos se tratan como 0.
func New(offset, limit int) Request {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	return Request{Offset: offset, Limit: limit}
}

// Unbounded indica si la página no tiene tope.
func (r Request) Unbounded() bool { return r.Limit <= 0 }

// FromQuery lee skip (alias offset) y limit de la query string.
// Si limit no viene, se usa DefaultLimit.
func FromQuery(q url.Values) (Request, error) {
	offset, err := intParam(q, "skip", "offset")
	if err != nil {
		return Request{}, err
	}

	limit := DefaultLimit
	if v := strings.TrimSpace(q.Get("limit")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Request{}, fmt.Errorf("%w: limit must be an integer", ErrInvalidParam)
		}
		limit = n
	}

	return New(offset, limit), nil
}

func intParam(q url.Values, names ...string) (int, error) {
	for _, name := range names {
		v := strings.TrimSpace(q.Get(name))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidParam, name)
		}
		return n, nil
	}
	return 0, nil
}

// Slice recorta items (ya ordenados por inserción) a la ventana pedida.
func Slice[T any](items []T, r Request) []T {
	r = New(r.Offset, r.Limit)
	if r.Offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if !r.Unbounded() && r.Offset+r.Limit < end {
		end = r.Offset + r.Limit
	}
	out := make([]T, end-r.Offset)
	copy(out, items[r.Offset:end])
	return out
}
