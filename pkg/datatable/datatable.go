// Package datatable implements the server-side contract of a jQuery
// DataTables listing: one paginated, sortable, accent-insensitive search
// over an allow-listed column set, reusable by every entity module.
package datatable

import "errors"

// ErrInvalidQueryParameter reports a request referencing a column outside
// the descriptor's allow-list or an out-of-range sort index. It is never
// silently defaulted; callers surface it to the client.
var ErrInvalidQueryParameter = errors.New("invalid query parameter")

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

const defaultLimit = 10

// Request carries the page/sort/search parameters of one listing call.
// Draw is an opaque token echoed back unchanged so the client can discard
// out-of-order responses.
type Request struct {
	Draw       string
	Offset     int
	Limit      int
	Search     string
	SortColumn int
	SortDir    Direction
}

func (r Request) normalized() Request {
	if r.Limit <= 0 {
		r.Limit = defaultLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	if r.SortDir != Desc {
		r.SortDir = Asc
	}
	return r
}

// Result is the response payload expected by DataTables.
type Result[T any] struct {
	Draw            string `json:"draw"`
	RecordsTotal    int64  `json:"recordsTotal"`
	RecordsFiltered int64  `json:"recordsFiltered"`
	Data            []T    `json:"data"`
}
