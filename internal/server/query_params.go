package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kgsoft/estoque/pkg/datatable"
)

// parseDatatableQuery decodes the flat query encoding DataTables uses for
// server-side processing: draw, start, length, search[value] and
// order[0][column] / order[0][dir].
func parseDatatableQuery(c *gin.Context) (datatable.Request, error) {
	req := datatable.Request{
		Draw:   strings.TrimSpace(c.Query("draw")),
		Search: c.Query("search[value]"),
	}

	var err error
	if req.Offset, err = intQuery(c, "start", 0); err != nil {
		return datatable.Request{}, err
	}
	if req.Limit, err = intQuery(c, "length", 10); err != nil {
		return datatable.Request{}, err
	}
	if req.SortColumn, err = intQuery(c, "order[0][column]", 0); err != nil {
		return datatable.Request{}, err
	}

	switch strings.ToLower(strings.TrimSpace(c.Query("order[0][dir]"))) {
	case "", "asc":
		req.SortDir = datatable.Asc
	case "desc":
		req.SortDir = datatable.Desc
	default:
		return datatable.Request{}, fmt.Errorf("%w: order[0][dir]", datatable.ErrInvalidQueryParameter)
	}

	return req, nil
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", datatable.ErrInvalidQueryParameter, name)
	}
	return value, nil
}
