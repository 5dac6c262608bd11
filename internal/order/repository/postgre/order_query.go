package postgre

import (
	"fmt"
	"strings"

	repo "storefront/internal/order/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneOrder.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneOrderOptions) (string, []any, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
	}

	if len(conditions) == 0 {
		return "", nil, repo.ErrNoFilter
	}
	return strings.Join(conditions, " AND "), args, nil
}
