package postgre

import (
	"fmt"
	"strings"

	repo "storefront/internal/user/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneUser.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
	}

	if len(conditions) == 0 {
		return "", nil, repo.ErrNoFilter
	}
	return strings.Join(conditions, " AND "), args, nil
}
