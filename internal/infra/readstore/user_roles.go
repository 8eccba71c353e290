package readstore

import (
	"context"

	"office-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRoleReadStore answers the role-activation question behind desk
// restrictions: a permitted-roles list only takes effect once at least one
// user in the system holds one of those roles.
type UserRoleReadStore struct {
	pool *pgxpool.Pool
}

func NewUserRoleReadStore(pool *pgxpool.Pool) *UserRoleReadStore {
	return &UserRoleReadStore{pool: pool}
}

// RolesInUse returns the subset of the given roles currently held by at
// least one user.
func (s *UserRoleReadStore) RolesInUse(ctx context.Context, roles []string) (map[string]struct{}, error) {
	inUse := make(map[string]struct{})
	if len(roles) == 0 {
		return inUse, nil
	}

	rows, err := s.pool.Query(ctx, `SELECT DISTINCT role FROM user_roles WHERE role = ANY($1)`, roles)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read roles in use", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, infra.WrapRepoErr("failed to scan role", err)
		}
		inUse[role] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate roles", err)
	}
	return inUse, nil
}
