package components

import (
	"context"

	"office-booking/internal/infra/cache"
	"office-booking/internal/infra/notify"
	"office-booking/internal/infra/officeconfig"
	"office-booking/internal/infra/readstore"
	"office-booking/internal/infra/repository"
	"office-booking/internal/usecase/commands"
	"office-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewOfficeProvider,
		repository.NewVisitRepository,
		repository.NewRoomReservationRepository,
		readstore.NewVisitReadStore,
		readstore.NewRoomReservationReadStore,
		readstore.NewUserRoleReadStore,

		// Interface bindings for the usecase layer.
		func(p *officeconfig.Provider) queries.OfficeProvider { return p },
		func(p *officeconfig.Provider) commands.OfficeProvider { return p },
		func(r *repository.VisitRepository) commands.VisitRepository { return r },
		func(r *repository.RoomReservationRepository) commands.RoomReservationRepository { return r },
		func(s *readstore.VisitReadStore) queries.VisitReads { return s },
		func(s *readstore.RoomReservationReadStore) queries.ReservationReads { return s },
		func(s *readstore.UserRoleReadStore) queries.RoleReads { return s },
		func(s *readstore.UserRoleReadStore) commands.RoleReads { return s },
		func(c *cache.AvailabilityCache) commands.CacheInvalidator { return c },
		func(n *notify.KafkaNotifier) commands.Notifier { return n },
	),
)

// NewOfficeProvider loads the whole office catalog once at startup. Config
// changes ship as a restart.
func NewOfficeProvider(pool *pgxpool.Pool) (*officeconfig.Provider, error) {
	return officeconfig.Load(context.Background(), pool)
}
