package bootstrap

import (
	"context"

	"office-booking/internal/infra/notify"
	"office-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		func(cfg config.Config) config.KafkaConfig { return cfg.Kafka },
		NewKafkaNotifier,
	),
)

func NewKafkaNotifier(lc fx.Lifecycle, cfg config.KafkaConfig) *notify.KafkaNotifier {
	notifier := notify.NewKafkaNotifier(cfg)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return notifier.Close()
		},
	})

	return notifier
}
