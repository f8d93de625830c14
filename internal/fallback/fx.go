package fallback

import (
	"go.uber.org/fx"
)

var Module = fx.Module("fallback_store",
	fx.Provide(
		NewFile,
		fx.Annotate(
			func(store *File) Store {
				return store
			},
			fx.As(new(Store)),
		),
	),
)
