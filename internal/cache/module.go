package cache

import "go.uber.org/fx"

// Module provides the tier reference cache.
var Module = fx.Provide(NewTierCache)
