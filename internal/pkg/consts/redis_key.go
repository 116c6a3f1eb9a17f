package consts

const (
	PlatformListKey  = "platform:list:"
	AnimePlatformKey = "platform:anime:"
	AnimeSearchKey   = "anime:search:"
	AnimeDetailKey   = "anime:detail:"
)
