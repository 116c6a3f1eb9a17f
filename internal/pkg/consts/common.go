package consts

// 追番条目的五种状态
const (
	TrackerStatusWatching    = "watching"
	TrackerStatusCompleted   = "completed"
	TrackerStatusOnHold      = "on-hold"
	TrackerStatusDropped     = "dropped"
	TrackerStatusPlanToWatch = "plan-to-watch"
)

// 讨论投票的两种类型
const (
	VoteTypeAgree    = "agree"
	VoteTypeDisagree = "disagree"
)

// 平台可用性状态
const (
	AvailabilityAvailable = "available"
	AvailabilityUpcoming  = "upcoming"
	AvailabilityExpired   = "expired"
)

const DefaultRegion = "US"
