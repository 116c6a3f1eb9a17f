package job

import (
	"AniHub/internal/pkg/logger"
	"AniHub/internal/repository"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// VoteRecountJob 全量重算讨论的投票计数，修正计数漂移
type VoteRecountJob struct {
	discussionRepo repository.DiscussionRepo
}

func NewVoteRecountJob(discussionRepo repository.DiscussionRepo) *VoteRecountJob {
	return &VoteRecountJob{
		discussionRepo: discussionRepo,
	}
}

func (s *VoteRecountJob) Run() {
	traceID := "job-vote-recount-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	ids, err := s.discussionRepo.GetAllIDs(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list discussion ids error", "err", err)
		return
	}

	var failed int
	for _, id := range ids {
		if err = s.discussionRepo.RecountVotes(ctx, id); err != nil {
			log.ErrorContext(ctx, "recount votes error", "discussion_id", id, "err", err)
			failed++
		}
	}

	log.InfoContext(ctx, "vote recount finished", "total", len(ids), "failed", failed)
}
