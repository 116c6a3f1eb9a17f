package service_test

import (
	"AniHub/internal/api/dto"
	"AniHub/internal/repository"
	"AniHub/internal/service"
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func newDiscussionService(t *testing.T) (service.DiscussionService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewDiscussionService(repository.NewDiscussionRepo(db)), db
}

func seedDiscussion(t *testing.T, svc service.DiscussionService, userID uint64) *dto.DiscussionDTO {
	t.Helper()
	discussion, err := svc.Create(context.Background(), userID, &dto.DiscussionCreateDTO{
		Title:   "Best OP of the season?",
		Content: "Sousou no Frieren, no contest.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return discussion
}

func TestDiscussionCreateCarriesAuthor(t *testing.T) {
	svc, db := newDiscussionService(t)
	userID := seedUser(t, db, "alice@example.com", "alice")

	discussion := seedDiscussion(t, svc, userID)
	if discussion.Username != "alice" {
		t.Fatalf("expected author username, got %q", discussion.Username)
	}
	if discussion.AgreeCount != 0 || discussion.DisagreeCount != 0 {
		t.Fatalf("fresh discussion should have zero counts: %+v", discussion)
	}
}

func TestVoteToggle(t *testing.T) {
	svc, db := newDiscussionService(t)
	authorID := seedUser(t, db, "alice@example.com", "alice")
	voterID := seedUser(t, db, "bob@example.com", "bob")
	ctx := context.Background()
	discussion := seedDiscussion(t, svc, authorID)

	// 首次投票
	result, err := svc.Vote(ctx, discussion.ID, voterID, "agree")
	if err != nil {
		t.Fatalf("Vote: %v", err)
	}
	if result.AgreeCount != 1 || result.DisagreeCount != 0 {
		t.Fatalf("after agree: %+v", result)
	}
	if result.UserVote == nil || *result.UserVote != "agree" {
		t.Fatalf("expected userVote agree, got %v", result.UserVote)
	}

	// 换边
	result, err = svc.Vote(ctx, discussion.ID, voterID, "disagree")
	if err != nil {
		t.Fatalf("Vote change: %v", err)
	}
	if result.AgreeCount != 0 || result.DisagreeCount != 1 {
		t.Fatalf("after change: %+v", result)
	}
	if result.UserVote == nil || *result.UserVote != "disagree" {
		t.Fatalf("expected userVote disagree, got %v", result.UserVote)
	}

	// 同类投票撤销
	result, err = svc.Vote(ctx, discussion.ID, voterID, "disagree")
	if err != nil {
		t.Fatalf("Vote toggle off: %v", err)
	}
	if result.AgreeCount != 0 || result.DisagreeCount != 0 {
		t.Fatalf("after toggle off: %+v", result)
	}
	if result.UserVote != nil {
		t.Fatalf("expected no userVote after removal, got %v", *result.UserVote)
	}
}

func TestVoteCountsPerUser(t *testing.T) {
	svc, db := newDiscussionService(t)
	authorID := seedUser(t, db, "alice@example.com", "alice")
	ctx := context.Background()
	discussion := seedDiscussion(t, svc, authorID)

	voters := []uint64{
		seedUser(t, db, "bob@example.com", "bob"),
		seedUser(t, db, "carol@example.com", "carol"),
		seedUser(t, db, "dave@example.com", "dave"),
	}
	for _, voterID := range voters {
		if _, err := svc.Vote(ctx, discussion.ID, voterID, "agree"); err != nil {
			t.Fatalf("Vote: %v", err)
		}
	}
	if _, err := svc.Vote(ctx, discussion.ID, voters[0], "disagree"); err != nil {
		t.Fatalf("Vote change: %v", err)
	}

	result, err := svc.GetByID(ctx, discussion.ID, voters[0])
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if result.AgreeCount != 2 || result.DisagreeCount != 1 {
		t.Fatalf("expected 2/1, got %d/%d", result.AgreeCount, result.DisagreeCount)
	}
	if result.UserVote == nil || *result.UserVote != "disagree" {
		t.Fatalf("expected viewer vote disagree, got %v", result.UserVote)
	}

	// 匿名访问不带 userVote
	anonymous, err := svc.GetByID(ctx, discussion.ID, 0)
	if err != nil {
		t.Fatalf("GetByID anonymous: %v", err)
	}
	if anonymous.UserVote != nil {
		t.Fatal("anonymous view should not carry userVote")
	}
}

func TestVoteUnknownDiscussion(t *testing.T) {
	svc, db := newDiscussionService(t)
	userID := seedUser(t, db, "alice@example.com", "alice")

	_, err := svc.Vote(context.Background(), 9999, userID, "agree")
	if !errors.Is(err, service.ErrDiscussionNotFound) {
		t.Fatalf("expected ErrDiscussionNotFound, got %v", err)
	}
}

func TestComments(t *testing.T) {
	svc, db := newDiscussionService(t)
	authorID := seedUser(t, db, "alice@example.com", "alice")
	commenterID := seedUser(t, db, "bob@example.com", "bob")
	ctx := context.Background()
	discussion := seedDiscussion(t, svc, authorID)

	comment, err := svc.CreateComment(ctx, discussion.ID, commenterID, &dto.CommentCreateDTO{Content: "Hard agree."})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if comment.Username != "bob" {
		t.Fatalf("expected commenter username, got %q", comment.Username)
	}

	comments, err := svc.GetComments(ctx, discussion.ID)
	if err != nil {
		t.Fatalf("GetComments: %v", err)
	}
	if len(comments) != 1 || comments[0].ID != comment.ID {
		t.Fatalf("unexpected comments: %+v", comments)
	}
}

func TestCommentOnUnknownDiscussion(t *testing.T) {
	svc, db := newDiscussionService(t)
	userID := seedUser(t, db, "alice@example.com", "alice")

	_, err := svc.CreateComment(context.Background(), 9999, userID, &dto.CommentCreateDTO{Content: "hi"})
	if !errors.Is(err, service.ErrDiscussionNotFound) {
		t.Fatalf("expected ErrDiscussionNotFound, got %v", err)
	}
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	svc, db := newDiscussionService(t)
	authorID := seedUser(t, db, "alice@example.com", "alice")
	otherID := seedUser(t, db, "bob@example.com", "bob")
	ctx := context.Background()
	discussion := seedDiscussion(t, svc, authorID)

	comment, err := svc.CreateComment(ctx, discussion.ID, authorID, &dto.CommentCreateDTO{Content: "mine"})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if err = svc.DeleteComment(ctx, comment.ID, otherID); !errors.Is(err, service.ErrNotCommentAuthor) {
		t.Fatalf("expected ErrNotCommentAuthor, got %v", err)
	}
	if err = svc.DeleteComment(ctx, comment.ID, authorID); err != nil {
		t.Fatalf("DeleteComment by author: %v", err)
	}
	if err = svc.DeleteComment(ctx, comment.ID, authorID); !errors.Is(err, service.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound after delete, got %v", err)
	}
}
