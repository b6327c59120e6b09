package logic

import (
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/spaolacci/murmur3"
	"html"
	"post_bot/dto"
	"strings"
)

// Generated text sometimes comes back with stray markup; posts are plain text.
func stripHtml(htm string) string {
	if !strings.Contains(htm, "<") {
		return htm
	}
	p := bluemonday.StrictPolicy()
	plain := p.Sanitize(htm)
	plain = html.UnescapeString(plain)
	plain = strings.TrimSpace(plain)
	return plain
}

func contentHash(content string) int64 {
	hasher := murmur3.New64()
	_, _ = hasher.Write([]byte(content))
	return int64(hasher.Sum64())
}

// normalizeBatch returns exactly one post per submitted activity, in submission order.
// Activities the backend skipped come back as failed posts; content is nil iff the post failed.
func normalizeBatch(submitted []dto.Activity, returned []dto.Post) []dto.Post {

	byActivity := make(map[string]dto.Post, len(returned))
	var unmatched []dto.Post
	for _, post := range returned {
		if _, dupe := byActivity[post.ActivityId]; post.ActivityId == "" || dupe {
			unmatched = append(unmatched, post)
			continue
		}
		byActivity[post.ActivityId] = post
	}

	res := make([]dto.Post, 0, len(submitted))
	usedIds := make(map[string]bool, len(submitted))
	for _, act := range submitted {
		post, ok := byActivity[act.Id]
		if !ok && len(unmatched) > 0 && len(returned) == len(submitted) {
			// Backend returned the right number of posts but without usable activity ids
			post, unmatched, ok = unmatched[0], unmatched[1:], true
		}
		if !ok {
			post = dto.Post{Error: "no post was generated for this activity"}
		}
		post.ActivityId = act.Id
		if post.ActivityType == "" {
			post.ActivityType = act.Type
		}
		if post.ActivityTitle == "" {
			post.ActivityTitle = act.Title
		}
		if post.Id == "" || usedIds[post.Id] {
			post.Id = uuid.NewString()
		}
		usedIds[post.Id] = true

		if post.Content != nil {
			clean := stripHtml(*post.Content)
			post.Content = &clean
		}
		if post.Content == nil || *post.Content == "" || post.Status == dto.PostFailed {
			post.Content = nil
			post.Status = dto.PostFailed
			if post.Error == "" {
				post.Error = "generation failed"
			}
		} else {
			post.Status = dto.PostPending
			post.Error = ""
		}
		res = append(res, post)
	}
	return res
}
