package logic

import (
	"post_bot/dto"
	"sync"
	"time"
)

// noticeBoard queues user-facing notices until they are drained. Oldest are dropped past max.
type noticeBoard struct {
	mu      sync.Mutex
	max     int
	notices []dto.Notice
}

func newNoticeBoard(max int) *noticeBoard {
	if max <= 0 {
		max = 1
	}
	return &noticeBoard{max: max, notices: []dto.Notice{}}
}

func (nb *noticeBoard) Add(level dto.NoticeLevel, text string) {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	nb.notices = append(nb.notices, dto.Notice{Level: level, Text: text, At: time.Now()})
	if over := len(nb.notices) - nb.max; over > 0 {
		nb.notices = append([]dto.Notice{}, nb.notices[over:]...)
	}
}

func (nb *noticeBoard) Drain() []dto.Notice {
	nb.mu.Lock()
	defer nb.mu.Unlock()
	res := nb.notices
	nb.notices = []dto.Notice{}
	return res
}
