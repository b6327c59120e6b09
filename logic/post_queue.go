package logic

import (
	"post_bot/dto"
	"sync"
)

// postQueue holds the drafts of the current generation. Status moves pending <-> editing and
// pending|editing -> published; failed is assigned at load time only and is terminal.
type postQueue struct {
	mu    sync.RWMutex
	posts []dto.Post
}

func newPostQueue() *postQueue {
	return &postQueue{posts: []dto.Post{}}
}

func clonePost(post dto.Post) dto.Post {
	if post.Content != nil {
		content := *post.Content
		post.Content = &content
	}
	if post.ImageUrl != nil {
		imageUrl := *post.ImageUrl
		post.ImageUrl = &imageUrl
	}
	return post
}

func (pq *postQueue) find(id string) int {
	for i := range pq.posts {
		if pq.posts[i].Id == id {
			return i
		}
	}
	return -1
}

// Load replaces the queue with a generation result.
func (pq *postQueue) Load(posts []dto.Post) {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	pq.posts = make([]dto.Post, 0, len(posts))
	for _, post := range posts {
		pq.posts = append(pq.posts, clonePost(post))
	}
}

// Edit replaces a post's content. Status is left alone.
func (pq *postQueue) Edit(id, content string) (dto.Post, error) {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	ix := pq.find(id)
	if ix == -1 {
		return dto.Post{}, ErrPostNotFound
	}
	if pq.posts[ix].Content == nil {
		return dto.Post{}, ErrPostNotEditable
	}
	pq.posts[ix].Content = &content
	return clonePost(pq.posts[ix]), nil
}

func (pq *postQueue) BeginEdit(id string) (dto.Post, error) {
	return pq.setEditing(id, true)
}

func (pq *postQueue) EndEdit(id string) (dto.Post, error) {
	return pq.setEditing(id, false)
}

func (pq *postQueue) setEditing(id string, editing bool) (dto.Post, error) {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	ix := pq.find(id)
	if ix == -1 {
		return dto.Post{}, ErrPostNotFound
	}
	post := &pq.posts[ix]
	if post.Content == nil {
		return dto.Post{}, ErrPostNotEditable
	}
	if editing && post.Status == dto.PostPending {
		post.Status = dto.PostEditing
	} else if !editing && post.Status == dto.PostEditing {
		post.Status = dto.PostPending
	}
	return clonePost(*post), nil
}

// Discard removes a post regardless of status.
func (pq *postQueue) Discard(id string) error {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	ix := pq.find(id)
	if ix == -1 {
		return ErrPostNotFound
	}
	pq.posts = append(pq.posts[:ix], pq.posts[ix+1:]...)
	return nil
}

// SetImage replaces the image of a post; nil clears it.
func (pq *postQueue) SetImage(id string, imageUrl *string) (dto.Post, error) {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	ix := pq.find(id)
	if ix == -1 {
		return dto.Post{}, ErrPostNotFound
	}
	if imageUrl == nil {
		pq.posts[ix].ImageUrl = nil
	} else {
		val := *imageUrl
		pq.posts[ix].ImageUrl = &val
	}
	return clonePost(pq.posts[ix]), nil
}

// MarkPublished moves a post to published, provided its content is still what went out.
func (pq *postQueue) MarkPublished(id, sentContent string) error {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	ix, err := pq.findSent(id, sentContent)
	if err != nil {
		return err
	}
	pq.posts[ix].Status = dto.PostPublished
	return nil
}

// RemoveSent drops a post that was handed to the backend, unless it changed in the meantime.
func (pq *postQueue) RemoveSent(id, sentContent string) error {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	ix, err := pq.findSent(id, sentContent)
	if err != nil {
		return err
	}
	pq.posts = append(pq.posts[:ix], pq.posts[ix+1:]...)
	return nil
}

func (pq *postQueue) findSent(id, sentContent string) (int, error) {
	ix := pq.find(id)
	if ix == -1 {
		return -1, ErrPostNotFound
	}
	if !isPublishable(&pq.posts[ix]) {
		return -1, ErrNotPublishable
	}
	if *pq.posts[ix].Content != sentContent {
		return -1, ErrPostChanged
	}
	return ix, nil
}

func isPublishable(post *dto.Post) bool {
	return post.Content != nil &&
		(post.Status == dto.PostPending || post.Status == dto.PostEditing)
}

// Publishable returns the post if it exists and can be published.
func (pq *postQueue) Publishable(id string) (dto.Post, error) {
	pq.mu.RLock()
	defer pq.mu.RUnlock()
	ix := pq.find(id)
	if ix == -1 {
		return dto.Post{}, ErrPostNotFound
	}
	if !isPublishable(&pq.posts[ix]) {
		return dto.Post{}, ErrNotPublishable
	}
	return clonePost(pq.posts[ix]), nil
}

func (pq *postQueue) Get(id string) (dto.Post, bool) {
	pq.mu.RLock()
	defer pq.mu.RUnlock()
	ix := pq.find(id)
	if ix == -1 {
		return dto.Post{}, false
	}
	return clonePost(pq.posts[ix]), true
}

func (pq *postQueue) List() []dto.Post {
	pq.mu.RLock()
	defer pq.mu.RUnlock()
	res := make([]dto.Post, 0, len(pq.posts))
	for _, post := range pq.posts {
		res = append(res, clonePost(post))
	}
	return res
}

func (pq *postQueue) Clear() {
	pq.mu.Lock()
	defer pq.mu.Unlock()
	pq.posts = []dto.Post{}
}
